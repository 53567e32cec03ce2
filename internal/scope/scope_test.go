package scope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnforceReplacesIndicatorText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"lowercase indicator", "this is outside my scope, sorry"},
		{"uppercase indicator", "That topic is OUTSIDE MY SCOPE entirely."},
		{"mid-sentence indicator", "Unfortunately that is not related to our discussion."},
		{"cannot help", "I cannot help with that request."},
		{"beyond area", "This falls beyond my area of knowledge."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, Refusal, Enforce(tc.text, false))
		})
	}
}

func TestEnforceIsIdempotentOnRefusal(t *testing.T) {
	assert.Equal(t, Refusal, Enforce(Refusal, false))
	assert.Equal(t, Refusal, Enforce(Enforce(Refusal, false), false))
}

func TestEnforcePassesThroughInScopeText(t *testing.T) {
	text := "1. **Summary**\nYour inventory process can be optimized in three ways."
	assert.Equal(t, text, Enforce(text, false))
}

func TestEnforceSafetyBlockOverridesEverything(t *testing.T) {
	tests := []string{
		"",
		"perfectly normal answer",
		"partial answer that got cut o",
		Refusal,
	}
	for _, text := range tests {
		assert.Equal(t, Refusal, Enforce(text, true))
	}
}

func TestIsOutOfScope(t *testing.T) {
	assert.True(t, IsOutOfScope("sorry, Not Within My Expertise"))
	assert.False(t, IsOutOfScope("let's talk about your ERP integration"))
	assert.False(t, IsOutOfScope(""))
}

func TestRefusalMatchesPromptEmbedding(t *testing.T) {
	// The refusal is embedded verbatim in the system prompt; any edit to the
	// constant must keep it a single sentence without surrounding whitespace.
	assert.Equal(t, strings.TrimSpace(Refusal), Refusal)
	assert.True(t, strings.HasSuffix(Refusal, "."))
}
