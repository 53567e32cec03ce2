package wizard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cognireal-backend/internal/models"
	"cognireal-backend/internal/scope"
)

func fullAnswerSet() []models.WizardAnswer {
	return []models.WizardAnswer{
		{QuestionID: "industry", AnswerID: "healthcare"},
		{QuestionID: "companySize", AnswerID: "large"},
		{QuestionID: "challenge", AnswerID: "digital"},
		{QuestionID: "systems", AnswerID: "erp"},
		{QuestionID: "goal", AnswerID: "compliance"},
	}
}

func TestComposeSystemPromptIsDeterministic(t *testing.T) {
	answers := fullAnswerSet()
	first := ComposeSystemPrompt(answers)
	second := ComposeSystemPrompt(answers)
	assert.Equal(t, first, second)

	assert.Equal(t, ComposeSystemPrompt(nil), ComposeSystemPrompt(nil))
}

func TestComposeSystemPromptUsesAnswerLabels(t *testing.T) {
	prompt := ComposeSystemPrompt(fullAnswerSet())

	assert.Contains(t, prompt, "specializing in Healthcare operations")
	assert.Contains(t, prompt, "Organization Size: Large (201-1000 employees)")
	assert.Contains(t, prompt, "Primary Challenge: Digital Transformation")
	assert.Contains(t, prompt, "Integration requirements with ERP (SAP, Oracle, etc.)")
	assert.Contains(t, prompt, "Primary Goal: Compliance / Risk Management")
	assert.Contains(t, prompt, "Electronic Health Records (EHR) systems")
	assert.Contains(t, prompt, "digital transformation initiatives and technology modernization")
	assert.Contains(t, prompt, "compliance adherence and risk mitigation")
}

func TestComposeSystemPromptEmbedsRefusalExactlyOnce(t *testing.T) {
	withAnswers := ComposeSystemPrompt(fullAnswerSet())
	assert.Equal(t, 1, strings.Count(withAnswers, scope.Refusal))

	generic := ComposeSystemPrompt(nil)
	assert.Equal(t, 1, strings.Count(generic, scope.Refusal))
}

func TestComposeSystemPromptDefaultsMissingSlots(t *testing.T) {
	// Only the industry answered; every other slot falls back to its default.
	prompt := ComposeSystemPrompt([]models.WizardAnswer{
		{QuestionID: "industry", AnswerID: "retail"},
	})

	assert.Contains(t, prompt, "specializing in Retail / E-commerce operations")
	assert.Contains(t, prompt, "Organization Size: Medium (51-200 employees)")
	assert.Contains(t, prompt, "Primary Challenge: Operational Efficiency")
	assert.Contains(t, prompt, "Current Systems: Spreadsheets / Manual")
	assert.Contains(t, prompt, "Primary Goal: Improve Efficiency")
}

func TestComposeSystemPromptCustomIndustry(t *testing.T) {
	prompt := ComposeSystemPrompt([]models.WizardAnswer{
		{QuestionID: "industry", AnswerID: "other", CustomValue: "Agriculture"},
	})

	// Custom label is used, but the expertise bullets stay generic.
	assert.Contains(t, prompt, "specializing in Agriculture operations")
	assert.Contains(t, prompt, "Industry-specific operational optimization")
	assert.NotContains(t, prompt, "Overall Equipment Effectiveness")
}

func TestComposeSystemPromptGenericWithoutAnswers(t *testing.T) {
	prompt := ComposeSystemPrompt(nil)

	require.Contains(t, prompt, "Expert Business Analyst from Cognireal")
	assert.NotContains(t, prompt, "Client Context:")
	assert.Contains(t, prompt, "**Response Format:**")
	assert.Contains(t, prompt, "**CRITICAL SCOPE RESTRICTION:**")
}

func TestComposeSystemPromptUnknownIDsFallBack(t *testing.T) {
	prompt := ComposeSystemPrompt([]models.WizardAnswer{
		{QuestionID: "industry", AnswerID: "aerospace"},
		{QuestionID: "challenge", AnswerID: "mystery"},
		{QuestionID: "goal", AnswerID: "mystery"},
	})

	// Unknown industry keeps its raw ID as label and generic bullets.
	assert.Contains(t, prompt, "specializing in aerospace operations")
	assert.Contains(t, prompt, "Industry-specific operational optimization")
	assert.Contains(t, prompt, "focused on business optimization to achieve business improvement")
}

func TestCompletionMessage(t *testing.T) {
	msg := CompletionMessage(fullAnswerSet())
	assert.Contains(t, msg, "**Healthcare**")
	assert.Contains(t, msg, "**Digital Transformation**")

	// Defaults mirror the prompt composer's.
	empty := CompletionMessage(nil)
	assert.Contains(t, empty, "**Manufacturing**")
	assert.Contains(t, empty, "**Operational Efficiency**")
}

func TestAnswerLabel(t *testing.T) {
	assert.Equal(t, "Finance / Banking", AnswerLabel("industry", "finance", ""))
	assert.Equal(t, "Fishing", AnswerLabel("industry", "other", "Fishing"))
	assert.Equal(t, "unknown-id", AnswerLabel("industry", "unknown-id", ""))
	assert.Equal(t, "startup", AnswerLabel("no-such-question", "startup", ""))
}

func TestQuestionCatalogue(t *testing.T) {
	require.Len(t, Questions, 5)

	ids := make([]string, 0, len(Questions))
	for _, q := range Questions {
		ids = append(ids, q.ID)
		assert.NotEmpty(t, q.Question)
		assert.NotEmpty(t, q.Options)
	}
	assert.Equal(t, []string{"industry", "companySize", "challenge", "systems", "goal"}, ids)
}
