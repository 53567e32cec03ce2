package scope

import "strings"

// Refusal is the exact message returned for every out-of-scope query. It is
// embedded in the system prompt and enforced verbatim on the way out, so the
// two must never drift apart.
const Refusal = "Sorry, this is not a related topic of the conversation."

// outOfScopeIndicators are phrases that suggest the model is refusing an
// out-of-scope request in its own words instead of using the exact refusal.
// This is a plain substring match and can false-positive on legitimate text
// that happens to contain one of these phrases.
var outOfScopeIndicators = []string{
	"i cannot help with",
	"i'm not able to assist with",
	"outside my scope",
	"not within my expertise",
	"i can't provide information about",
	"not related to",
	"outside the scope",
	"beyond my area",
	"not something i can assist",
}

// IsOutOfScope reports whether a response looks like an out-of-scope refusal.
func IsOutOfScope(message string) bool {
	lower := strings.ToLower(message)
	for _, indicator := range outOfScopeIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// Enforce guarantees that out-of-scope output is replaced by the canonical
// refusal. A safety block always wins, discarding any partial text. Text that
// already equals the refusal passes through unchanged.
func Enforce(text string, blockedBySafety bool) string {
	if blockedBySafety {
		return Refusal
	}
	if IsOutOfScope(text) && text != Refusal {
		return Refusal
	}
	return text
}
