package handlers

import (
	"encoding/json"
	"net/http"

	"cognireal-backend/internal/models"
	"cognireal-backend/internal/wizard"
)

// WizardHandler serves the onboarding flow's question catalogue and the
// completion message that hands the user over to the chat.
type WizardHandler struct{}

func NewWizardHandler() *WizardHandler {
	return &WizardHandler{}
}

func (h *WizardHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"intro":     wizard.IntroMessage,
		"questions": wizard.Questions,
	})
}

func (h *WizardHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Answers []models.WizardAnswer `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeChatError(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	// Missing answers fall back to the same defaults the prompt composer uses.
	writeJSON(w, http.StatusOK, map[string]string{
		"message": wizard.CompletionMessage(req.Answers),
	})
}
