package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cognireal-backend/internal/models"
)

func TestWizardQuestionsCatalogue(t *testing.T) {
	h := NewWizardHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/wizard/questions", nil)
	rr := httptest.NewRecorder()
	h.Questions(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}

	var resp struct {
		Intro     string                  `json:"intro"`
		Questions []models.WizardQuestion `json:"questions"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Intro == "" {
		t.Error("Expected a non-empty intro message")
	}
	if len(resp.Questions) != 5 {
		t.Fatalf("Expected 5 questions, got %d", len(resp.Questions))
	}

	expectedOrder := []string{"industry", "companySize", "challenge", "systems", "goal"}
	for i, q := range resp.Questions {
		if q.ID != expectedOrder[i] {
			t.Errorf("Question %d: expected ID %q, got %q", i, expectedOrder[i], q.ID)
		}
		if len(q.Options) == 0 {
			t.Errorf("Question %q has no options", q.ID)
		}
	}
}

func TestWizardComplete(t *testing.T) {
	h := NewWizardHandler()
	body := `{"answers":[
		{"questionId":"industry","answerId":"healthcare"},
		{"questionId":"companySize","answerId":"large"},
		{"questionId":"challenge","answerId":"quality"},
		{"questionId":"systems","answerId":"erp"},
		{"questionId":"goal","answerId":"growth"}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/wizard/complete", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Complete(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !strings.Contains(resp.Message, "**Healthcare**") {
		t.Errorf("Expected message to name the chosen industry, got %q", resp.Message)
	}
	if !strings.Contains(resp.Message, "**Quality Improvement**") {
		t.Errorf("Expected message to name the chosen challenge, got %q", resp.Message)
	}
}

func TestWizardCompleteRejectsBadBody(t *testing.T) {
	h := NewWizardHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/wizard/complete", strings.NewReader("not json"))
	rr := httptest.NewRecorder()
	h.Complete(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rr.Code)
	}
}
