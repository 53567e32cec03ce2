package models

// WizardAnswer is one answer from the five-question onboarding flow.
// CustomValue carries free-text input for options that allow it.
type WizardAnswer struct {
	QuestionID  string `json:"questionId"`
	AnswerID    string `json:"answerId"`
	CustomValue string `json:"customValue,omitempty"`
}

// WizardOption is a selectable answer for a wizard question.
type WizardOption struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	AllowCustom bool   `json:"allowCustom,omitempty"`
}

// WizardQuestion is one step of the onboarding flow.
type WizardQuestion struct {
	ID       string         `json:"id"`
	Question string         `json:"question"`
	Options  []WizardOption `json:"options"`
}
