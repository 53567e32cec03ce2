package models

import "encoding/json"

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// UnmarshalJSON decodes a message leniently: entries whose role or content is
// not a string decode to the zero value instead of failing the surrounding
// request, and get dropped during message validation.
func (m *ChatMessage) UnmarshalJSON(data []byte) error {
	*m = ChatMessage{}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	var role, content string
	if json.Unmarshal(raw["role"], &role) == nil {
		m.Role = role
	}
	if json.Unmarshal(raw["content"], &content) == nil {
		m.Content = content
	}
	return nil
}

// ChatRequest is the payload sent to the chat endpoint. The full message
// history is resent on every call; no conversation state is kept server-side.
type ChatRequest struct {
	Messages      []ChatMessage  `json:"messages"`
	WizardContext []WizardAnswer `json:"wizardContext,omitempty"`
}

// ChatResponse is the non-streaming reply from the chat endpoint.
type ChatResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
