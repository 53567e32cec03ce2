package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"cognireal-backend/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeChatError writes the fixed {message, error} envelope used by the chat
// endpoints.
func writeChatError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ChatResponse{Message: "", Error: message})
}

// writeSSE frames one event as `data: <json>` and flushes so the browser
// sees it immediately.
func writeSSE(w http.ResponseWriter, flusher http.Flusher, ev streamEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}
