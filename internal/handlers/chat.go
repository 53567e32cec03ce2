package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"cognireal-backend/internal/gemini"
	"cognireal-backend/internal/metrics"
	"cognireal-backend/internal/models"
	"cognireal-backend/internal/ratelimit"
	"cognireal-backend/internal/scope"
	"cognireal-backend/internal/wizard"
)

// maxRequestBodySize caps the replayed chat history (1MB).
const maxRequestBodySize = 1 << 20

// Fixed user-facing messages. Internal error detail is logged server-side
// only and never forwarded to the client.
const (
	msgInvalidRequest  = "Invalid request format"
	msgNoValidMessages = "No valid messages provided"
	msgUnavailable     = "Chat service is temporarily unavailable. Please try again later."
	msgUpstreamBusy    = "Service is busy. Please try again in a moment."
	msgUpstreamFailed  = "Failed to get a response. Please try again."
	msgUnexpected      = "An unexpected error occurred. Please try again."
)

type ChatHandler struct {
	limiter   ratelimit.Limiter
	gemini    *gemini.Client // nil when no API key is configured
	streaming bool
}

func NewChatHandler(limiter ratelimit.Limiter, client *gemini.Client, streaming bool) *ChatHandler {
	return &ChatHandler{
		limiter:   limiter,
		gemini:    client,
		streaming: streaming,
	}
}

// Chat runs the request pipeline: rate-limit gate, message validation, prompt
// composition from the wizard context, upstream call, scope enforcement, and
// either an SSE relay or a single JSON reply.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	clientID := ratelimit.ClientID(r)
	allowed, _ := h.limiter.Allow(r.Context(), clientID)
	if !allowed {
		metrics.ChatRequestsTotal.WithLabelValues(metrics.OutcomeRateLimited).Inc()
		writeChatError(w, http.StatusTooManyRequests, ratelimit.ErrorMessage)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Messages == nil {
		metrics.ChatRequestsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		writeChatError(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	valid := filterMessages(req.Messages)
	if len(valid) == 0 {
		metrics.ChatRequestsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		writeChatError(w, http.StatusBadRequest, msgNoValidMessages)
		return
	}

	if h.gemini == nil {
		log.Println("chat: GEMINI_API_KEY is not configured")
		metrics.ChatRequestsTotal.WithLabelValues(metrics.OutcomeUnconfigured).Inc()
		writeChatError(w, http.StatusServiceUnavailable, msgUnavailable)
		return
	}

	systemPrompt := wizard.ComposeSystemPrompt(req.WizardContext)
	contents := gemini.ConvertMessages(valid)

	if h.streaming {
		h.streamChat(w, r, systemPrompt, contents)
		return
	}
	h.completeChat(w, r, systemPrompt, contents)
}

// filterMessages keeps entries that carry a role and non-blank content.
func filterMessages(messages []models.ChatMessage) []models.ChatMessage {
	valid := make([]models.ChatMessage, 0, len(messages))
	for _, msg := range messages {
		if msg.Role != "" && strings.TrimSpace(msg.Content) != "" {
			valid = append(valid, msg)
		}
	}
	return valid
}

// completeChat is the whole-response mode: one upstream call, one enforcement
// pass, one JSON body.
func (h *ChatHandler) completeChat(w http.ResponseWriter, r *http.Request, systemPrompt string, contents []gemini.Content) {
	start := time.Now()
	result, err := h.gemini.GenerateContent(r.Context(), systemPrompt, contents)
	metrics.UpstreamLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		h.writeUpstreamError(w, err)
		return
	}

	final := scope.Enforce(result.Text, result.BlockedBySafety)
	if final != result.Text || result.BlockedBySafety {
		metrics.RefusalsEnforced.Inc()
	}

	metrics.ChatRequestsTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	writeJSON(w, http.StatusOK, models.ChatResponse{Message: final})
}

func (h *ChatHandler) writeUpstreamError(w http.ResponseWriter, err error) {
	if errors.Is(err, gemini.ErrBusy) {
		metrics.ChatRequestsTotal.WithLabelValues(metrics.OutcomeUpstreamBusy).Inc()
		writeChatError(w, http.StatusTooManyRequests, msgUpstreamBusy)
		return
	}
	metrics.ChatRequestsTotal.WithLabelValues(metrics.OutcomeUpstreamFail).Inc()
	writeChatError(w, http.StatusInternalServerError, msgUpstreamFailed)
}

// streamEvent is one framed event on the client-facing SSE stream.
type streamEvent struct {
	Chunk   string `json:"chunk,omitempty"`
	Replace bool   `json:"replace,omitempty"`
	Done    bool   `json:"done,omitempty"`
	Error   string `json:"error,omitempty"`
}

// streamChat relays the upstream fragment stream as SSE. Chunks are relayed
// strictly in arrival order; a mid-stream safety block substitutes the
// refusal immediately, and the fully accumulated text gets one enforcement
// pass at end-of-stream.
func (h *ChatHandler) streamChat(w http.ResponseWriter, r *http.Request, systemPrompt string, contents []gemini.Content) {
	start := time.Now()
	stream, err := h.gemini.StreamGenerateContent(r.Context(), systemPrompt, contents)
	if err != nil {
		metrics.UpstreamLatency.Observe(time.Since(start).Seconds())
		h.writeUpstreamError(w, err)
		return
	}
	defer stream.Close()

	flusher, ok := w.(http.Flusher)
	if !ok {
		log.Println("chat: response writer does not support flushing")
		metrics.ChatRequestsTotal.WithLabelValues(metrics.OutcomeUpstreamFail).Inc()
		writeChatError(w, http.StatusInternalServerError, msgUnexpected)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	var accumulated strings.Builder
	replaced := false

	for {
		chunk, err := stream.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Mid-stream read failure: one in-band error event, then stop.
			log.Printf("chat: upstream stream read failed: %v", err)
			metrics.ChatRequestsTotal.WithLabelValues(metrics.OutcomeStreamError).Inc()
			writeSSE(w, flusher, streamEvent{Error: msgUpstreamFailed})
			return
		}

		if chunk.FinishReason == gemini.FinishReasonSafety {
			// Substitute immediately instead of waiting for end-of-stream.
			writeSSE(w, flusher, streamEvent{Chunk: scope.Refusal, Replace: true})
			metrics.RefusalsEnforced.Inc()
			replaced = true
			break
		}

		if chunk.Text == "" {
			continue
		}
		accumulated.WriteString(chunk.Text)
		if err := writeSSE(w, flusher, streamEvent{Chunk: chunk.Text}); err != nil {
			// Client disconnected; stop draining upstream.
			metrics.ChatRequestsTotal.WithLabelValues(metrics.OutcomeStreamError).Inc()
			return
		}
	}
	metrics.UpstreamLatency.Observe(time.Since(start).Seconds())

	if !replaced {
		text := accumulated.String()
		if final := scope.Enforce(text, false); final != text {
			writeSSE(w, flusher, streamEvent{Chunk: final, Replace: true})
			metrics.RefusalsEnforced.Inc()
		}
	}

	writeSSE(w, flusher, streamEvent{Done: true})
	metrics.ChatRequestsTotal.WithLabelValues(metrics.OutcomeOK).Inc()
}
