package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"cognireal-backend/internal/models"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.0-flash"
	defaultTimeout = 60 * time.Second

	maxOutputTokens = 1024
	temperature     = 0.7

	// FinishReasonSafety marks a candidate cut off by the safety filters.
	FinishReasonSafety = "SAFETY"
)

// Upstream failure conditions, distinguished so the handler can map them to
// the right status code. Neither is retried here; every failure is terminal
// for the request.
var (
	// ErrBusy means the provider itself is rate-limiting us.
	ErrBusy = errors.New("gemini: upstream rate limited")
	// ErrFailed covers every other non-2xx or transport failure.
	ErrFailed = errors.New("gemini: request failed")
)

// Content is one turn of the conversation in the provider's two-role scheme.
type Content struct {
	Role  string `json:"role"` // "user" or "model"
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

type systemInstruction struct {
	Parts []Part `json:"parts"`
}

type generationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type requestBody struct {
	SystemInstruction systemInstruction `json:"systemInstruction"`
	Contents          []Content         `json:"contents"`
	GenerationConfig  generationConfig  `json:"generationConfig"`
	SafetySettings    []safetySetting   `json:"safetySettings"`
}

// GenerateContentResponse is the candidate/content/part structure shared by
// the whole-response endpoint and each streamed fragment.
type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

type Candidate struct {
	Content      *Content `json:"content"`
	FinishReason string   `json:"finishReason"`
}

// Result is a fully parsed non-streaming reply.
type Result struct {
	Text            string
	BlockedBySafety bool
}

var defaultSafetySettings = []safetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
}

// Config configures a Client. Zero values fall back to defaults; BaseURL is
// overridable so tests can point the client at a local server.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Client talks to the Generative Language REST API. It holds no per-request
// state and is safe for concurrent use.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		apiKey:     cfg.APIKey,
		model:      model,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ConvertMessages reduces the internal role set to the provider's two-role
// scheme: "assistant" becomes "model", everything else becomes "user". Each
// message becomes a single text part, content preserved verbatim.
func ConvertMessages(messages []models.ChatMessage) []Content {
	contents := make([]Content, 0, len(messages))
	for _, msg := range messages {
		role := "user"
		if msg.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, Content{
			Role:  role,
			Parts: []Part{{Text: msg.Content}},
		})
	}
	return contents
}

func (c *Client) buildRequest(ctx context.Context, endpoint, systemPrompt string, contents []Content) (*http.Request, error) {
	body := requestBody{
		SystemInstruction: systemInstruction{Parts: []Part{{Text: systemPrompt}}},
		Contents:          contents,
		GenerationConfig:  generationConfig{MaxOutputTokens: maxOutputTokens, Temperature: temperature},
		SafetySettings:    defaultSafetySettings,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)
	return req, nil
}

func (c *Client) checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// Log the provider error body server-side; it is never forwarded.
	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	resp.Body.Close()
	log.Printf("gemini: upstream status %d: %s", resp.StatusCode, detail)

	if resp.StatusCode == http.StatusTooManyRequests {
		return ErrBusy
	}
	return ErrFailed
}

// GenerateContent issues a whole-response call and parses the first
// candidate's first part. Empty text with a SAFETY finish reason is reported
// as a safety block rather than an empty reply.
func (c *Client) GenerateContent(ctx context.Context, systemPrompt string, contents []Content) (*Result, error) {
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)

	req, err := c.buildRequest(ctx, endpoint, systemPrompt, contents)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("gemini: request error: %v", err)
		return nil, ErrFailed
	}
	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var parsed GenerateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Printf("gemini: failed to decode response: %v", err)
		return nil, ErrFailed
	}

	result := &Result{}
	if len(parsed.Candidates) > 0 {
		cand := parsed.Candidates[0]
		if cand.Content != nil && len(cand.Content.Parts) > 0 {
			result.Text = cand.Content.Parts[0].Text
		}
		if result.Text == "" && cand.FinishReason == FinishReasonSafety {
			result.BlockedBySafety = true
		}
	}
	return result, nil
}

// StreamGenerateContent issues a streaming call against the SSE endpoint
// variant and returns a lazy, single-pass stream of fragments. The caller
// must Close the stream on every exit path.
func (c *Client) StreamGenerateContent(ctx context.Context, systemPrompt string, contents []Content) (*Stream, error) {
	endpoint := fmt.Sprintf("%s/models/%s:streamGenerateContent?alt=sse", c.baseURL, c.model)

	req, err := c.buildRequest(ctx, endpoint, systemPrompt, contents)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("gemini: stream request error: %v", err)
		return nil, ErrFailed
	}
	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	return newStream(resp.Body), nil
}
