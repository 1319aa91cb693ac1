package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/skobelevsky/authgate/internal/logger"
)

// ErrEmptyCompletion is returned when the provider answers 2xx but carries no
// candidate text. Surfaced explicitly instead of a blank success.
var ErrEmptyCompletion = errors.New("empty response from Gemini")

// ChatTurn is one prior turn of the conversation as the client sent it.
type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// geminiContent is a single turn in the provider's role vocabulary.
type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generateRequest struct {
	Contents []geminiContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GeminiFacade forwards chat requests to the Gemini generateContent endpoint.
type GeminiFacade struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
}

// NewGeminiFacade creates a facade for the given API key, base URL and model.
func NewGeminiFacade(apiKey, baseURL, model string) *GeminiFacade {
	return &GeminiFacade{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// mapRole translates client role names into the provider's vocabulary.
func mapRole(role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "assistant", "model":
		return "model"
	default:
		return "user"
	}
}

// Chat sends the message with optional prior turns and returns the reply text.
func (f *GeminiFacade) Chat(ctx context.Context, message string, history []ChatTurn) (string, error) {
	contents := make([]geminiContent, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, geminiContent{
			Role:  mapRole(turn.Role),
			Parts: []geminiPart{{Text: turn.Text}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: message}},
	})

	payload, err := json.Marshal(generateRequest{Contents: contents})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", f.baseURL, f.model, f.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.http.Do(req)
	if err != nil {
		logger.Log.Errorw("gemini request failed", "error", err)
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Attach the provider's raw error detail for operators.
		var e generateResponse
		if json.Unmarshal(body, &e) == nil && e.Error != nil && e.Error.Message != "" {
			return "", fmt.Errorf("gemini error (%d): %s", resp.StatusCode, e.Error.Message)
		}
		return "", fmt.Errorf("gemini http error (%d): %s", resp.StatusCode, string(body))
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("gemini response decode failed: %w", err)
	}

	if len(out.Candidates) == 0 {
		return "", ErrEmptyCompletion
	}

	var sb strings.Builder
	for _, part := range out.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	if sb.Len() == 0 {
		return "", ErrEmptyCompletion
	}

	return sb.String(), nil
}
