package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/skobelevsky/authgate/internal/facades"
	"github.com/skobelevsky/authgate/internal/logger"
)

// Chatter defines the interface for the AI completion provider.
type Chatter interface {
	Chat(ctx context.Context, message string, history []facades.ChatTurn) (string, error)
}

// GeminiRequest represents the JSON body for an AI chat completion
// swagger:model GeminiRequest
type GeminiRequest struct {
	// User message
	// required: true
	// default: How do I enable high contrast?
	Message string `json:"message"`

	// Prior turns of the conversation, oldest first
	History []facades.ChatTurn `json:"history"`
}

// GeminiResponse represents an AI chat completion
// swagger:model GeminiResponse
type GeminiResponse struct {
	// Model reply
	Reply string `json:"reply"`
}

// NewGeminiHandler returns an HTTP handler that proxies chat completions to
// Gemini. The provider key stays on the server; clients only ever see this
// endpoint.
// @Summary AI chat completion
// @Description Forward a chat message to Gemini and return the reply
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param geminiRequest body handlers.GeminiRequest true "Gemini Request"
// @Success 200 {object} handlers.GeminiResponse "Model reply"
// @Failure 400 {object} handlers.ErrorResponse "Empty message"
// @Failure 500 {object} handlers.ErrorResponse "Upstream failure with provider detail"
// @Router /gemini [post]
func NewGeminiHandler(svc Chatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GeminiRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if strings.TrimSpace(req.Message) == "" {
			writeError(w, http.StatusBadRequest, "Message is required")
			return
		}

		reply, err := svc.Chat(r.Context(), req.Message, req.History)
		if err != nil {
			logger.Log.Errorw("gemini request failed", "err", err)
			if errors.Is(err, facades.ErrEmptyCompletion) {
				writeError(w, http.StatusInternalServerError, facades.ErrEmptyCompletion.Error())
				return
			}
			// Surface the provider detail so the frontend can show it.
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, GeminiResponse{Reply: reply})
	}
}
