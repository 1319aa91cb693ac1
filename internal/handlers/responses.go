package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse represents an error response body
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Invalid request body
	Error string `json:"error"`
}

// MessageResponse represents a generic confirmation body
// swagger:model MessageResponse
type MessageResponse struct {
	// Human-readable confirmation
	// default: OK
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
