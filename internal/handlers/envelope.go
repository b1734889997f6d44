package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/parkjy76/gw-stock-chart/internal/models"
)

// PrincipalFunc resolves the session principal for the current request.
// Handlers that guard mutating operations receive the production resolver
// (middlewares.PrincipalFromContext) from main.
type PrincipalFunc func(ctx context.Context) (*models.SessionPrincipal, bool)

// MessageResponse is the uniform success/failure envelope with a
// human-readable message.
// swagger:model MessageResponse
type MessageResponse struct {
	// Operation outcome
	// example: true
	Success bool `json:"success"`

	// Human-readable message
	// example: done
	Message string `json:"message"`
}

// ErrorResponse is the uniform proxy failure envelope.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false
	// example: false
	Success bool `json:"success"`

	// Error message
	// example: analytics service unavailable
	Error string `json:"error"`
}

const msgLoginRequired = "login required"

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeRaw relays an upstream JSON body unmodified.
func writeRaw(w http.ResponseWriter, status int, body json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// writeFailure writes the uniform business failure envelope.
func writeFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, MessageResponse{
		Success: false,
		Message: message,
	})
}
