package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	app_errors "museum-guide/backend/internal/errors"
)

// This file contains shared DTOs for API responses and the helpers that send
// consistent HTTP responses.

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error" example:"Message is required"`
}

// StatusResponse is the liveness probe body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// respondWithError maps business-layer errors to HTTP status codes and the
// fixed client messages the front end expects.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrMessageRequired):
		statusCode = http.StatusBadRequest
		message = "Message is required"
	case errors.Is(err, app_errors.ErrInvalidModel):
		statusCode = http.StatusBadRequest
		message = "Invalid model"
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		message = err.Error()
	default:
		// Never leak implementation details to the client.
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondWithJSON marshals payload and writes it with the given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}
