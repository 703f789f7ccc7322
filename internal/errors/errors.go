package errors

import "errors"

// This package defines the sentinel errors shared between the service and API
// layers. Services return them (possibly wrapped) and the API layer uses
// `errors.Is()` to map them to HTTP responses, so the services never know
// about status codes.

var (
	// ErrValidation signifies that input data provided by a client failed
	// validation. Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrMessageRequired is returned when a chat request carries no message.
	// Mapped to 400 Bad Request with the fixed client message "Message is required".
	ErrMessageRequired = errors.New("message is required")

	// ErrInvalidModel is returned when a client selects a model identifier
	// that is not in the registry. Mapped to 400 Bad Request.
	ErrInvalidModel = errors.New("invalid model")

	// ErrInternal signifies an unexpected error on the server. Mapped to
	// 500 Internal Server Error.
	ErrInternal = errors.New("internal server error")
)
