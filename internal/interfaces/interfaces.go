package interfaces

import (
	"context"

	"museum-guide/backend/internal/model"
)

// The API layer depends on these interfaces rather than on the concrete
// services, so handlers can be tested against mocks.

// ChatService defines the contract for the chat proxy flow.
type ChatService interface {
	Chat(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error)
	FallbackReply(message string) string
}

// ModelService defines the contract for the model registry.
type ModelService interface {
	List() *model.ModelsResponse
	Select(id string) (*model.SelectModelResponse, error)
}

// StatusService defines the contract for health and configuration reporting.
type StatusService interface {
	Health() *model.HealthResponse
	Config() *model.ConfigResponse
}
