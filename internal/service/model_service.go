package service

import (
	"fmt"
	"log/slog"
	"maps"
	"sync"

	app_errors "museum-guide/backend/internal/errors"
	"museum-guide/backend/internal/llm"
	"museum-guide/backend/internal/model"
)

// ModelService owns the model registry and the process-wide current model.
// The current model is the only mutable state in the service: chat requests
// read it, Select writes it.
type ModelService struct {
	mu        sync.RWMutex
	registry  map[string]string
	current   string
	hasAPIKey bool
}

// NewModelService creates a registry from a provider profile, starting at the
// profile's default model.
func NewModelService(profile llm.Profile, credential llm.Credential) *ModelService {
	return &ModelService{
		registry:  maps.Clone(profile.Models),
		current:   profile.DefaultModel,
		hasAPIKey: credential.IsConfigured(),
	}
}

// Current returns the model used for outgoing completion calls.
func (s *ModelService) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Registry returns a copy of the symbolic name to provider id mapping.
func (s *ModelService) Registry() map[string]string {
	return maps.Clone(s.registry)
}

// List returns the registry and the current selection.
func (s *ModelService) List() *model.ModelsResponse {
	return &model.ModelsResponse{
		Models:       s.Registry(),
		CurrentModel: s.Current(),
		HasAPIKey:    s.hasAPIKey,
	}
}

// Select makes id the current model. Unknown ids leave the selection untouched.
func (s *ModelService) Select(id string) (*model.SelectModelResponse, error) {
	if !s.known(id) {
		return nil, fmt.Errorf("%w: %q", app_errors.ErrInvalidModel, id)
	}

	s.mu.Lock()
	previous := s.current
	s.current = id
	s.mu.Unlock()

	slog.Info("Current model changed", "from", previous, "to", id)
	return &model.SelectModelResponse{
		Message:      fmt.Sprintf("Model changed to %s", id),
		CurrentModel: id,
		Note:         "Model changed successfully",
	}, nil
}

func (s *ModelService) known(id string) bool {
	for _, v := range s.registry {
		if v == id {
			return true
		}
	}
	return false
}
