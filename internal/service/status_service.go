package service

import (
	"fmt"
	"time"

	"museum-guide/backend/internal/llm"
	"museum-guide/backend/internal/model"
)

// StatusService reports process health and the effective provider configuration.
type StatusService struct {
	models     *ModelService
	profile    llm.Profile
	credential llm.Credential
	now        func() time.Time
}

func NewStatusService(models *ModelService, profile llm.Profile, credential llm.Credential) *StatusService {
	return &StatusService{models: models, profile: profile, credential: credential, now: time.Now}
}

// Health never fails and has no side effects.
func (s *StatusService) Health() *model.HealthResponse {
	message := "No API key configured"
	if s.credential.IsConfigured() {
		message = "API key found"
	}
	return &model.HealthResponse{
		Status:    "OK",
		Timestamp: s.now().UTC().Format(model.TimestampLayout),
		Model:     s.models.Current(),
		HasAPIKey: s.credential.IsConfigured(),
		Message:   message,
		Provider:  s.profile.DisplayName,
	}
}

func (s *StatusService) Config() *model.ConfigResponse {
	return &model.ConfigResponse{
		HasAPIKey:       s.credential.IsConfigured(),
		CurrentModel:    s.models.Current(),
		AvailableModels: s.models.Registry(),
		Provider:        s.profile.DisplayName,
		Note:            fmt.Sprintf("Set %s in .env file for real AI responses", s.profile.KeyEnv),
	}
}
