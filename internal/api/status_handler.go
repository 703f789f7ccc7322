package api

import (
	"net/http"

	"museum-guide/backend/internal/interfaces"
)

type StatusHandler struct {
	service interfaces.StatusService
}

func NewStatusHandler(svc interfaces.StatusService) *StatusHandler {
	return &StatusHandler{service: svc}
}

// HandleHealth godoc
// @Summary      Service health
// @Tags         Status
// @Produce      json
// @Success      200  {object}  model.HealthResponse
// @Router       /health [get]
func (h *StatusHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Health())
}

// HandleConfig godoc
// @Summary      Effective provider configuration
// @Tags         Status
// @Produce      json
// @Success      200  {object}  model.ConfigResponse
// @Router       /config [get]
func (h *StatusHandler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Config())
}
