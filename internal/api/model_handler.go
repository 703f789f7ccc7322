package api

import (
	"fmt"
	"net/http"

	app_errors "museum-guide/backend/internal/errors"
	"museum-guide/backend/internal/interfaces"
	"museum-guide/backend/internal/model"
)

// ModelHandler handles HTTP requests for the model registry.
type ModelHandler struct {
	service interfaces.ModelService
}

func NewModelHandler(svc interfaces.ModelService) *ModelHandler {
	return &ModelHandler{service: svc}
}

// HandleListModels godoc
// @Summary      List available models
// @Description  Returns the fixed model registry, the current model and whether an API key is configured.
// @Tags         Models
// @Produce      json
// @Success      200  {object}  model.ModelsResponse
// @Router       /models [get]
func (h *ModelHandler) HandleListModels(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.List())
}

// HandleSelectModel godoc
// @Summary      Change the current model
// @Description  Makes a registry model the one used for every following chat request. Resets on restart.
// @Tags         Models
// @Accept       json
// @Produce      json
// @Param        modelRequest  body      model.SelectModelRequest  true  "Provider model identifier"
// @Success      200           {object}  model.SelectModelResponse
// @Failure      400           {object}  ErrorResponse
// @Router       /model [post]
func (h *ModelHandler) HandleSelectModel(w http.ResponseWriter, r *http.Request) {
	var req model.SelectModelRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		respondWithError(w, fmt.Errorf("%w: %v", app_errors.ErrInvalidModel, err))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: %v", app_errors.ErrInvalidModel, err))
		return
	}

	resp, err := h.service.Select(req.Model)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}
