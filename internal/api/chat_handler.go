package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	app_errors "museum-guide/backend/internal/errors"
	"museum-guide/backend/internal/interfaces"
	"museum-guide/backend/internal/model"
)

// ChatHandler serves the chat proxy endpoint.
type ChatHandler struct {
	service interfaces.ChatService
}

func NewChatHandler(svc interfaces.ChatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// HandleChat godoc
// @Summary      Ask the museum guide
// @Description  Relays a visitor message and up to the last 6 turns of history to the completion provider.
// @Description  Upstream failures never surface: the reply then comes from the mock generator and isMock is true.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        chatRequest  body      model.ChatRequest  true  "Message and optional history"
// @Success      200          {object}  model.ChatResponse
// @Failure      400          {object}  ErrorResponse
// @Failure      500          {object}  model.ChatFailureResponse
// @Router       /chat [post]
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest

	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		if rec == http.ErrAbortHandler {
			panic(rec)
		}
		h.respondWithChatFailure(w, req.Message, fmt.Errorf("%w: %v", app_errors.ErrInternal, rec))
	}()

	if err := decodeJSON(r.Body, &req); err != nil {
		respondWithError(w, fmt.Errorf("%w: %v", app_errors.ErrMessageRequired, err))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: %v", app_errors.ErrMessageRequired, err))
		return
	}

	resp, err := h.service.Chat(r.Context(), &req)
	if err != nil {
		if errors.Is(err, app_errors.ErrMessageRequired) {
			respondWithError(w, err)
			return
		}
		h.respondWithChatFailure(w, req.Message, err)
		return
	}

	respondWithJSON(w, http.StatusOK, resp)
}

// respondWithChatFailure answers 500 but still hands the widget a fallback reply.
func (h *ChatHandler) respondWithChatFailure(w http.ResponseWriter, message string, err error) {
	slog.Error("Chat request failed", "error", err)
	respondWithJSON(w, http.StatusInternalServerError, model.ChatFailureResponse{
		Error:    "Internal server error",
		Message:  err.Error(),
		Response: h.service.FallbackReply(message),
	})
}
