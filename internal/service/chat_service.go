package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	app_errors "museum-guide/backend/internal/errors"
	"museum-guide/backend/internal/llm"
	"museum-guide/backend/internal/model"
)

// MaxHistoryTurns bounds how many prior exchanges are forwarded to the provider.
const MaxHistoryTurns = 6

type ChatService struct {
	models       *ModelService
	llm          llm.CompletionProvider
	fallback     *FallbackResponder
	systemPrompt string
	now          func() time.Time
}

// NewChatService wires the chat flow. A nil provider means no credential is
// configured: every reply then comes from the fallback responder and no
// network call is ever made.
func NewChatService(models *ModelService, provider llm.CompletionProvider, fallback *FallbackResponder) *ChatService {
	return &ChatService{
		models:       models,
		llm:          provider,
		fallback:     fallback,
		systemPrompt: GuidePersona,
		now:          time.Now,
	}
}

// Chat answers one visitor message. The only error it returns is
// app_errors.ErrMessageRequired; every upstream failure degrades to a
// fallback reply flagged with IsMock.
func (s *ChatService) Chat(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	if req == nil || req.Message == "" {
		return nil, app_errors.ErrMessageRequired
	}

	// Read once so the reported model is the one the request was served with.
	currentModel := s.models.Current()
	logger := slog.With("exchange_id", uuid.NewString(), "model", currentModel)

	text, real := s.complete(ctx, logger, currentModel, req)
	return &model.ChatResponse{
		Response:  strings.TrimSpace(text),
		Timestamp: s.now().UTC().Format(model.TimestampLayout),
		Model:     currentModel,
		IsMock:    !real,
	}, nil
}

// FallbackReply exposes the placeholder generator to callers that need a
// best-effort reply outside the normal flow.
func (s *ChatService) FallbackReply(message string) string {
	return s.fallback.Reply(message)
}

// complete returns the reply text and whether it came from a real completion.
func (s *ChatService) complete(ctx context.Context, logger *slog.Logger, currentModel string, req *model.ChatRequest) (string, bool) {
	if s.llm == nil {
		logger.Debug("Using mock response, no valid API key configured")
		return s.fallback.Reply(req.Message), false
	}

	messages := BuildMessages(s.systemPrompt, req.ChatHistory, req.Message)
	logger.Debug("Requesting completion", "messages", len(messages), "message_preview", truncate(req.Message, 50))

	text, err := s.llm.Complete(ctx, &llm.CompletionRequest{Model: currentModel, Messages: messages})
	if err != nil {
		logger.Warn("Completion failed, falling back to mock response", "kind", failureKind(err), "error", err)
		return s.fallback.Reply(req.Message), false
	}
	return text, true
}

// BuildMessages assembles the prompt: the system instruction, then at most the
// last MaxHistoryTurns turns as user/assistant pairs in their original order,
// then the new message.
func BuildMessages(systemPrompt string, history []model.ChatTurn, message string) []llm.Message {
	if len(history) > MaxHistoryTurns {
		history = history[len(history)-MaxHistoryTurns:]
	}

	messages := make([]llm.Message, 0, 2+2*len(history))
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: systemPrompt})
	for _, turn := range history {
		messages = append(messages,
			llm.Message{Role: llm.RoleUser, Content: turn.User},
			llm.Message{Role: llm.RoleAssistant, Content: turn.Assistant},
		)
	}
	return append(messages, llm.Message{Role: llm.RoleUser, Content: message})
}

// failureKind names the upstream failure for logs.
func failureKind(err error) string {
	var upstreamErr *llm.UpstreamError
	switch {
	case errors.Is(err, llm.ErrInvalidCredential):
		return "invalid_credential"
	case errors.Is(err, llm.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, llm.ErrMalformedResponse):
		return "malformed_response"
	case errors.As(err, &upstreamErr):
		return "upstream_error"
	default:
		return "unknown"
	}
}

// truncate shortens a string to a specified number of runes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
