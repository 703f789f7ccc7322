package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app_errors "museum-guide/backend/internal/errors"
	"museum-guide/backend/internal/llm"
	mock_llm "museum-guide/backend/internal/llm/mocks"
	"museum-guide/backend/internal/model"
	"museum-guide/backend/internal/service"
)

func groqProfile(t *testing.T) llm.Profile {
	t.Helper()
	profile, ok := llm.LookupProfile(llm.ProviderGroq)
	require.True(t, ok)
	return profile
}

// setupChatService builds a configured service backed by a mock provider.
func setupChatService(t *testing.T) (*service.ChatService, *service.ModelService, *mock_llm.MockCompletionProvider) {
	profile := groqProfile(t)
	models := service.NewModelService(profile, llm.Configured("secret"))
	provider := mock_llm.NewMockCompletionProvider(t)
	chatService := service.NewChatService(models, provider, service.NewFallbackResponder(profile.DisplayName))
	return chatService, models, provider
}

func history(n int) []model.ChatTurn {
	turns := make([]model.ChatTurn, n)
	for i := range turns {
		turns[i] = model.ChatTurn{User: fmt.Sprintf("q%d", i), Assistant: fmt.Sprintf("a%d", i)}
	}
	return turns
}

func TestChatService_Chat_Validation(t *testing.T) {
	chatService, _, _ := setupChatService(t)

	t.Run("Empty message", func(t *testing.T) {
		resp, err := chatService.Chat(context.Background(), &model.ChatRequest{Message: ""})
		assert.ErrorIs(t, err, app_errors.ErrMessageRequired)
		assert.Nil(t, resp)
	})

	t.Run("Nil request", func(t *testing.T) {
		_, err := chatService.Chat(context.Background(), nil)
		assert.ErrorIs(t, err, app_errors.ErrMessageRequired)
	})
	// The mock provider has no expectations, so any outbound call fails the test.
}

func TestChatService_Chat_Unconfigured(t *testing.T) {
	profile := groqProfile(t)
	models := service.NewModelService(profile, llm.Unconfigured())
	chatService := service.NewChatService(models, nil, service.NewFallbackResponder(profile.DisplayName))

	for i := 0; i < 20; i++ {
		resp, err := chatService.Chat(context.Background(), &model.ChatRequest{Message: "Hello"})
		require.NoError(t, err)
		assert.True(t, resp.IsMock)
		assert.Contains(t, resp.Response, service.MockMarker)
		assert.Contains(t, resp.Response, "Please check your Groq API key.)")
		assert.Equal(t, profile.DefaultModel, resp.Model)
	}
}

func TestChatService_Chat_Success(t *testing.T) {
	ctx := context.Background()
	chatService, models, provider := setupChatService(t)

	provider.On("Complete", ctx, mock.MatchedBy(func(req *llm.CompletionRequest) bool {
		return req.Model == models.Current() &&
			len(req.Messages) == 2 &&
			req.Messages[0].Role == llm.RoleSystem &&
			req.Messages[0].Content == service.GuidePersona &&
			req.Messages[1] == llm.Message{Role: llm.RoleUser, Content: "Where is Gallery 4?"}
	})).Return("\n  On the third floor.  \n", nil).Once()

	before := time.Now().UTC().Add(-time.Second)
	resp, err := chatService.Chat(ctx, &model.ChatRequest{Message: "Where is Gallery 4?"})

	require.NoError(t, err)
	assert.Equal(t, "On the third floor.", resp.Response)
	assert.False(t, resp.IsMock)
	assert.Equal(t, models.Current(), resp.Model)

	ts, err := time.Parse(model.TimestampLayout, resp.Timestamp)
	require.NoError(t, err)
	assert.True(t, ts.After(before))
}

func TestChatService_Chat_TruncatesHistory(t *testing.T) {
	ctx := context.Background()
	chatService, _, provider := setupChatService(t)

	var captured *llm.CompletionRequest
	provider.On("Complete", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*llm.CompletionRequest)
		}).Return("ok", nil).Once()

	_, err := chatService.Chat(ctx, &model.ChatRequest{Message: "latest", ChatHistory: history(10)})
	require.NoError(t, err)
	require.NotNil(t, captured)

	// system + 6 turns * 2 + new message
	require.Len(t, captured.Messages, 14)
	assert.Equal(t, llm.Message{Role: llm.RoleUser, Content: "q4"}, captured.Messages[1])
	assert.Equal(t, llm.Message{Role: llm.RoleAssistant, Content: "a4"}, captured.Messages[2])
	assert.Equal(t, llm.Message{Role: llm.RoleAssistant, Content: "a9"}, captured.Messages[12])
	assert.Equal(t, llm.Message{Role: llm.RoleUser, Content: "latest"}, captured.Messages[13])
}

func TestChatService_Chat_UpstreamFailuresFallBack(t *testing.T) {
	testCases := []struct {
		name string
		err  error
	}{
		{"Invalid credential", fmt.Errorf("%w: Invalid API Key", llm.ErrInvalidCredential)},
		{"Rate limited", fmt.Errorf("%w: slow down", llm.ErrRateLimited)},
		{"Malformed response", llm.ErrMalformedResponse},
		{"Upstream error", &llm.UpstreamError{StatusCode: 502, Message: "Bad Gateway"}},
		{"Context canceled", context.Canceled},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			chatService, models, provider := setupChatService(t)
			provider.On("Complete", mock.Anything, mock.Anything).Return("", tc.err).Once()

			resp, err := chatService.Chat(context.Background(), &model.ChatRequest{Message: "Hello"})

			require.NoError(t, err)
			assert.True(t, resp.IsMock)
			assert.Contains(t, resp.Response, service.MockMarker)
			assert.Equal(t, models.Current(), resp.Model)
		})
	}
}

func TestChatService_Chat_UsesSelectedModel(t *testing.T) {
	ctx := context.Background()
	chatService, models, provider := setupChatService(t)

	_, err := models.Select("llama-3.3-70b-versatile")
	require.NoError(t, err)

	provider.On("Complete", ctx, mock.MatchedBy(func(req *llm.CompletionRequest) bool {
		return req.Model == "llama-3.3-70b-versatile"
	})).Return("hi", nil).Once()

	resp, err := chatService.Chat(ctx, &model.ChatRequest{Message: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, "llama-3.3-70b-versatile", resp.Model)
}

func TestChatService_Chat_ConcurrentWithSelect(t *testing.T) {
	chatService, models, provider := setupChatService(t)
	provider.On("Complete", mock.Anything, mock.Anything).Return("ok", nil)

	registry := models.Registry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for _, id := range registry {
				_, err := models.Select(id)
				assert.NoError(t, err)
			}
		}()
		go func() {
			defer wg.Done()
			resp, err := chatService.Chat(context.Background(), &model.ChatRequest{Message: "Hello"})
			assert.NoError(t, err)
			assert.Contains(t, registry, keyOf(registry, resp.Model))
		}()
	}
	wg.Wait()
}

func keyOf(m map[string]string, value string) string {
	for k, v := range m {
		if v == value {
			return k
		}
	}
	return ""
}

func TestBuildMessages(t *testing.T) {
	t.Run("No history", func(t *testing.T) {
		messages := service.BuildMessages("sys", nil, "hi")
		assert.Equal(t, []llm.Message{
			{Role: llm.RoleSystem, Content: "sys"},
			{Role: llm.RoleUser, Content: "hi"},
		}, messages)
	})

	t.Run("Exactly six turns are kept whole", func(t *testing.T) {
		messages := service.BuildMessages("sys", history(6), "hi")
		require.Len(t, messages, 14)
		assert.Equal(t, "q0", messages[1].Content)
	})

	t.Run("Does not modify the caller's history", func(t *testing.T) {
		turns := history(9)
		service.BuildMessages("sys", turns, "hi")
		assert.Equal(t, history(9), turns)
	})
}
