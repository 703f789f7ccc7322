package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturedRequest is the subset of the chat completions payload the tests inspect.
type capturedRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature"`
	TopP        float32   `json:"top_p"`
	MaxTokens   int       `json:"max_tokens"`
	Stream      bool      `json:"stream"`
}

// newUpstream starts a fake provider that answers every request with status and body,
// and records the last request it received.
func newUpstream(t *testing.T, status int, body string) (*httptest.Server, *capturedRequest, *http.Header) {
	t.Helper()
	captured := &capturedRequest{}
	headers := &http.Header{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		*headers = r.Header.Clone()

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(raw, captured))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, err = w.Write([]byte(body))
		assert.NoError(t, err)
	}))
	t.Cleanup(server.Close)
	return server, captured, headers
}

func TestOpenAIProvider_Complete(t *testing.T) {
	ctx := context.Background()
	req := &CompletionRequest{
		Model: "llama-3.3-70b-versatile",
		Messages: []Message{
			{Role: RoleSystem, Content: "You are a museum guide."},
			{Role: RoleUser, Content: "Hello"},
		},
	}

	t.Run("Success", func(t *testing.T) {
		server, captured, headers := newUpstream(t, http.StatusOK,
			`{"id":"c1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"  Welcome!  "},"finish_reason":"stop"}]}`)

		provider := NewOpenAIProvider(server.URL+"/v1", Configured("secret"), nil)
		text, err := provider.Complete(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "  Welcome!  ", text)
		assert.Equal(t, "Bearer secret", headers.Get("Authorization"))
		assert.Equal(t, "llama-3.3-70b-versatile", captured.Model)
		assert.Equal(t, req.Messages, captured.Messages)
		assert.InDelta(t, Temperature, captured.Temperature, 0.0001)
		assert.InDelta(t, TopP, captured.TopP, 0.0001)
		assert.Equal(t, MaxTokens, captured.MaxTokens)
		assert.False(t, captured.Stream)
	})

	t.Run("Failure - 401 maps to invalid credential", func(t *testing.T) {
		server, _, _ := newUpstream(t, http.StatusUnauthorized,
			`{"error":{"message":"Invalid API Key","type":"invalid_request_error","code":"invalid_api_key"}}`)

		_, err := NewOpenAIProvider(server.URL+"/v1", Configured("bad"), nil).Complete(ctx, req)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidCredential)
		assert.ErrorContains(t, err, "Invalid API Key")
	})

	t.Run("Failure - 429 maps to rate limited", func(t *testing.T) {
		server, _, _ := newUpstream(t, http.StatusTooManyRequests,
			`{"error":{"message":"Rate limit reached","type":"requests"}}`)

		_, err := NewOpenAIProvider(server.URL+"/v1", Configured("secret"), nil).Complete(ctx, req)

		assert.ErrorIs(t, err, ErrRateLimited)
	})

	t.Run("Failure - other status maps to upstream error", func(t *testing.T) {
		server, _, _ := newUpstream(t, http.StatusServiceUnavailable,
			`{"error":{"message":"Service Unavailable","type":"server_error"}}`)

		_, err := NewOpenAIProvider(server.URL+"/v1", Configured("secret"), nil).Complete(ctx, req)

		var upstreamErr *UpstreamError
		require.True(t, errors.As(err, &upstreamErr))
		assert.Equal(t, http.StatusServiceUnavailable, upstreamErr.StatusCode)
		assert.Equal(t, "Service Unavailable", upstreamErr.Message)
	})

	t.Run("Failure - non JSON error body", func(t *testing.T) {
		server, _, _ := newUpstream(t, http.StatusBadGateway, `<html>bad gateway</html>`)

		_, err := NewOpenAIProvider(server.URL+"/v1", Configured("secret"), nil).Complete(ctx, req)

		var upstreamErr *UpstreamError
		require.True(t, errors.As(err, &upstreamErr))
		assert.Equal(t, http.StatusBadGateway, upstreamErr.StatusCode)
	})

	t.Run("Failure - empty choices is malformed", func(t *testing.T) {
		server, _, _ := newUpstream(t, http.StatusOK, `{"id":"c1","choices":[]}`)

		_, err := NewOpenAIProvider(server.URL+"/v1", Configured("secret"), nil).Complete(ctx, req)

		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("Failure - unparseable success body is malformed", func(t *testing.T) {
		server, _, _ := newUpstream(t, http.StatusOK, `not json`)

		_, err := NewOpenAIProvider(server.URL+"/v1", Configured("secret"), nil).Complete(ctx, req)

		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("Failure - unreachable provider", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		_, err := NewOpenAIProvider(url+"/v1", Configured("secret"), nil).Complete(ctx, req)

		var upstreamErr *UpstreamError
		require.True(t, errors.As(err, &upstreamErr))
		assert.Zero(t, upstreamErr.StatusCode)
	})
}

func TestLookupProfile(t *testing.T) {
	groq, ok := LookupProfile(ProviderGroq)
	require.True(t, ok)
	assert.Equal(t, "Groq", groq.DisplayName)
	assert.True(t, groq.HasModel(groq.DefaultModel))
	assert.False(t, groq.HasModel("not-a-real-model"))

	// Callers get their own copy of the registry.
	groq.Models["EXTRA"] = "extra-model"
	again, _ := LookupProfile(ProviderGroq)
	assert.NotContains(t, again.Models, "EXTRA")

	hf, ok := LookupProfile(ProviderHuggingFace)
	require.True(t, ok)
	assert.True(t, hf.HasModel(hf.DefaultModel))

	_, ok = LookupProfile("openai")
	assert.False(t, ok)
	assert.Equal(t, []string{ProviderGroq, ProviderHuggingFace}, ProfileNames())
}

func TestCredential(t *testing.T) {
	assert.True(t, Configured("k").IsConfigured())
	assert.False(t, Configured("").IsConfigured())
	assert.False(t, Unconfigured().IsConfigured())
	assert.Equal(t, "Configured", Configured("k").String())
	assert.NotContains(t, Configured("super-secret").String(), "super-secret")
}
