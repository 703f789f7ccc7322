package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// Decoding configuration applied to every completion request.
const (
	Temperature = 0.7
	TopP        = 0.9
	MaxTokens   = 1024
)

type openAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider returns a provider for any OpenAI-compatible chat
// completions API (Groq, the Hugging Face router). A nil httpClient uses
// http.DefaultClient, which imposes no timeout.
func NewOpenAIProvider(baseURL string, credential Credential, httpClient *http.Client) CompletionProvider {
	cfg := openai.DefaultConfig(credential.Key())
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return &openAIProvider{client: openai.NewClientWithConfig(cfg)}
}

func (p *openAIProvider) Complete(ctx context.Context, req *CompletionRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: Temperature,
		TopP:        TopP,
		MaxTokens:   MaxTokens,
		Stream:      false,
	})
	if err != nil {
		return "", classifyError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrMalformedResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// classifyError maps a go-openai failure onto the upstream error taxonomy.
func classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return statusError(apiErr.HTTPStatusCode, apiErr.Message, err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		msg := http.StatusText(reqErr.HTTPStatusCode)
		if reqErr.Err != nil {
			msg = reqErr.Err.Error()
		}
		return statusError(reqErr.HTTPStatusCode, msg, err)
	}

	// A 2xx body that is not JSON, or JSON of the wrong shape.
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return &UpstreamError{Message: err.Error(), Err: err}
}

func statusError(status int, message string, cause error) error {
	switch status {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrInvalidCredential, message)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, message)
	default:
		if message == "" {
			message = http.StatusText(status)
		}
		return &UpstreamError{StatusCode: status, Message: message, Err: cause}
	}
}
