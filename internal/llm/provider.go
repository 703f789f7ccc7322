package llm

import "context"

// Message is a single chat message sent to the completion provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// CompletionRequest is what the service hands to a provider for one reply.
type CompletionRequest struct {
	Model    string
	Messages []Message
}

// CompletionProvider produces a single non-streaming chat completion.
type CompletionProvider interface {
	Complete(ctx context.Context, req *CompletionRequest) (string, error)
}
