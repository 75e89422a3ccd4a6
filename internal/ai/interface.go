package ai

import "context"

// Message roles mirror the chat-completion wire format.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged entry in a completion request.
type Message struct {
	Role    string
	Content string
}

// CompletionRequest carries everything a provider needs for one call.
// Temperature and MaxTokens of zero mean "provider default".
type CompletionRequest struct {
	Messages    []Message
	Temperature float32
	MaxTokens   int
}

// Completer sends a prompt to a remote text-generation model and returns the
// raw reply. Implementations do no retries of their own; any transport,
// status or parse failure comes back as an error and callers treat it as
// "no content".
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
