package ai

import "context"

// Provider is the minimal surface the agent needs from a chat backend:
// one synchronous completion per call, text in and text out.
type Provider interface {
	// Name returns the provider name for logging and metrics.
	Name() string

	// Complete sends a completion request and returns the generated text.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionRequest represents a single completion request.
type CompletionRequest struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Message represents a single message in the conversation.
type Message struct {
	Role    MessageRole
	Content string
}

// MessageRole defines the role of a message sender.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Provider names used in configuration, logs and metrics.
const (
	ProviderNameGemini = "gemini"
	ProviderNameOpenAI = "openai"
)
