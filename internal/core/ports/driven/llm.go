package driven

import "context"

// Message roles understood by chat completion endpoints.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// LLMService is the generation endpoint consumed by the query pipeline.
// A call either returns generated text or a single error outcome; there
// is never a partial answer.
type LLMService interface {
	// Chat sends a role-tagged message list and returns the completion.
	Chat(ctx context.Context, messages []ChatMessage, opts ChatOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string
}

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	// Role is one of "system" or "user".
	Role string

	// Content is the message text.
	Content string
}

// ChatOptions configures generation behaviour.
type ChatOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness. The pipeline uses a fixed low value
	// to bias toward literal extraction over elaboration.
	Temperature float32
}
