package port

import "context"

// Role identifies the author of a completion message.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one entry in the ordered conversation sent to a completion
// service.
type Message struct {
	Role    Role
	Content string
}

// CompletionRequest carries everything a completion backend needs for a
// single call. JSONMode asks the backend to constrain output to a JSON
// object where the provider supports it; providers without structured output
// ignore the flag.
type CompletionRequest struct {
	Model       string
	Temperature float32
	JSONMode    bool
	Messages    []Message
}

// CompletionClient abstracts a natural-language completion service. The
// response is a single text blob; any provider metadata beyond it is
// discarded.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
