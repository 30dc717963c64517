// File: internal/services/ai/interface.go
package ai

import "context"

// Chat roles understood by the completion provider.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one entry of the prompt sent to the generation service.
type Turn struct {
	Role    string
	Content string
}

// CompletionProvider produces a reply for an ordered sequence of turns.
type CompletionProvider interface {
	Complete(ctx context.Context, turns []Turn) (string, error)
}
