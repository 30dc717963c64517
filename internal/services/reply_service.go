// File: internal/services/reply_service.go
package services

import (
	"context"

	"chatapp-backend/internal/domain"
	"chatapp-backend/internal/services/ai"
)

const systemPrompt = "You are a helpful assistant."

// FallbackReply is returned whenever the generation service fails. Reply
// generation must never fail a conversation's message flow, so provider
// errors are logged and absorbed here.
const FallbackReply = "I'm sorry, I'm having trouble processing your request right now."

// ReplyService formats conversation history into a prompt and asks the
// completion provider for the next assistant turn.
type ReplyService struct {
	provider ai.CompletionProvider
	logger   Logger
}

func NewReplyService(provider ai.CompletionProvider, logger Logger) *ReplyService {
	return &ReplyService{provider: provider, logger: logger}
}

// GenerateReply builds the prompt from history (oldest first) plus the new
// message and returns the generated text, or FallbackReply on any failure.
func (s *ReplyService) GenerateReply(ctx context.Context, message string, history []domain.Message) string {
	turns := make([]ai.Turn, 0, len(history)+2)
	turns = append(turns, ai.Turn{Role: ai.RoleSystem, Content: systemPrompt})

	for _, msg := range history {
		role := ai.RoleAssistant
		if msg.IsUser {
			role = ai.RoleUser
		}
		turns = append(turns, ai.Turn{Role: role, Content: msg.Content})
	}

	turns = append(turns, ai.Turn{Role: ai.RoleUser, Content: message})

	reply, err := s.provider.Complete(ctx, turns)
	if err != nil {
		s.logger.Error("reply generation failed", "error", err)
		return FallbackReply
	}

	return reply
}
