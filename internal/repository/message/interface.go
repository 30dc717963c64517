// File: internal/repository/message/interface.go
package message

import (
	"context"

	"chatapp-backend/internal/domain"
)

// MessageRepository handles message data operations.
type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) (*domain.Message, error)
	FindByConversationID(ctx context.Context, conversationID uint, offset, limit int) ([]domain.Message, error)
	FindRecent(ctx context.Context, conversationID uint, limit int) ([]domain.Message, error)
}
