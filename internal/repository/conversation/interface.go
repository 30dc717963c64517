// File: internal/repository/conversation/interface.go
package conversation

import (
	"context"

	"chatapp-backend/internal/domain"
)

// ConversationRepository handles conversation data operations.
type ConversationRepository interface {
	Create(ctx context.Context, conversation *domain.Conversation) (*domain.Conversation, error)
	FindByID(ctx context.Context, id uint) (*domain.Conversation, error)
	FindByUserID(ctx context.Context, userID uint, offset, limit int) ([]domain.Conversation, error)
	Delete(ctx context.Context, id uint) error
}
