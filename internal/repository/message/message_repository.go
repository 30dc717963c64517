// File: internal/repository/message/message_repository.go
package message

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"chatapp-backend/internal/domain"
)

const (
	DefaultLimit = 100
	maxLimit     = 1000
)

type gormMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &gormMessageRepository{db: db}
}

func (r *gormMessageRepository) Create(ctx context.Context, message *domain.Message) (*domain.Message, error) {
	if message.ConversationID == 0 {
		return nil, errors.New("conversation ID is required")
	}
	if message.Content == "" {
		return nil, errors.New("content is required")
	}

	err := r.db.WithContext(ctx).Create(message).Error
	if err != nil {
		// No message content in logs.
		log.Printf("[MessageRepository] Database error during message creation for conversation ID %d: %v", message.ConversationID, err)
		return nil, errors.New("database error creating message")
	}

	return message, nil
}

// FindByConversationID returns a page of messages in creation order.
func (r *gormMessageRepository) FindByConversationID(ctx context.Context, conversationID uint, offset, limit int) ([]domain.Message, error) {
	if conversationID == 0 {
		return nil, errors.New("invalid conversation ID")
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > maxLimit {
		return nil, fmt.Errorf("invalid limit: must be between 1 and %d", maxLimit)
	}
	if offset < 0 {
		return nil, errors.New("invalid offset: must be >= 0")
	}

	var messages []domain.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error finding messages for conversation ID %d: %v", conversationID, err)
		return nil, errors.New("database error fetching messages")
	}

	return messages, nil
}

// FindRecent returns the newest messages first, capped at limit. Callers
// that need chronological order reverse the slice themselves.
func (r *gormMessageRepository) FindRecent(ctx context.Context, conversationID uint, limit int) ([]domain.Message, error) {
	if conversationID == 0 {
		return nil, errors.New("invalid conversation ID")
	}
	if limit <= 0 || limit > maxLimit {
		limit = 10
	}

	var messages []domain.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error finding recent messages for conversation ID %d: %v", conversationID, err)
		return nil, errors.New("database error fetching recent messages")
	}

	return messages, nil
}
