// File: internal/repository/conversation/conversation_repository.go
package conversation

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"chatapp-backend/internal/domain"
)

const (
	// DefaultLimit is applied when the caller does not ask for a page size.
	DefaultLimit = 100
	maxLimit     = 1000
)

type gormConversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &gormConversationRepository{db: db}
}

func (r *gormConversationRepository) Create(ctx context.Context, conversation *domain.Conversation) (*domain.Conversation, error) {
	if conversation.UserID == 0 {
		return nil, errors.New("user ID is required")
	}
	if len(conversation.Title) > 255 {
		return nil, errors.New("title must be 255 characters or less")
	}

	err := r.db.WithContext(ctx).Create(conversation).Error
	if err != nil {
		log.Printf("[ConversationRepository] Database error during creation for user ID %d: %v", conversation.UserID, err)
		return nil, errors.New("database error creating conversation")
	}

	return conversation, nil
}

func (r *gormConversationRepository) FindByID(ctx context.Context, id uint) (*domain.Conversation, error) {
	if id == 0 {
		return nil, errors.New("invalid conversation ID")
	}

	var conversation domain.Conversation
	err := r.db.WithContext(ctx).First(&conversation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrConversationNotFound
		}
		log.Printf("[ConversationRepository] FindByID database error: %v", err)
		return nil, errors.New("database query failed")
	}

	return &conversation, nil
}

// FindByUserID returns a page of the user's conversations in insertion
// order.
func (r *gormConversationRepository) FindByUserID(ctx context.Context, userID uint, offset, limit int) ([]domain.Conversation, error) {
	if userID == 0 {
		return nil, errors.New("invalid user ID")
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

	var conversations []domain.Conversation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&conversations).Error
	if err != nil {
		log.Printf("[ConversationRepository] Database error finding conversations for user ID %d: %v", userID, err)
		return nil, errors.New("database error fetching conversations")
	}

	return conversations, nil
}

// Delete removes a conversation and all of its messages in one transaction,
// so a failure part-way through leaves no half-cascaded state behind.
// Returns domain.ErrConversationNotFound when no row was removed.
func (r *gormConversationRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("invalid conversation ID")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("conversation_id = ?", id).Delete(&domain.Message{}).Error; err != nil {
			log.Printf("[ConversationRepository] Database error deleting messages for conversation ID %d: %v", id, err)
			return errors.New("database error deleting conversation messages")
		}

		result := tx.Delete(&domain.Conversation{}, id)
		if result.Error != nil {
			log.Printf("[ConversationRepository] Database error deleting conversation ID %d: %v", id, result.Error)
			return errors.New("database error deleting conversation")
		}
		if result.RowsAffected == 0 {
			return domain.ErrConversationNotFound
		}
		return nil
	})
}
