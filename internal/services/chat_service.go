// File: internal/services/chat_service.go
package services

import (
	"context"

	"chatapp-backend/internal/domain"
	"chatapp-backend/internal/repository/conversation"
	"chatapp-backend/internal/repository/message"
)

// historyLimit caps how many prior messages are sent to the generation
// service as context.
const historyLimit = 10

// ChatService orchestrates conversations, their messages and AI replies.
// Every method takes the id of the authenticated caller and enforces the
// ownership contract before touching anything.
type ChatService struct {
	conversationRepo conversation.ConversationRepository
	messageRepo      message.MessageRepository
	replyService     *ReplyService
	logger           Logger
}

func NewChatService(
	conversationRepo conversation.ConversationRepository,
	messageRepo message.MessageRepository,
	replyService *ReplyService,
	logger Logger,
) *ChatService {
	return &ChatService{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		replyService:     replyService,
		logger:           logger,
	}
}

// CreateConversation creates a conversation owned by ownerID. Callers may
// only create conversations for themselves.
func (s *ChatService) CreateConversation(ctx context.Context, currentUserID, ownerID uint, title string) (*domain.Conversation, error) {
	if currentUserID != ownerID {
		return nil, domain.ErrForbidden
	}

	created, err := s.conversationRepo.Create(ctx, &domain.Conversation{
		UserID: ownerID,
		Title:  title,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("conversation created", "conversation_id", created.ID, "user_id", ownerID)
	return created, nil
}

// ListConversations returns a page of the target user's conversations,
// restricted to the caller's own.
func (s *ChatService) ListConversations(ctx context.Context, currentUserID, targetUserID uint, offset, limit int) ([]domain.Conversation, error) {
	if currentUserID != targetUserID {
		return nil, domain.ErrForbidden
	}
	return s.conversationRepo.FindByUserID(ctx, targetUserID, offset, limit)
}

// GetMessages returns a page of a conversation's messages in creation
// order. Absent conversation → domain.ErrConversationNotFound; foreign
// conversation → domain.ErrForbidden.
func (s *ChatService) GetMessages(ctx context.Context, currentUserID, conversationID uint, offset, limit int) ([]domain.Message, error) {
	if _, err := s.ownedConversation(ctx, currentUserID, conversationID); err != nil {
		return nil, err
	}
	return s.messageRepo.FindByConversationID(ctx, conversationID, offset, limit)
}

// CreateMessage stores a message in a conversation owned by the caller.
func (s *ChatService) CreateMessage(ctx context.Context, currentUserID, conversationID uint, content string, isUser bool) (*domain.Message, error) {
	if _, err := s.ownedConversation(ctx, currentUserID, conversationID); err != nil {
		return nil, err
	}

	return s.messageRepo.Create(ctx, &domain.Message{
		ConversationID: conversationID,
		Content:        content,
		IsUser:         isUser,
	})
}

// DeleteConversation removes a conversation and all of its messages.
func (s *ChatService) DeleteConversation(ctx context.Context, currentUserID, conversationID uint) error {
	if _, err := s.ownedConversation(ctx, currentUserID, conversationID); err != nil {
		return err
	}

	if err := s.conversationRepo.Delete(ctx, conversationID); err != nil {
		return err
	}

	s.logger.Info("conversation deleted", "conversation_id", conversationID, "user_id", currentUserID)
	return nil
}

// GenerateReply produces an AI reply to message using the last few turns of
// the conversation as context, persists it as a non-user message and
// returns it. Provider failures surface as the fallback text, never as an
// error.
func (s *ChatService) GenerateReply(ctx context.Context, currentUserID, conversationID uint, userMessage string) (*domain.Message, error) {
	if _, err := s.ownedConversation(ctx, currentUserID, conversationID); err != nil {
		return nil, err
	}

	recent, err := s.messageRepo.FindRecent(ctx, conversationID, historyLimit)
	if err != nil {
		return nil, err
	}

	// FindRecent is newest-first; the prompt wants chronological order.
	history := make([]domain.Message, len(recent))
	for i, msg := range recent {
		history[len(recent)-1-i] = msg
	}

	reply := s.replyService.GenerateReply(ctx, userMessage, history)

	return s.messageRepo.Create(ctx, &domain.Message{
		ConversationID: conversationID,
		Content:        reply,
		IsUser:         false,
	})
}

// ownedConversation loads a conversation and verifies the caller owns it.
func (s *ChatService) ownedConversation(ctx context.Context, currentUserID, conversationID uint) (*domain.Conversation, error) {
	found, err := s.conversationRepo.FindByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if found.UserID != currentUserID {
		return nil, domain.ErrForbidden
	}
	return found, nil
}
