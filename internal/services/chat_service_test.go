// File: internal/services/chat_service_test.go
package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"chatapp-backend/internal/domain"
	"chatapp-backend/internal/repository/conversation"
	"chatapp-backend/internal/repository/message"
	"chatapp-backend/internal/repository/user"
)

type chatFixture struct {
	svc   *ChatService
	users *UserService
	db    *gorm.DB
	ai    *fakeProvider
}

func newChatFixture(t *testing.T) *chatFixture {
	t.Helper()
	db := newTestDB(t)
	provider := &fakeProvider{reply: "generated reply"}
	replySvc := NewReplyService(provider, &NoOpLogger{})
	return &chatFixture{
		svc: NewChatService(
			conversation.NewConversationRepository(db),
			message.NewMessageRepository(db),
			replySvc,
			&NoOpLogger{},
		),
		users: NewUserService(user.NewGormUserRepository(db), testJWTSecret, &NoOpLogger{}),
		db:    db,
		ai:    provider,
	}
}

func (f *chatFixture) register(t *testing.T, username string) *domain.User {
	t.Helper()
	u, _, err := f.users.Register(context.Background(), username, "pw1")
	require.NoError(t, err)
	return u
}

func TestCreateConversation_OwnOnly(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")

	created, err := f.svc.CreateConversation(ctx, alice.ID, alice.ID, "trip")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, created.UserID)

	_, err = f.svc.CreateConversation(ctx, alice.ID, bob.ID, "sneaky")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListConversations_OwnOnly(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")

	_, err := f.svc.CreateConversation(ctx, alice.ID, alice.ID, "trip")
	require.NoError(t, err)

	list, err := f.svc.ListConversations(ctx, alice.ID, alice.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = f.svc.ListConversations(ctx, bob.ID, alice.ID, 0, 0)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetMessages(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")

	conv, err := f.svc.CreateConversation(ctx, alice.ID, alice.ID, "trip")
	require.NoError(t, err)

	_, err = f.svc.CreateMessage(ctx, alice.ID, conv.ID, "hi", true)
	require.NoError(t, err)

	messages, err := f.svc.GetMessages(ctx, alice.ID, conv.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "hi", messages[0].Content)
	assert.True(t, messages[0].IsUser)

	_, err = f.svc.GetMessages(ctx, bob.ID, conv.ID, 0, 0)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.svc.GetMessages(ctx, alice.ID, 9999, 0, 0)
	assert.ErrorIs(t, err, domain.ErrConversationNotFound)
}

func TestDeleteConversation(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")

	conv, err := f.svc.CreateConversation(ctx, alice.ID, alice.ID, "trip")
	require.NoError(t, err)
	_, err = f.svc.CreateMessage(ctx, alice.ID, conv.ID, "hi", true)
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.DeleteConversation(ctx, bob.ID, conv.ID), domain.ErrForbidden)

	require.NoError(t, f.svc.DeleteConversation(ctx, alice.ID, conv.ID))

	var remaining int64
	require.NoError(t, f.db.Model(&domain.Message{}).Where("conversation_id = ?", conv.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)

	// Cascade is idempotent-checked: the second delete reports not found.
	assert.ErrorIs(t, f.svc.DeleteConversation(ctx, alice.ID, conv.ID), domain.ErrConversationNotFound)
}

func TestGenerateReply_PersistsAssistantMessage(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice")

	conv, err := f.svc.CreateConversation(ctx, alice.ID, alice.ID, "trip")
	require.NoError(t, err)
	_, err = f.svc.CreateMessage(ctx, alice.ID, conv.ID, "hi", true)
	require.NoError(t, err)

	reply, err := f.svc.GenerateReply(ctx, alice.ID, conv.ID, "continue")
	require.NoError(t, err)
	assert.False(t, reply.IsUser)
	assert.Equal(t, "generated reply", reply.Content)
	assert.Equal(t, conv.ID, reply.ConversationID)

	messages, err := f.svc.GetMessages(ctx, alice.ID, conv.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.False(t, messages[1].IsUser)
}

func TestGenerateReply_HistoryChronologicalAndCapped(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice")

	conv, err := f.svc.CreateConversation(ctx, alice.ID, alice.ID, "trip")
	require.NoError(t, err)

	for i := 0; i < 15; i++ {
		_, err := f.svc.CreateMessage(ctx, alice.ID, conv.ID, fmt.Sprintf("m%d", i), true)
		require.NoError(t, err)
	}

	_, err = f.svc.GenerateReply(ctx, alice.ID, conv.ID, "continue")
	require.NoError(t, err)

	// system + 10 history turns + new message
	require.Len(t, f.ai.turns, 12)
	assert.Equal(t, "m5", f.ai.turns[1].Content)
	assert.Equal(t, "m14", f.ai.turns[10].Content)
	assert.Equal(t, "continue", f.ai.turns[11].Content)
}

func TestGenerateReply_FallbackStillPersisted(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice")

	conv, err := f.svc.CreateConversation(ctx, alice.ID, alice.ID, "trip")
	require.NoError(t, err)

	f.ai.err = errors.New("quota exceeded")

	reply, err := f.svc.GenerateReply(ctx, alice.ID, conv.ID, "continue")
	require.NoError(t, err)
	assert.False(t, reply.IsUser)
	assert.Equal(t, FallbackReply, reply.Content)
	assert.NotEmpty(t, reply.Content)
}
