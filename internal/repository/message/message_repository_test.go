// File: internal/repository/message/message_repository_test.go
package message

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"chatapp-backend/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Conversation{}, &domain.Message{}))
	return db
}

func seedConversation(t *testing.T, db *gorm.DB) *domain.Conversation {
	t.Helper()
	u := &domain.User{Username: "alice", PasswordHash: "hash"}
	require.NoError(t, db.Create(u).Error)
	c := &domain.Conversation{UserID: u.ID, Title: "trip"}
	require.NoError(t, db.Create(c).Error)
	return c
}

func TestCreateMessage(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository(db)
	conv := seedConversation(t, db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Message{ConversationID: conv.ID, Content: "hi", IsUser: true})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.True(t, created.IsUser)
}

func TestCreateMessage_AssistantFlagPersists(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository(db)
	conv := seedConversation(t, db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Message{ConversationID: conv.ID, Content: "reply", IsUser: false})
	require.NoError(t, err)
	assert.False(t, created.IsUser)

	// Re-read from the database so a column default cannot hide behind the
	// in-memory struct.
	var stored domain.Message
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.False(t, stored.IsUser)
}

func TestCreateMessage_RequiresContent(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository(db)
	conv := seedConversation(t, db)

	_, err := repo.Create(context.Background(), &domain.Message{ConversationID: conv.ID, Content: ""})
	assert.Error(t, err)
}

func TestFindByConversationID_CreationOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository(db)
	conv := seedConversation(t, db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, &domain.Message{
			ConversationID: conv.ID,
			Content:        fmt.Sprintf("m%d", i),
			IsUser:         i%2 == 0,
		})
		require.NoError(t, err)
	}

	messages, err := repo.FindByConversationID(ctx, conv.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, messages, 5)
	for i, m := range messages {
		assert.Equal(t, fmt.Sprintf("m%d", i), m.Content)
	}

	page, err := repo.FindByConversationID(ctx, conv.ID, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "m1", page[0].Content)
	assert.Equal(t, "m2", page[1].Content)
}

func TestFindRecent_NewestFirstCapped(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository(db)
	conv := seedConversation(t, db)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		_, err := repo.Create(ctx, &domain.Message{
			ConversationID: conv.ID,
			Content:        fmt.Sprintf("m%d", i),
			IsUser:         true,
		})
		require.NoError(t, err)
	}

	recent, err := repo.FindRecent(ctx, conv.ID, 10)
	require.NoError(t, err)
	require.Len(t, recent, 10)
	assert.Equal(t, "m14", recent[0].Content)
	assert.Equal(t, "m5", recent[9].Content)
}
