// File: internal/repository/user/gorm_user_repository_test.go
package user

import (
	"context"
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

func TestCreateAndFindUser(t *testing.T) {
	repo := NewGormUserRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byName, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	repo := NewGormUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "hash"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "other"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestFindUser_NotFound(t *testing.T) {
	repo := NewGormUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByID(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
