// File: internal/repository/user/gorm_user_repository.go
package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"chatapp-backend/internal/domain"
)

type gormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

// Create inserts a new user. Username uniqueness is enforced by the unique
// index even when the caller already checked for an existing row.
func (r *gormUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := user.IsValid(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUsernameTaken
		}
		log.Printf("[UserRepository] Database error during user creation: %v", err)
		return nil, errors.New("database error creating user")
	}

	return user, nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if id == 0 {
		return nil, errors.New("invalid user ID")
	}

	var user domain.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	return r.handleFindError(err, &user, "FindByID")
}

func (r *gormUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if username == "" {
		return nil, errors.New("invalid username")
	}

	var user domain.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	return r.handleFindError(err, &user, "FindByUsername")
}

// handleFindError maps gorm's not-found to the domain sentinel and keeps
// raw database errors out of responses.
func (r *gormUserRepository) handleFindError(err error, user *domain.User, operation string) (*domain.User, error) {
	if err == nil {
		return user, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	log.Printf("[UserRepository] %s database error: %v", operation, err)
	return nil, errors.New("database query failed")
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
