// File: internal/services/user_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"chatapp-backend/internal/auth"
	"chatapp-backend/internal/domain"
	"chatapp-backend/internal/repository/user"
)

// UserService implements signup, login and current-user resolution.
type UserService struct {
	userRepo  user.UserRepository
	jwtSecret []byte
	logger    Logger
}

func NewUserService(userRepo user.UserRepository, jwtSecret string, logger Logger) *UserService {
	return &UserService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		logger:    logger,
	}
}

// Register creates a new account and issues a token for it. Returns
// domain.ErrUsernameTaken when the username exists; the unique index in the
// repository backs up this check against concurrent signups.
func (s *UserService) Register(ctx context.Context, username, password string) (*domain.User, string, error) {
	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, "", domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", err
	}

	newUser := &domain.User{Username: username}
	if err := newUser.HashPassword(password); err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		return nil, "", err
	}

	token, err := auth.GenerateToken(created.Username, s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user registered", "user_id", created.ID)
	return created, token, nil
}

// Login verifies credentials and issues a token. Unknown usernames and bad
// passwords both map to domain.ErrInvalidCredentials so the response does
// not reveal which half was wrong.
func (s *UserService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	found, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := found.ValidatePassword(password); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(found.Username, s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user logged in", "user_id", found.ID)
	return found, token, nil
}

// ResolveUser turns a bearer token into the user it belongs to. Any
// failure (bad signature, expiry, unknown subject) is an authentication
// error.
func (s *UserService) ResolveUser(ctx context.Context, token string) (*domain.User, error) {
	username, err := auth.ValidateToken(token, s.jwtSecret)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	found, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, err
	}

	return found, nil
}

// GetUserByID returns a user profile, restricted to the caller's own id.
func (s *UserService) GetUserByID(ctx context.Context, currentUserID, targetID uint) (*domain.User, error) {
	if currentUserID != targetID {
		return nil, domain.ErrForbidden
	}
	return s.userRepo.FindByID(ctx, targetID)
}
