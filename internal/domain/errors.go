// File: internal/domain/errors.go
package domain

import "errors"

// user
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("incorrect username or password")
)

// conversation
var (
	ErrConversationNotFound = errors.New("conversation not found")
)

// authorization
var (
	ErrForbidden = errors.New("not authorized to access this resource")
)
