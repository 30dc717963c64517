// File: internal/domain/user.go
package domain

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is an account holder. The password is only ever stored as a bcrypt
// hash; the plaintext never leaves the signup/login path.
type User struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Conversations []Conversation `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// HashPassword hashes the given plaintext and stores it on the user.
// bcrypt salts every hash, so hashing the same password twice yields
// different values.
func (u *User) HashPassword(password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashed)
	return nil
}

// ValidatePassword compares a plaintext password with the stored hash.
func (u *User) ValidatePassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

func (u *User) IsValid() error {
	if u.Username == "" {
		return errors.New("username is required")
	}
	if len(u.Username) > 50 {
		return errors.New("username must be 50 characters or less")
	}
	return nil
}
