// File: internal/domain/conversation.go
package domain

import "time"

// Conversation is a titled thread of messages owned by a single user.
type Conversation struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Messages []Message `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
