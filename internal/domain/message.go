// File: internal/domain/message.go
package domain

import "time"

// Message is a single turn within a conversation. IsUser distinguishes a
// human-authored turn from an AI-generated one. Messages are immutable once
// created; they are removed only when their conversation is deleted.
type Message struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	ConversationID uint      `json:"conversation_id" gorm:"not null;index"`
	Content        string    `json:"content" gorm:"type:text;not null"`
	// IsUser carries no column default on purpose: gorm substitutes a
	// tagged default for zero-valued fields, which would flip AI replies
	// (IsUser=false) back to true on insert.
	IsUser         bool      `json:"is_user"`
	CreatedAt      time.Time `json:"created_at"`
}
