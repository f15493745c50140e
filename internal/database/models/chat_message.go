package models

import (
	"time"
)

// ChatMessage is one turn of the per-email conversation transcript.
// Messages for an email are stored and read in strict insertion order.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EmailID   uint      `gorm:"index;not null" json:"emailId"`
	Role      string    `gorm:"size:20;not null" json:"role"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"timestamp"`
}

// Chat message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// IsValidRole checks if the role is one of the two allowed values
func IsValidRole(role string) bool {
	return role == RoleUser || role == RoleAssistant
}
