package models

// Prompt represents a user-editable instruction template for one of the
// AI workflows. Exactly one prompt exists per workflow type; templates are
// seeded at startup and never created or destroyed at runtime.
type Prompt struct {
	ID             string `gorm:"primaryKey;size:50" json:"id"`
	Name           string `gorm:"size:100" json:"name"`
	Description    string `gorm:"size:255" json:"description"`
	Type           string `gorm:"size:50;uniqueIndex" json:"type"`
	Content        string `gorm:"type:text" json:"content"`
	DefaultContent string `gorm:"type:text" json:"-"` // captured at seed time, reset target
}

// Prompt workflow types
const (
	PromptTypeCategorization   = "categorization"
	PromptTypeActionExtraction = "action_extraction"
	PromptTypeAutoReply        = "auto_reply"
)
