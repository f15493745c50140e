package models

import (
	"encoding/json"
	"time"
)

// Email represents a stored email message
type Email struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Sender      string    `gorm:"size:255" json:"sender"`
	SenderEmail string    `gorm:"size:255" json:"senderEmail"`
	Subject     string    `gorm:"size:500" json:"subject"`
	Body        string    `gorm:"type:text" json:"body"`
	Date        time.Time `gorm:"index" json:"date"`
	Read        bool      `gorm:"default:false" json:"read"`
	Category    *string   `gorm:"size:20" json:"category"`
	ActionItems *string   `gorm:"type:text" json:"-"` // JSON array stored as string
	CreatedAt   time.Time `json:"-"`
}

// ActionItem is a task extracted from an email body
type ActionItem struct {
	Task     string  `json:"task"`
	Deadline *string `json:"deadline"`
}

// ActionItemList decodes the stored action items. Returns nil when none
// were extracted.
func (e *Email) ActionItemList() []ActionItem {
	if e.ActionItems == nil || *e.ActionItems == "" {
		return nil
	}
	var items []ActionItem
	if err := json.Unmarshal([]byte(*e.ActionItems), &items); err != nil {
		return nil
	}
	return items
}

// SetActionItemList encodes the given action items into the stored column.
// Empty lists are normalized to NULL.
func (e *Email) SetActionItemList(items []ActionItem) {
	if len(items) == 0 {
		e.ActionItems = nil
		return
	}
	data, err := json.Marshal(items)
	if err != nil {
		e.ActionItems = nil
		return
	}
	encoded := string(data)
	e.ActionItems = &encoded
}

// EmailCategory represents the category assigned to an email
type EmailCategory string

const (
	CategoryImportant     EmailCategory = "Important"
	CategoryNewsletter    EmailCategory = "Newsletter"
	CategorySpam          EmailCategory = "Spam"
	CategoryTodo          EmailCategory = "To-Do"
	CategoryUncategorized EmailCategory = "Uncategorized"
)

// IsValid checks if the category is one of the closed set
func (c EmailCategory) IsValid() bool {
	switch c {
	case CategoryImportant, CategoryNewsletter, CategorySpam, CategoryTodo, CategoryUncategorized:
		return true
	}
	return false
}
