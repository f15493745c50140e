package services

import (
	"errors"

	"github.com/mailmind/core/internal/database/models"
	"gorm.io/gorm"
)

var (
	// ErrInvalidRole indicates a chat role outside user/assistant
	ErrInvalidRole = errors.New("invalid chat role")
)

// ChatService manages the append-only conversation transcript kept per
// email. Individual messages are never edited or deleted; a history is
// either appended to or cleared wholesale.
type ChatService struct {
	db *gorm.DB
}

// NewChatService creates a new ChatService instance
func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{db: db}
}

// History returns the full transcript for an email in insertion order
func (s *ChatService) History(emailID uint) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	if err := s.db.Where("email_id = ?", emailID).Order("id ASC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// Append adds one turn to an email's transcript
func (s *ChatService) Append(emailID uint, role, content string) (*models.ChatMessage, error) {
	if !models.IsValidRole(role) {
		return nil, ErrInvalidRole
	}

	message := &models.ChatMessage{
		EmailID: emailID,
		Role:    role,
		Content: content,
	}
	if err := s.db.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

// Clear removes the entire transcript for one email
func (s *ChatService) Clear(emailID uint) error {
	return s.db.Where("email_id = ?", emailID).Delete(&models.ChatMessage{}).Error
}
