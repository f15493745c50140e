package services

import (
	"errors"

	"github.com/mailmind/core/internal/database/models"
	"gorm.io/gorm"
)

var (
	// ErrPromptNotFound indicates the prompt template was not found
	ErrPromptNotFound = errors.New("prompt not found")
)

// PromptService handles the registry of AI prompt templates. Templates are
// seeded once at startup; their content can be edited or reset but the
// templates themselves are never created or destroyed at runtime.
type PromptService struct {
	db *gorm.DB
}

// NewPromptService creates a new PromptService instance
func NewPromptService(db *gorm.DB) *PromptService {
	return &PromptService{db: db}
}

// ListPrompts returns all prompt templates
func (s *PromptService) ListPrompts() ([]models.Prompt, error) {
	var prompts []models.Prompt
	if err := s.db.Order("id ASC").Find(&prompts).Error; err != nil {
		return nil, err
	}
	return prompts, nil
}

// GetPrompt returns one prompt template by id
func (s *PromptService) GetPrompt(id string) (*models.Prompt, error) {
	var prompt models.Prompt
	if err := s.db.Where("id = ?", id).First(&prompt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromptNotFound
		}
		return nil, err
	}
	return &prompt, nil
}

// GetPromptByType returns the prompt template for a workflow type
func (s *PromptService) GetPromptByType(workflowType string) (*models.Prompt, error) {
	var prompt models.Prompt
	if err := s.db.Where("type = ?", workflowType).First(&prompt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromptNotFound
		}
		return nil, err
	}
	return &prompt, nil
}

// UpdateContent replaces the content of a template. The text is not
// validated for structure since it becomes raw LLM instruction text.
func (s *PromptService) UpdateContent(id, content string) (*models.Prompt, error) {
	prompt, err := s.GetPrompt(id)
	if err != nil {
		return nil, err
	}

	prompt.Content = content
	if err := s.db.Save(prompt).Error; err != nil {
		return nil, err
	}
	return prompt, nil
}

// ResetPrompt restores a template's content to the value captured when it
// was seeded, regardless of how many edits occurred since.
func (s *PromptService) ResetPrompt(id string) (*models.Prompt, error) {
	prompt, err := s.GetPrompt(id)
	if err != nil {
		return nil, err
	}

	prompt.Content = prompt.DefaultContent
	if err := s.db.Save(prompt).Error; err != nil {
		return nil, err
	}
	return prompt, nil
}
