package services

import (
	"errors"

	"github.com/mailmind/core/internal/database/models"
	"gorm.io/gorm"
)

var (
	// ErrDraftNotFound indicates the draft was not found
	ErrDraftNotFound = errors.New("draft not found")
)

// DraftService handles reply draft storage operations
type DraftService struct {
	db *gorm.DB
}

// NewDraftService creates a new DraftService instance
func NewDraftService(db *gorm.DB) *DraftService {
	return &DraftService{db: db}
}

// DraftPatch is a partial update for a draft. Nil fields are left
// untouched.
type DraftPatch struct {
	To      *string
	ToName  *string
	Subject *string
	Body    *string
}

// ListDrafts returns all drafts, most recently updated first
func (s *DraftService) ListDrafts() ([]models.Draft, error) {
	var drafts []models.Draft
	if err := s.db.Order("updated_at DESC").Find(&drafts).Error; err != nil {
		return nil, err
	}
	return drafts, nil
}

// GetDraft returns one draft by id
func (s *DraftService) GetDraft(id uint) (*models.Draft, error) {
	var draft models.Draft
	if err := s.db.First(&draft, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, err
	}
	return &draft, nil
}

// CreateDraft stores a new draft. The id and timestamps are assigned by
// the store.
func (s *DraftService) CreateDraft(draft *models.Draft) error {
	draft.ID = 0
	return s.db.Create(draft).Error
}

// UpdateDraft merges a partial patch into an existing draft and refreshes
// its updated timestamp.
func (s *DraftService) UpdateDraft(id uint, patch DraftPatch) (*models.Draft, error) {
	draft, err := s.GetDraft(id)
	if err != nil {
		return nil, err
	}

	if patch.To != nil {
		draft.To = *patch.To
	}
	if patch.ToName != nil {
		draft.ToName = *patch.ToName
	}
	if patch.Subject != nil {
		draft.Subject = *patch.Subject
	}
	if patch.Body != nil {
		draft.Body = *patch.Body
	}

	if err := s.db.Save(draft).Error; err != nil {
		return nil, err
	}
	return draft, nil
}

// DeleteDraft removes a draft by id
func (s *DraftService) DeleteDraft(id uint) error {
	result := s.db.Delete(&models.Draft{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDraftNotFound
	}
	return nil
}
