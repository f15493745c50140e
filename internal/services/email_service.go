package services

import (
	"errors"
	"time"

	"github.com/mailmind/core/internal/database/models"
	"gorm.io/gorm"
)

var (
	// ErrEmailNotFound indicates the email was not found
	ErrEmailNotFound = errors.New("email not found")
	// ErrInvalidCategory indicates a category outside the closed set
	ErrInvalidCategory = errors.New("invalid email category")
)

// EmailService handles email storage operations
type EmailService struct {
	db *gorm.DB
}

// NewEmailService creates a new EmailService instance
func NewEmailService(db *gorm.DB) *EmailService {
	return &EmailService{db: db}
}

// EmailPatch is a partial update for an email. Nil fields are left
// untouched.
type EmailPatch struct {
	Sender      *string
	SenderEmail *string
	Subject     *string
	Body        *string
	Date        *time.Time
	Read        *bool
	Category    *string
	ActionItems *[]models.ActionItem
}

// ListEmails returns all emails, newest first
func (s *EmailService) ListEmails() ([]models.Email, error) {
	var emails []models.Email
	if err := s.db.Order("date DESC").Find(&emails).Error; err != nil {
		return nil, err
	}
	return emails, nil
}

// ListUncategorized returns the emails that have no category yet, in
// stable ascending id order. This is the snapshot the inbox processor
// iterates over.
func (s *EmailService) ListUncategorized() ([]models.Email, error) {
	var emails []models.Email
	if err := s.db.Where("category IS NULL").Order("id ASC").Find(&emails).Error; err != nil {
		return nil, err
	}
	return emails, nil
}

// GetEmail returns one email by id
func (s *EmailService) GetEmail(id uint) (*models.Email, error) {
	var email models.Email
	if err := s.db.First(&email, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, err
	}
	return &email, nil
}

// CreateEmail stores a new email. The id is assigned by the store; a zero
// date defaults to now.
func (s *EmailService) CreateEmail(email *models.Email) error {
	email.ID = 0
	if email.Date.IsZero() {
		email.Date = time.Now()
	}
	if email.Category != nil && !models.EmailCategory(*email.Category).IsValid() {
		return ErrInvalidCategory
	}
	return s.db.Create(email).Error
}

// UpdateEmail merges a partial patch into an existing email. It never
// creates a record.
func (s *EmailService) UpdateEmail(id uint, patch EmailPatch) (*models.Email, error) {
	email, err := s.GetEmail(id)
	if err != nil {
		return nil, err
	}

	if patch.Category != nil && !models.EmailCategory(*patch.Category).IsValid() {
		return nil, ErrInvalidCategory
	}

	if patch.Sender != nil {
		email.Sender = *patch.Sender
	}
	if patch.SenderEmail != nil {
		email.SenderEmail = *patch.SenderEmail
	}
	if patch.Subject != nil {
		email.Subject = *patch.Subject
	}
	if patch.Body != nil {
		email.Body = *patch.Body
	}
	if patch.Date != nil {
		email.Date = *patch.Date
	}
	if patch.Read != nil {
		email.Read = *patch.Read
	}
	if patch.Category != nil {
		email.Category = patch.Category
	}
	if patch.ActionItems != nil {
		email.SetActionItemList(*patch.ActionItems)
	}

	if err := s.db.Save(email).Error; err != nil {
		return nil, err
	}
	return email, nil
}

// SetProcessingResult writes the categorization outcome back to the store.
// Empty action item lists are normalized to NULL.
func (s *EmailService) SetProcessingResult(id uint, category models.EmailCategory, items []models.ActionItem) (*models.Email, error) {
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	email, err := s.GetEmail(id)
	if err != nil {
		return nil, err
	}

	value := string(category)
	email.Category = &value
	email.SetActionItemList(items)

	if err := s.db.Save(email).Error; err != nil {
		return nil, err
	}
	return email, nil
}

// SetActionItems stores the extracted action items for one email without
// touching its category.
func (s *EmailService) SetActionItems(id uint, items []models.ActionItem) (*models.Email, error) {
	email, err := s.GetEmail(id)
	if err != nil {
		return nil, err
	}

	email.SetActionItemList(items)

	if err := s.db.Save(email).Error; err != nil {
		return nil, err
	}
	return email, nil
}

// DeleteEmail removes an email by id
func (s *EmailService) DeleteEmail(id uint) error {
	result := s.db.Delete(&models.Email{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEmailNotFound
	}
	return nil
}
