package services

import (
	"path/filepath"
	"testing"

	"github.com/mailmind/core/internal/database"
	"github.com/mailmind/core/internal/database/models"
	"gorm.io/gorm"
)

// newTestDB opens a fresh database with the prompt templates seeded and
// the sample inbox cleared.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Initialize(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to initialize test database: %v", err)
	}
	if err := db.Where("1 = 1").Delete(&models.Email{}).Error; err != nil {
		t.Fatalf("failed to clear seeded emails: %v", err)
	}
	return db
}

func mustCreateEmail(t *testing.T, s *EmailService, subject string) *models.Email {
	t.Helper()

	email := &models.Email{
		Sender:      "Test Sender",
		SenderEmail: "sender@example.com",
		Subject:     subject,
		Body:        "test body",
	}
	if err := s.CreateEmail(email); err != nil {
		t.Fatalf("failed to create email: %v", err)
	}
	return email
}
