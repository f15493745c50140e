package functions

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mailmind/core/internal/database"
	"github.com/mailmind/core/internal/database/models"
	"github.com/mailmind/core/internal/services"
	"gorm.io/gorm"
)

// newTestDB opens a fresh database with the prompt templates seeded and
// the sample inbox cleared, so each test controls exactly which emails
// exist.
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

func createTestEmail(t *testing.T, emails *services.EmailService, subject, body string) *models.Email {
	t.Helper()

	email := &models.Email{
		Sender:      "Test Sender",
		SenderEmail: "sender@example.com",
		Subject:     subject,
		Body:        body,
	}
	if err := emails.CreateEmail(email); err != nil {
		t.Fatalf("failed to create test email: %v", err)
	}
	return email
}

func TestProcessInbox(t *testing.T) {
	db := newTestDB(t)
	emails := services.NewEmailService(db)
	prompts := services.NewPromptService(db)

	createTestEmail(t, emails, "First", "alpha body")
	createTestEmail(t, emails, "Second", "beta body")
	createTestEmail(t, emails, "Third", "gamma body")

	// The second email fails both AI calls; the others categorize as
	// Important with one extracted task each.
	stub := &stubCompleter{fn: func(prompt string) (string, error) {
		if strings.Contains(prompt, "beta body") {
			return "", errors.New("rate limited")
		}
		if strings.Contains(prompt, "Extract all action items") {
			return `[{"task":"Follow up","deadline":null}]`, nil
		}
		return "Important", nil
	}}

	processor := NewProcessor(emails, prompts, NewGateway(stub), NopGate{})

	result, err := processor.ProcessInbox()
	if err != nil {
		t.Fatalf("ProcessInbox failed: %v", err)
	}
	if result.Processed != 3 {
		t.Errorf("Processed = %d, want 3", result.Processed)
	}

	all, err := emails.ListUncategorized()
	if err != nil {
		t.Fatalf("ListUncategorized failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("%d emails still uncategorized after the batch", len(all))
	}

	wantCategories := map[string]models.EmailCategory{
		"First":  models.CategoryImportant,
		"Second": models.CategoryUncategorized,
		"Third":  models.CategoryImportant,
	}
	for _, email := range result.Emails {
		want := wantCategories[email.Subject]
		if email.Category == nil || *email.Category != string(want) {
			t.Errorf("email %q category = %v, want %q", email.Subject, email.Category, want)
		}
		items := email.ActionItemList()
		if email.Subject == "Second" {
			if len(items) != 0 {
				t.Errorf("failed email carries action items: %+v", items)
			}
		} else if len(items) != 1 || items[0].Task != "Follow up" {
			t.Errorf("email %q action items = %+v", email.Subject, items)
		}
	}
}

func TestProcessInboxSecondRunIsEmpty(t *testing.T) {
	db := newTestDB(t)
	emails := services.NewEmailService(db)
	prompts := services.NewPromptService(db)

	createTestEmail(t, emails, "Only", "some body")

	stub := fixedResponse("Newsletter")
	processor := NewProcessor(emails, prompts, NewGateway(stub), NopGate{})

	first, err := processor.ProcessInbox()
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if first.Processed != 1 {
		t.Fatalf("first run processed %d, want 1", first.Processed)
	}

	second, err := processor.ProcessInbox()
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if second.Processed != 0 {
		t.Errorf("second run processed %d, want 0", second.Processed)
	}
}

func TestProcessInboxEmptyInbox(t *testing.T) {
	db := newTestDB(t)
	emails := services.NewEmailService(db)
	prompts := services.NewPromptService(db)

	processor := NewProcessor(emails, prompts, NewGateway(fixedResponse("Important")), NopGate{})

	result, err := processor.ProcessInbox()
	if err != nil {
		t.Fatalf("ProcessInbox failed: %v", err)
	}
	if result.Processed != 0 || len(result.Emails) != 0 {
		t.Errorf("result = %+v, want empty", result)
	}
}

// editingGate mutates a prompt template between iterations, standing in
// for an operator editing prompts while a batch runs.
type editingGate struct {
	t       *testing.T
	prompts *services.PromptService
	content string
}

func (g *editingGate) Wait() {
	if _, err := g.prompts.UpdateContent("categorization", g.content); err != nil {
		g.t.Fatalf("failed to edit prompt mid-batch: %v", err)
	}
}

func TestProcessInboxPicksUpMidBatchPromptEdits(t *testing.T) {
	db := newTestDB(t)
	emails := services.NewEmailService(db)
	prompts := services.NewPromptService(db)

	createTestEmail(t, emails, "One", "first body")
	createTestEmail(t, emails, "Two", "second body")

	const marker = "ALWAYS ANSWER Newsletter"
	stub := &stubCompleter{fn: func(prompt string) (string, error) {
		if strings.Contains(prompt, "Extract all action items") {
			return "[]", nil
		}
		if strings.Contains(prompt, marker) {
			return "Newsletter", nil
		}
		return "Important", nil
	}}

	gate := &editingGate{t: t, prompts: prompts, content: marker}
	processor := NewProcessor(emails, prompts, NewGateway(stub), gate)

	result, err := processor.ProcessInbox()
	if err != nil {
		t.Fatalf("ProcessInbox failed: %v", err)
	}
	if result.Processed != 2 {
		t.Fatalf("processed %d, want 2", result.Processed)
	}

	if got := *result.Emails[0].Category; got != string(models.CategoryImportant) {
		t.Errorf("first email category = %q, want Important", got)
	}
	if got := *result.Emails[1].Category; got != string(models.CategoryNewsletter) {
		t.Errorf("second email category = %q, want Newsletter", got)
	}
}

func TestProcessInboxSkipsEmailDeletedMidBatch(t *testing.T) {
	db := newTestDB(t)
	emails := services.NewEmailService(db)
	prompts := services.NewPromptService(db)

	first := createTestEmail(t, emails, "Stays", "keep me")
	doomed := createTestEmail(t, emails, "Goes", "delete me")

	stub := &stubCompleter{fn: func(prompt string) (string, error) {
		if strings.Contains(prompt, "delete me") && strings.Contains(prompt, "Categorize this email") {
			// Delete the email while it is being processed
			if err := emails.DeleteEmail(doomed.ID); err != nil {
				t.Fatalf("failed to delete email mid-batch: %v", err)
			}
		}
		if strings.Contains(prompt, "Extract all action items") {
			return "[]", nil
		}
		return "Important", nil
	}}

	processor := NewProcessor(emails, prompts, NewGateway(stub), NopGate{})

	result, err := processor.ProcessInbox()
	if err != nil {
		t.Fatalf("ProcessInbox failed: %v", err)
	}
	if result.Processed != 1 {
		t.Errorf("processed %d, want 1", result.Processed)
	}
	if len(result.Emails) != 1 || result.Emails[0].ID != first.ID {
		t.Errorf("result emails = %+v, want only the surviving email", result.Emails)
	}
}
