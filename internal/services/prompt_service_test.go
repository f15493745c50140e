package services

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/mailmind/core/internal/database/models"
)

func TestPromptsSeededOnStartup(t *testing.T) {
	db := newTestDB(t)
	s := NewPromptService(db)

	prompts, err := s.ListPrompts()
	if err != nil {
		t.Fatalf("ListPrompts failed: %v", err)
	}
	if len(prompts) != 3 {
		t.Fatalf("got %d prompts, want 3", len(prompts))
	}

	for _, workflowType := range []string{
		models.PromptTypeCategorization,
		models.PromptTypeActionExtraction,
		models.PromptTypeAutoReply,
	} {
		prompt, err := s.GetPromptByType(workflowType)
		if err != nil {
			t.Errorf("no seeded prompt for type %q: %v", workflowType, err)
			continue
		}
		if prompt.Content == "" || prompt.Content != prompt.DefaultContent {
			t.Errorf("prompt %q not seeded with its default content", prompt.ID)
		}
	}
}

func TestPromptUpdateAndReset(t *testing.T) {
	db := newTestDB(t)
	s := NewPromptService(db)

	original, err := s.GetPrompt("categorization")
	if err != nil {
		t.Fatalf("GetPrompt failed: %v", err)
	}

	updated, err := s.UpdateContent("categorization", "custom instructions")
	if err != nil {
		t.Fatalf("UpdateContent failed: %v", err)
	}
	if updated.Content != "custom instructions" {
		t.Errorf("content = %q after update", updated.Content)
	}
	if updated.DefaultContent != original.DefaultContent {
		t.Error("update touched the default content")
	}

	reset, err := s.ResetPrompt("categorization")
	if err != nil {
		t.Fatalf("ResetPrompt failed: %v", err)
	}
	if reset.Content != original.DefaultContent {
		t.Error("reset did not restore the seeded content")
	}
}

func TestPromptNotFound(t *testing.T) {
	db := newTestDB(t)
	s := NewPromptService(db)

	if _, err := s.GetPrompt("nonexistent"); !errors.Is(err, ErrPromptNotFound) {
		t.Errorf("GetPrompt err = %v, want ErrPromptNotFound", err)
	}
	if _, err := s.UpdateContent("nonexistent", "x"); !errors.Is(err, ErrPromptNotFound) {
		t.Errorf("UpdateContent err = %v, want ErrPromptNotFound", err)
	}
	if _, err := s.ResetPrompt("nonexistent"); !errors.Is(err, ErrPromptNotFound) {
		t.Errorf("ResetPrompt err = %v, want ErrPromptNotFound", err)
	}
}

// Property: no sequence of content edits can change what reset restores.
func TestProperty_PromptResetRestoresDefault(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 10
	properties := gopter.NewProperties(parameters)

	properties.Property("reset_after_any_edits_restores_seeded_content", prop.ForAll(
		func(edits []string) bool {
			db := newTestDB(t)
			s := NewPromptService(db)

			original, err := s.GetPrompt("auto_reply")
			if err != nil {
				return false
			}

			for _, content := range edits {
				if _, err := s.UpdateContent("auto_reply", content); err != nil {
					return false
				}
			}

			reset, err := s.ResetPrompt("auto_reply")
			if err != nil {
				return false
			}
			return reset.Content == original.DefaultContent &&
				reset.DefaultContent == original.DefaultContent
		},
		gen.SliceOf(gen.AnyString()),
	))

	properties.TestingRun(t)
}
