package functions

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mailmind/core/internal/database/models"
)

// stubCompleter records prompts and replies with a canned function
type stubCompleter struct {
	fn      func(prompt string) (string, error)
	prompts []string
}

func (s *stubCompleter) Complete(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.fn(prompt)
}

func fixedResponse(response string) *stubCompleter {
	return &stubCompleter{fn: func(string) (string, error) { return response, nil }}
}

func failingCompleter(err error) *stubCompleter {
	return &stubCompleter{fn: func(string) (string, error) { return "", err }}
}

func TestGatewayCategorize(t *testing.T) {
	gateway := NewGateway(fixedResponse("Newsletter"))
	if got := gateway.Categorize("weekly digest", "categorize this"); got != models.CategoryNewsletter {
		t.Errorf("Categorize = %q, want %q", got, models.CategoryNewsletter)
	}
}

func TestGatewayCategorizeFailureDegradesToUncategorized(t *testing.T) {
	gateway := NewGateway(failingCompleter(errors.New("upstream down")))
	if got := gateway.Categorize("body", "tmpl"); got != models.CategoryUncategorized {
		t.Errorf("Categorize on failure = %q, want %q", got, models.CategoryUncategorized)
	}
}

func TestGatewayCategorizePromptContainsTemplateAndBody(t *testing.T) {
	stub := fixedResponse("Spam")
	gateway := NewGateway(stub)
	gateway.Categorize("win a prize", "the template text")

	if len(stub.prompts) != 1 {
		t.Fatalf("expected 1 completion call, got %d", len(stub.prompts))
	}
	if !strings.Contains(stub.prompts[0], "the template text") {
		t.Error("prompt does not contain the template")
	}
	if !strings.Contains(stub.prompts[0], "win a prize") {
		t.Error("prompt does not contain the email body")
	}
}

func TestGatewayExtractActionItems(t *testing.T) {
	gateway := NewGateway(fixedResponse(`[{"task":"Send report","deadline":"Friday"}]`))
	items := gateway.ExtractActionItems("body", "tmpl")
	if len(items) != 1 || items[0].Task != "Send report" {
		t.Fatalf("ExtractActionItems = %+v, want one Send report item", items)
	}
}

func TestGatewayExtractActionItemsFailureDegradesToEmpty(t *testing.T) {
	gateway := NewGateway(failingCompleter(errors.New("timeout")))
	if items := gateway.ExtractActionItems("body", "tmpl"); len(items) != 0 {
		t.Errorf("ExtractActionItems on failure = %+v, want empty", items)
	}
}

func TestGatewayGenerateDraftReply(t *testing.T) {
	email := EmailContext{
		Sender:      "Mike Chen",
		SenderEmail: "mike.chen@clientco.com",
		Subject:     "Contract Renewal",
		Body:        "Please review the terms.",
	}

	t.Run("regular reply", func(t *testing.T) {
		gateway := NewGateway(fixedResponse("Hi Mike,\n\nI'll review the terms today.\n"))
		draft, err := gateway.GenerateDraftReply(email, "tmpl")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft == nil {
			t.Fatal("expected a draft, got nil")
		}
		if draft.Subject != "Re: Contract Renewal" {
			t.Errorf("subject = %q, want %q", draft.Subject, "Re: Contract Renewal")
		}
		if draft.Body != "Hi Mike,\n\nI'll review the terms today." {
			t.Errorf("body not trimmed: %q", draft.Body)
		}
	})

	t.Run("no reply needed", func(t *testing.T) {
		gateway := NewGateway(fixedResponse("NO_REPLY_NEEDED"))
		draft, err := gateway.GenerateDraftReply(email, "tmpl")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft != nil {
			t.Errorf("expected nil draft, got %+v", draft)
		}
	})

	t.Run("completion failure surfaces", func(t *testing.T) {
		gateway := NewGateway(failingCompleter(errors.New("upstream down")))
		draft, err := gateway.GenerateDraftReply(email, "tmpl")
		if err == nil {
			t.Fatal("expected an error")
		}
		if draft != nil {
			t.Errorf("expected nil draft with error, got %+v", draft)
		}
	})
}

func TestGatewayChat(t *testing.T) {
	email := EmailContext{Sender: "Sarah Johnson", Subject: "Q4 Review", Body: "Meeting tomorrow at 2 PM."}

	t.Run("answer returned trimmed", func(t *testing.T) {
		gateway := NewGateway(fixedResponse("  The meeting is tomorrow at 2 PM.  "))
		answer, err := gateway.Chat(email, "When is the meeting?", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if answer != "The meeting is tomorrow at 2 PM." {
			t.Errorf("answer = %q", answer)
		}
	})

	t.Run("empty response falls back", func(t *testing.T) {
		gateway := NewGateway(fixedResponse("   \n"))
		answer, err := gateway.Chat(email, "Summarize this", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if answer != chatFallback {
			t.Errorf("answer = %q, want fallback", answer)
		}
	})

	t.Run("completion failure surfaces", func(t *testing.T) {
		gateway := NewGateway(failingCompleter(errors.New("upstream down")))
		if _, err := gateway.Chat(email, "Summarize this", nil); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("history window keeps last six turns", func(t *testing.T) {
		stub := fixedResponse("ok")
		gateway := NewGateway(stub)

		history := make([]Turn, 0, 10)
		for i := 0; i < 10; i++ {
			role := models.RoleUser
			if i%2 == 1 {
				role = models.RoleAssistant
			}
			history = append(history, Turn{Role: role, Content: fmt.Sprintf("turn-%d", i)})
		}

		if _, err := gateway.Chat(email, "question", history); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		prompt := stub.prompts[0]
		for i := 0; i < 4; i++ {
			if strings.Contains(prompt, fmt.Sprintf("turn-%d", i)) {
				t.Errorf("prompt contains dropped turn-%d", i)
			}
		}
		for i := 4; i < 10; i++ {
			if !strings.Contains(prompt, fmt.Sprintf("turn-%d", i)) {
				t.Errorf("prompt missing kept turn-%d", i)
			}
		}
	})

	t.Run("no history section without history", func(t *testing.T) {
		stub := fixedResponse("ok")
		gateway := NewGateway(stub)
		if _, err := gateway.Chat(email, "question", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(stub.prompts[0], "Previous conversation:") {
			t.Error("prompt contains a history section for an empty history")
		}
	})
}
