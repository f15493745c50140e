package functions

import (
	"fmt"
	"strings"

	"github.com/mailmind/core/internal/database/models"
)

// Completer is the boundary to the external completion service
type Completer interface {
	Complete(prompt string) (string, error)
}

// EmailContext is the slice of an email handed to the AI workflows
type EmailContext struct {
	Sender      string
	SenderEmail string
	Subject     string
	Body        string
}

// Turn is one prior exchange in a chat conversation
type Turn struct {
	Role    string
	Content string
}

// DraftReply is a generated reply draft
type DraftReply struct {
	Subject string
	Body    string
}

// maxHistoryTurns bounds how much prior conversation is replayed into the
// chat prompt.
const maxHistoryTurns = 6

// chatFallback is returned when the completion service answers with
// nothing usable.
const chatFallback = "I'm sorry, I couldn't process your request. Please try again."

// Gateway wraps the completion service for the email workflows. The error
// contract differs deliberately per operation: Categorize and
// ExtractActionItems recover to safe defaults and never fail, while
// GenerateDraftReply and Chat surface failures because silently dropping a
// user-requested result would hide an outage.
type Gateway struct {
	completer Completer
}

// NewGateway creates a new Gateway instance
func NewGateway(completer Completer) *Gateway {
	return &Gateway{completer: completer}
}

// Categorize assigns one of the closed categories to an email body. Any
// call or parse failure yields Uncategorized.
func (g *Gateway) Categorize(body, promptTemplate string) models.EmailCategory {
	prompt := fmt.Sprintf("%s\n\nEmail Content:\n%s", promptTemplate, body)

	response, err := g.completer.Complete(prompt)
	if err != nil {
		return models.CategoryUncategorized
	}
	return MatchCategory(response)
}

// ExtractActionItems pulls tasks out of an email body. Any call or parse
// failure yields an empty list.
func (g *Gateway) ExtractActionItems(body, promptTemplate string) []models.ActionItem {
	prompt := fmt.Sprintf("%s\n\nEmail Content:\n%s", promptTemplate, body)

	response, err := g.completer.Complete(prompt)
	if err != nil {
		return nil
	}
	return ParseActionItems(response)
}

// GenerateDraftReply produces a reply draft for an email. A nil draft with
// a nil error means no reply is needed for this email; a non-nil error
// means the completion call itself failed.
func (g *Gateway) GenerateDraftReply(email EmailContext, promptTemplate string) (*DraftReply, error) {
	prompt := fmt.Sprintf("%s\n\nOriginal Email:\nFrom: %s <%s>\nSubject: %s\n\n%s",
		promptTemplate, email.Sender, email.SenderEmail, email.Subject, email.Body)

	response, err := g.completer.Complete(prompt)
	if err != nil {
		return nil, fmt.Errorf("generate draft reply: %w", err)
	}

	text := strings.TrimSpace(response)
	if ContainsNoReply(text) {
		return nil, nil
	}

	return &DraftReply{
		Subject: "Re: " + email.Subject,
		Body:    text,
	}, nil
}

// Chat answers a user question about an email, replaying up to the last
// six turns of conversation for context.
func (g *Gateway) Chat(email EmailContext, userMessage string, history []Turn) (string, error) {
	var context strings.Builder
	if len(history) > 0 {
		if len(history) > maxHistoryTurns {
			history = history[len(history)-maxHistoryTurns:]
		}
		context.WriteString("\n\nPrevious conversation:\n")
		for i, turn := range history {
			if i > 0 {
				context.WriteString("\n")
			}
			label := "User"
			if turn.Role == models.RoleAssistant {
				label = "Assistant"
			}
			context.WriteString(label)
			context.WriteString(": ")
			context.WriteString(turn.Content)
		}
	}

	prompt := fmt.Sprintf(`You are an intelligent email assistant. Help the user understand and respond to their emails.

Email Context:
From: %s
Subject: %s

Email Body:
%s%s

User Question: %s

Provide a helpful, concise response. If asked to summarize, be brief and highlight key points. If asked about tasks or action items, list them clearly. If asked to draft a reply, write it professionally.`,
		email.Sender, email.Subject, email.Body, context.String(), userMessage)

	response, err := g.completer.Complete(prompt)
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}

	text := strings.TrimSpace(response)
	if text == "" {
		return chatFallback, nil
	}
	return text, nil
}
