package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mailmind/core/internal/database/models"
	"github.com/mailmind/core/internal/functions"
	"github.com/mailmind/core/internal/services"
)

// EmailHandler handles email related requests
type EmailHandler struct {
	emails    *services.EmailService
	prompts   *services.PromptService
	drafts    *services.DraftService
	chats     *services.ChatService
	logs      *services.LogService
	gateway   *functions.Gateway
	processor *functions.Processor
}

// NewEmailHandler creates a new EmailHandler instance
func NewEmailHandler(registry *services.Registry, gateway *functions.Gateway, processor *functions.Processor) *EmailHandler {
	return &EmailHandler{
		emails:    registry.Emails,
		prompts:   registry.Prompts,
		drafts:    registry.Drafts,
		chats:     registry.Chats,
		logs:      registry.Logs,
		gateway:   gateway,
		processor: processor,
	}
}

// EmailResponse represents the response for an email
type EmailResponse struct {
	ID          uint                `json:"id"`
	Sender      string              `json:"sender"`
	SenderEmail string              `json:"senderEmail"`
	Subject     string              `json:"subject"`
	Body        string              `json:"body"`
	Date        time.Time           `json:"date"`
	Read        bool                `json:"read"`
	Category    *string             `json:"category"`
	ActionItems []models.ActionItem `json:"actionItems"`
}

// toEmailResponse converts an Email model to EmailResponse
func toEmailResponse(email *models.Email) EmailResponse {
	return EmailResponse{
		ID:          email.ID,
		Sender:      email.Sender,
		SenderEmail: email.SenderEmail,
		Subject:     email.Subject,
		Body:        email.Body,
		Date:        email.Date,
		Read:        email.Read,
		Category:    email.Category,
		ActionItems: email.ActionItemList(),
	}
}

func toEmailResponses(emails []models.Email) []EmailResponse {
	responses := make([]EmailResponse, 0, len(emails))
	for i := range emails {
		responses = append(responses, toEmailResponse(&emails[i]))
	}
	return responses
}

// parseIDParam reads a numeric id path parameter
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// ListEmails returns all emails, newest first
// GET /api/emails
func (h *EmailHandler) ListEmails(c *gin.Context) {
	emails, err := h.emails.ListEmails()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch emails"})
		return
	}
	c.JSON(http.StatusOK, toEmailResponses(emails))
}

// GetEmail returns one email
// GET /api/emails/:id
func (h *EmailHandler) GetEmail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	email, err := h.emails.GetEmail(id)
	if err != nil {
		if errors.Is(err, services.ErrEmailNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Email not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch email"})
		return
	}
	c.JSON(http.StatusOK, toEmailResponse(email))
}

// UpdateEmailRequest carries a partial email update
type UpdateEmailRequest struct {
	Sender      *string              `json:"sender"`
	SenderEmail *string              `json:"senderEmail"`
	Subject     *string              `json:"subject"`
	Body        *string              `json:"body"`
	Date        *time.Time           `json:"date"`
	Read        *bool                `json:"read"`
	Category    *string              `json:"category"`
	ActionItems *[]models.ActionItem `json:"actionItems"`
}

// UpdateEmail merges partial fields into an email
// PATCH /api/emails/:id
func (h *EmailHandler) UpdateEmail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	email, err := h.emails.UpdateEmail(id, services.EmailPatch{
		Sender:      req.Sender,
		SenderEmail: req.SenderEmail,
		Subject:     req.Subject,
		Body:        req.Body,
		Date:        req.Date,
		Read:        req.Read,
		Category:    req.Category,
		ActionItems: req.ActionItems,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Email not found"})
		case errors.Is(err, services.ErrInvalidCategory):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update email"})
		}
		return
	}
	c.JSON(http.StatusOK, toEmailResponse(email))
}

// ProcessInbox runs the batch categorization workflow over all
// uncategorized emails
// POST /api/emails/process
func (h *EmailHandler) ProcessInbox(c *gin.Context) {
	result, err := h.processor.ProcessInbox()
	if err != nil {
		h.logs.LogOperationError(models.LogModuleProcess, "process_inbox", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process emails"})
		return
	}

	h.logs.LogProcessRun(result.Processed)
	c.JSON(http.StatusOK, gin.H{
		"processed": result.Processed,
		"emails":    toEmailResponses(result.Emails),
	})
}

// ExtractActions runs action item extraction for one email, persists the
// result and leaves a narration message in the email's chat transcript
// POST /api/emails/:id/extract-actions
func (h *EmailHandler) ExtractActions(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	email, err := h.emails.GetEmail(id)
	if err != nil {
		if errors.Is(err, services.ErrEmailNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Email not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch email"})
		return
	}

	prompt, err := h.prompts.GetPromptByType(models.PromptTypeActionExtraction)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Action extraction prompt not configured"})
		return
	}

	items := h.gateway.ExtractActionItems(email.Body, prompt.Content)
	updated, err := h.emails.SetActionItems(id, items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to extract action items"})
		return
	}

	if _, err := h.chats.Append(id, models.RoleAssistant, extractionNarration(items)); err != nil {
		h.logs.LogOperationError(models.LogModuleChat, "extract_narration", err)
	}

	if items == nil {
		items = []models.ActionItem{}
	}
	c.JSON(http.StatusOK, gin.H{
		"email":       toEmailResponse(updated),
		"actionItems": items,
	})
}

// extractionNarration builds the human-readable summary left in the chat
// transcript after an extraction run
func extractionNarration(items []models.ActionItem) string {
	if len(items) == 0 {
		return "I didn't find any specific action items in this email."
	}

	lines := make([]string, 0, len(items))
	for i, item := range items {
		line := fmt.Sprintf("%d. %s", i+1, item.Task)
		if item.Deadline != nil {
			line += fmt.Sprintf(" (Due: %s)", *item.Deadline)
		}
		lines = append(lines, line)
	}
	return fmt.Sprintf("I found %d action item(s):\n\n%s", len(items), strings.Join(lines, "\n"))
}

// GenerateDraft runs draft generation for one email. A no-reply outcome
// returns a nil draft; a completion failure is surfaced as an error.
// POST /api/emails/:id/generate-draft
func (h *EmailHandler) GenerateDraft(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	email, err := h.emails.GetEmail(id)
	if err != nil {
		if errors.Is(err, services.ErrEmailNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Email not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch email"})
		return
	}

	prompt, err := h.prompts.GetPromptByType(models.PromptTypeAutoReply)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Auto-reply prompt not configured"})
		return
	}

	reply, err := h.gateway.GenerateDraftReply(functions.EmailContext{
		Sender:      email.Sender,
		SenderEmail: email.SenderEmail,
		Subject:     email.Subject,
		Body:        email.Body,
	}, prompt.Content)
	if err != nil {
		h.logs.LogOperationError(models.LogModuleDraft, "generate_draft", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate draft reply"})
		return
	}

	if reply == nil {
		if _, err := h.chats.Append(id, models.RoleAssistant,
			"Based on my analysis, this email doesn't require a reply (e.g., newsletter or promotional content)."); err != nil {
			h.logs.LogOperationError(models.LogModuleChat, "draft_narration", err)
		}
		c.JSON(http.StatusOK, gin.H{
			"draft":   nil,
			"message": "No reply needed for this type of email",
		})
		return
	}

	draft := &models.Draft{
		EmailID: &id,
		To:      email.SenderEmail,
		ToName:  email.Sender,
		Subject: reply.Subject,
		Body:    reply.Body,
	}
	if err := h.drafts.CreateDraft(draft); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save draft"})
		return
	}

	h.logs.LogDraftCreated(id, draft.ID)

	preview := reply.Body
	if len(preview) > 200 {
		preview = preview[:200] + "..."
	}
	if _, err := h.chats.Append(id, models.RoleAssistant,
		fmt.Sprintf("I've created a draft reply for you. You can find it in the Drafts tab.\n\nSubject: %s\n\nPreview:\n%s",
			reply.Subject, preview)); err != nil {
		h.logs.LogOperationError(models.LogModuleChat, "draft_narration", err)
	}

	c.JSON(http.StatusOK, gin.H{"draft": draft})
}
