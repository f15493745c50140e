package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mailmind/core/internal/database/models"
	"github.com/mailmind/core/internal/functions"
	"github.com/mailmind/core/internal/services"
)

// ChatHandler handles the per-email conversation endpoints
type ChatHandler struct {
	emails  *services.EmailService
	chats   *services.ChatService
	logs    *services.LogService
	gateway *functions.Gateway
}

// NewChatHandler creates a new ChatHandler instance
func NewChatHandler(registry *services.Registry, gateway *functions.Gateway) *ChatHandler {
	return &ChatHandler{
		emails:  registry.Emails,
		chats:   registry.Chats,
		logs:    registry.Logs,
		gateway: gateway,
	}
}

// GetHistory returns the ordered transcript for one email
// GET /api/chat/:emailId
func (h *ChatHandler) GetHistory(c *gin.Context) {
	emailID, ok := parseIDParam(c, "emailId")
	if !ok {
		return
	}

	messages, err := h.chats.History(emailID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chat messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// ClearHistory removes the entire transcript for one email
// DELETE /api/chat/:emailId
func (h *ChatHandler) ClearHistory(c *gin.Context) {
	emailID, ok := parseIDParam(c, "emailId")
	if !ok {
		return
	}

	if err := h.chats.Clear(emailID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear chat messages"})
		return
	}
	c.Status(http.StatusNoContent)
}

// SendMessageRequest carries one user chat message
type SendMessageRequest struct {
	EmailID uint   `json:"emailId"`
	Message string `json:"message"`
}

// SendMessage appends a user message, invokes the conversational AI
// workflow with the bounded history window, and appends and returns the
// assistant's answer
// POST /api/chat
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.EmailID == 0 || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "emailId and message are required"})
		return
	}

	email, err := h.emails.GetEmail(req.EmailID)
	if err != nil {
		if errors.Is(err, services.ErrEmailNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Email not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch email"})
		return
	}

	// The new message goes into the transcript before the turn history is
	// assembled, so the history handed to the gateway excludes it.
	if _, err := h.chats.Append(req.EmailID, models.RoleUser, req.Message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save chat message"})
		return
	}

	messages, err := h.chats.History(req.EmailID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chat messages"})
		return
	}
	history := make([]functions.Turn, 0, len(messages))
	for _, m := range messages[:len(messages)-1] {
		history = append(history, functions.Turn{Role: m.Role, Content: m.Content})
	}

	response, err := h.gateway.Chat(functions.EmailContext{
		Sender:      email.Sender,
		SenderEmail: email.SenderEmail,
		Subject:     email.Subject,
		Body:        email.Body,
	}, req.Message, history)
	if err != nil {
		h.logs.LogOperationError(models.LogModuleChat, "send_message", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process chat message"})
		return
	}

	assistantMessage, err := h.chats.Append(req.EmailID, models.RoleAssistant, response)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save chat message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userMessage":      req.Message,
		"assistantMessage": assistantMessage,
	})
}
