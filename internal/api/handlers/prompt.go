package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mailmind/core/internal/services"
)

// PromptHandler handles prompt template requests
type PromptHandler struct {
	prompts *services.PromptService
	logs    *services.LogService
}

// NewPromptHandler creates a new PromptHandler instance
func NewPromptHandler(registry *services.Registry) *PromptHandler {
	return &PromptHandler{
		prompts: registry.Prompts,
		logs:    registry.Logs,
	}
}

// ListPrompts returns all prompt templates
// GET /api/prompts
func (h *PromptHandler) ListPrompts(c *gin.Context) {
	prompts, err := h.prompts.ListPrompts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prompts"})
		return
	}
	c.JSON(http.StatusOK, prompts)
}

// UpdatePromptRequest carries a prompt content replacement
type UpdatePromptRequest struct {
	Content *string `json:"content"`
}

// UpdatePrompt replaces a template's content
// PATCH /api/prompts/:id
func (h *PromptHandler) UpdatePrompt(c *gin.Context) {
	var req UpdatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	prompt, err := h.prompts.UpdateContent(c.Param("id"), *req.Content)
	if err != nil {
		if errors.Is(err, services.ErrPromptNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Prompt not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update prompt"})
		return
	}

	h.logs.LogPromptUpdated(prompt.ID, "updated")
	c.JSON(http.StatusOK, prompt)
}

// ResetPrompt restores a template to its seeded default content
// POST /api/prompts/:id/reset
func (h *PromptHandler) ResetPrompt(c *gin.Context) {
	prompt, err := h.prompts.ResetPrompt(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrPromptNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Prompt not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset prompt"})
		return
	}

	h.logs.LogPromptUpdated(prompt.ID, "reset")
	c.JSON(http.StatusOK, prompt)
}
