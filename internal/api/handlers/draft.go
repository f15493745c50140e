package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mailmind/core/internal/database/models"
	"github.com/mailmind/core/internal/services"
)

// DraftHandler handles draft CRUD requests
type DraftHandler struct {
	drafts *services.DraftService
	logs   *services.LogService
}

// NewDraftHandler creates a new DraftHandler instance
func NewDraftHandler(registry *services.Registry) *DraftHandler {
	return &DraftHandler{
		drafts: registry.Drafts,
		logs:   registry.Logs,
	}
}

// ListDrafts returns all drafts, most recently updated first
// GET /api/drafts
func (h *DraftHandler) ListDrafts(c *gin.Context) {
	drafts, err := h.drafts.ListDrafts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch drafts"})
		return
	}
	c.JSON(http.StatusOK, drafts)
}

// CreateDraftRequest carries a new draft
type CreateDraftRequest struct {
	EmailID *uint  `json:"emailId"`
	To      string `json:"to"`
	ToName  string `json:"toName"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// CreateDraft stores a new draft
// POST /api/drafts
func (h *DraftHandler) CreateDraft(c *gin.Context) {
	var req CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	draft := &models.Draft{
		EmailID: req.EmailID,
		To:      req.To,
		ToName:  req.ToName,
		Subject: req.Subject,
		Body:    req.Body,
	}
	if err := h.drafts.CreateDraft(draft); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create draft"})
		return
	}
	c.JSON(http.StatusCreated, draft)
}

// UpdateDraftRequest carries a partial draft update
type UpdateDraftRequest struct {
	To      *string `json:"to"`
	ToName  *string `json:"toName"`
	Subject *string `json:"subject"`
	Body    *string `json:"body"`
}

// UpdateDraft merges partial fields into a draft
// PATCH /api/drafts/:id
func (h *DraftHandler) UpdateDraft(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	draft, err := h.drafts.UpdateDraft(id, services.DraftPatch{
		To:      req.To,
		ToName:  req.ToName,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		if errors.Is(err, services.ErrDraftNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update draft"})
		return
	}
	c.JSON(http.StatusOK, draft)
}

// DeleteDraft removes a draft
// DELETE /api/drafts/:id
func (h *DraftHandler) DeleteDraft(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.drafts.DeleteDraft(id); err != nil {
		if errors.Is(err, services.ErrDraftNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete draft"})
		return
	}
	c.Status(http.StatusNoContent)
}
