package http

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"pagemind/internal/repository"
)

// ListDocuments returns every knowledge document with full content.
func (h *Handler) ListDocuments(c *gin.Context) {
	c.JSON(http.StatusOK, h.knowledge.ListDocuments())
}

// PutDocument creates or overwrites a document. The stored name is the
// sanitized form, returned so the dashboard can show what was kept.
func (h *Handler) PutDocument(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if repository.SanitizeName(req.Name) == "" || !ValidateLength(req.Name, 1, MaxNameLength) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document name"})
		return
	}
	req.Content = SanitizeString(req.Content)
	if !ValidateLength(req.Content, 0, MaxDocumentLength) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content too long"})
		return
	}

	doc, err := h.knowledge.Put(req.Name, req.Content)
	if err != nil {
		h.log.WithError(err).Error("Failed to save document")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save document"})
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// DeleteDocument removes a document by name.
func (h *Handler) DeleteDocument(c *gin.Context) {
	name := c.Param("name")
	if repository.SanitizeName(name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document name"})
		return
	}

	if err := h.knowledge.Delete(name); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		h.log.WithError(err).Error("Failed to delete document")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
