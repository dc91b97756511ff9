package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pagemind/internal/entities"
)

// pageResponse is the operator-facing view of a page: secrets are
// masked and never leave the server in full.
type pageResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	VerifyToken     string    `json:"verifyToken"`
	PageAccessToken string    `json:"pageAccessToken"`
	OpenRouterKey   string    `json:"openrouterKey"`
	AIModel         string    `json:"aiModel"`
	KnowledgeBase   []string  `json:"knowledgeBase"`
	Enabled         bool      `json:"enabled"`
	CreatedAt       time.Time `json:"createdAt"`
}

func maskPage(p entities.PageConfig) pageResponse {
	return pageResponse{
		ID:              p.ID,
		Name:            p.Name,
		VerifyToken:     entities.MaskSecret(p.VerifyToken),
		PageAccessToken: entities.MaskSecret(p.PageAccessToken),
		OpenRouterKey:   entities.MaskSecret(p.OpenRouterKey),
		AIModel:         p.AIModel,
		KnowledgeBase:   p.KnowledgeBase,
		Enabled:         p.Enabled,
		CreatedAt:       p.CreatedAt,
	}
}

type pageCreateRequest struct {
	Name            string          `json:"name"`
	VerifyToken     entities.Secret `json:"verifyToken"`
	PageAccessToken entities.Secret `json:"pageAccessToken"`
	OpenRouterKey   entities.Secret `json:"openrouterKey"`
	AIModel         string          `json:"aiModel"`
	KnowledgeBase   []string        `json:"knowledgeBase"`
	Enabled         *bool           `json:"enabled"`
}

type pageUpdateRequest struct {
	Name            *string         `json:"name"`
	VerifyToken     entities.Secret `json:"verifyToken"`
	PageAccessToken entities.Secret `json:"pageAccessToken"`
	OpenRouterKey   entities.Secret `json:"openrouterKey"`
	AIModel         *string         `json:"aiModel"`
	KnowledgeBase   *[]string       `json:"knowledgeBase"`
	Enabled         *bool           `json:"enabled"`
}

// ListPages returns all pages with masked secrets.
func (h *Handler) ListPages(c *gin.Context) {
	pages := h.pages.LoadPages()
	out := make([]pageResponse, 0, len(pages))
	for _, p := range pages {
		out = append(out, maskPage(p))
	}
	c.JSON(http.StatusOK, out)
}

// CreatePage adds a page. A verify token is generated when the request
// doesn't carry one; masked values resolve to empty rather than being
// stored.
func (h *Handler) CreatePage(c *gin.Context) {
	var req pageCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	req.Name = SanitizeString(req.Name)
	if !ValidateLength(req.Name, 1, MaxLabelLength) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	page := entities.PageConfig{
		ID:              uuid.NewString(),
		Name:            req.Name,
		VerifyToken:     req.VerifyToken.Resolve(""),
		PageAccessToken: req.PageAccessToken.Resolve(""),
		OpenRouterKey:   req.OpenRouterKey.Resolve(""),
		AIModel:         req.AIModel,
		KnowledgeBase:   req.KnowledgeBase,
		Enabled:         enabled,
		CreatedAt:       time.Now(),
	}
	if page.VerifyToken == "" {
		page.VerifyToken = uuid.NewString()
	}

	if err := h.pages.Insert(page); err != nil {
		h.log.WithError(err).Error("Failed to save page")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save page"})
		return
	}
	c.JSON(http.StatusCreated, maskPage(page))
}

// UpdatePage applies a partial update. Absent and masked secret values
// leave the stored secrets untouched.
func (h *Handler) UpdatePage(c *gin.Context) {
	page, ok := h.pages.Find(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	var req pageUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Name != nil {
		name := SanitizeString(*req.Name)
		if !ValidateLength(name, 1, MaxLabelLength) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid name"})
			return
		}
		page.Name = name
	}
	page.VerifyToken = req.VerifyToken.Resolve(page.VerifyToken)
	page.PageAccessToken = req.PageAccessToken.Resolve(page.PageAccessToken)
	page.OpenRouterKey = req.OpenRouterKey.Resolve(page.OpenRouterKey)
	if req.AIModel != nil {
		page.AIModel = *req.AIModel
	}
	if req.KnowledgeBase != nil {
		page.KnowledgeBase = *req.KnowledgeBase
	}
	if req.Enabled != nil {
		page.Enabled = *req.Enabled
	}

	found, err := h.pages.Update(page)
	if err != nil {
		h.log.WithError(err).Error("Failed to save page")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save page"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}
	c.JSON(http.StatusOK, maskPage(page))
}

// DeletePage removes a page record.
func (h *Handler) DeletePage(c *gin.Context) {
	found, err := h.pages.Delete(c.Param("id"))
	if err != nil {
		h.log.WithError(err).Error("Failed to delete page")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete page"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
