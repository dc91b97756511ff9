package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pagemind/internal/entities"
)

type settingsResponse struct {
	DefaultAIModel string `json:"defaultAiModel"`
	OpenRouterKey  string `json:"openrouterKey"`
}

// GetSettings returns the global configuration with a masked key.
func (h *Handler) GetSettings(c *gin.Context) {
	cfg := h.settings.LoadGlobal()
	c.JSON(http.StatusOK, settingsResponse{
		DefaultAIModel: cfg.DefaultAIModel,
		OpenRouterKey:  entities.MaskSecret(cfg.OpenRouterKey),
	})
}

// UpdateSettings applies a partial update to the global configuration.
// A masked key value leaves the stored key untouched.
func (h *Handler) UpdateSettings(c *gin.Context) {
	var req struct {
		DefaultAIModel *string         `json:"defaultAiModel"`
		OpenRouterKey  entities.Secret `json:"openrouterKey"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	cfg := h.settings.LoadGlobal()
	if req.DefaultAIModel != nil {
		cfg.DefaultAIModel = *req.DefaultAIModel
	}
	cfg.OpenRouterKey = req.OpenRouterKey.Resolve(cfg.OpenRouterKey)

	if err := h.settings.SaveGlobal(cfg); err != nil {
		h.log.WithError(err).Error("Failed to save settings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}
	c.JSON(http.StatusOK, settingsResponse{
		DefaultAIModel: cfg.DefaultAIModel,
		OpenRouterKey:  entities.MaskSecret(cfg.OpenRouterKey),
	})
}

// ListLogs returns the event buffer, newest first.
func (h *Handler) ListLogs(c *gin.Context) {
	c.JSON(http.StatusOK, h.events.Entries())
}

// ClearLogs empties the event buffer.
func (h *Handler) ClearLogs(c *gin.Context) {
	h.events.Clear()
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
