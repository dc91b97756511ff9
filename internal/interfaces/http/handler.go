package http

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pagemind/internal/infrastructure"
	"pagemind/internal/repository"
	"pagemind/internal/usecases"
)

type Handler struct {
	pipeline  *usecases.PipelineService
	pages     *repository.PageRepository
	settings  *repository.SettingsRepository
	knowledge *repository.KnowledgeRepository
	events    *infrastructure.EventLog
	log       *logrus.Logger
	startedAt time.Time
}

func NewHandler(pipeline *usecases.PipelineService, pages *repository.PageRepository, settings *repository.SettingsRepository, knowledge *repository.KnowledgeRepository, events *infrastructure.EventLog, log *logrus.Logger) *Handler {
	return &Handler{
		pipeline:  pipeline,
		pages:     pages,
		settings:  settings,
		knowledge: knowledge,
		events:    events,
		log:       log,
		startedAt: time.Now(),
	}
}

func SetupRoutes(r *gin.Engine, h *Handler, auth *usecases.AuthUsecase, middleware *Middleware, dashboardDir string) {
	// Apply Security Middleware
	r.Use(SecurityHeaders())
	r.Use(RequestSizeLimiter(10 << 20)) // 10MB max request size
	r.Use(middleware.CORSMiddleware())

	// Platform Webhook (public)
	r.GET("/webhook", h.VerifyWebhook)
	r.POST("/webhook", h.ReceiveWebhook)

	r.GET("/health", h.Health)

	// Static dashboard when the directory exists
	if dashboardDir != "" {
		if _, err := os.Stat(dashboardDir); err == nil {
			r.Static("/dashboard", dashboardDir)
		}
	}

	// Public Auth Routes
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/login", func(c *gin.Context) {
			var loginReq struct {
				Username string `json:"username"`
				Password string `json:"password"`
			}
			if err := c.ShouldBindJSON(&loginReq); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
				return
			}
			token, err := auth.Login(loginReq.Username, loginReq.Password)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"token": token})
		})
	}

	// Protected Management Routes
	api := r.Group("/api")
	api.Use(middleware.AuthRequired())
	api.Use(middleware.RateLimitPerUser(5, 10))
	{
		api.GET("/stats", h.GetStats)

		// Page Routes
		api.GET("/pages", h.ListPages)
		api.POST("/pages", h.CreatePage)
		api.PUT("/pages/:id", h.UpdatePage)
		api.DELETE("/pages/:id", h.DeletePage)

		// Global Settings Routes
		api.GET("/settings", h.GetSettings)
		api.PUT("/settings", h.UpdateSettings)

		// Knowledge Routes
		api.GET("/knowledge", h.ListDocuments)
		api.POST("/knowledge", h.PutDocument)
		api.DELETE("/knowledge/:name", h.DeleteDocument)

		// Event Log Routes
		api.GET("/logs", h.ListLogs)
		api.DELETE("/logs", h.ClearLogs)

		// Playground
		api.POST("/test-message", h.TestMessage)
	}
}

// Health reports liveness and process uptime.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(h.startedAt).Round(time.Second).String(),
	})
}

// GetStats returns overview counts for the dashboard widgets.
func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page_count":     len(h.pages.LoadPages()),
		"document_count": len(h.knowledge.ListDocuments()),
		"log_count":      h.events.Len(),
		"uptime":         time.Since(h.startedAt).Round(time.Second).String(),
	})
}
