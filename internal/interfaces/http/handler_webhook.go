package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"pagemind/internal/entities"
)

// VerifyWebhook answers the platform's subscription handshake.
func (h *Handler) VerifyWebhook(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	echo, ok := h.pipeline.VerifyWebhook(mode, token, challenge)
	if !ok {
		c.Status(http.StatusForbidden)
		return
	}
	c.String(http.StatusOK, echo)
}

// ReceiveWebhook acknowledges the delivery immediately and processes it
// in the background. The platform retries deliveries that don't get a
// fast 200, so the response never depends on processing outcome.
func (h *Handler) ReceiveWebhook(c *gin.Context) {
	var event entities.WebhookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		h.log.WithError(err).Warn("Ignoring unparseable webhook body")
		c.String(http.StatusOK, "OK")
		return
	}

	c.String(http.StatusOK, "OK")
	go h.pipeline.ProcessEvent(context.Background(), event)
}

// TestMessage runs the knowledge + completion path for the operator
// without dispatching anything. Errors come back as values so the
// dashboard can show them.
func (h *Handler) TestMessage(c *gin.Context) {
	var req struct {
		PageID  string `json:"pageId"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	req.Message = SanitizeString(req.Message)
	if !ValidateLength(req.Message, 1, MaxMessageLength) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message required"})
		return
	}

	response, err := h.pipeline.TestMessage(c.Request.Context(), req.PageID, req.Message)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": response})
}
