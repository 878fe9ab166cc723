package api

import (
	"io"
	"net/http"

	"fulfillment-core/internal/usecase"

	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 1 << 20

type WebhookHandler struct {
	processor *usecase.WebhookProcessor
}

func NewWebhookHandler(processor *usecase.WebhookProcessor) *WebhookHandler {
	return &WebhookHandler{processor: processor}
}

// @Summary Payment gateway webhook
// @Description Receives payment event notifications from the gateway
// @Tags webhook
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /webhook/payment [post]
//
// The gateway retries aggressively on anything but a 2xx and disables
// endpoints that keep failing, so this endpoint acknowledges every
// delivery. All validation failures are recorded internally instead.
func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	h.processor.Process(c.Request.Context(), body, c.GetHeader("X-Signature"))

	c.JSON(http.StatusOK, gin.H{"received": true})
}
