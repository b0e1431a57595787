package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BotStatus reports whether the bot credential needed for logins is present.
type BotStatus interface {
	Configured() bool
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	bot BotStatus
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(bot BotStatus) *HealthHandler {
	return &HealthHandler{bot: bot}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if !h.bot.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "bot token not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
