package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/rentals/internal/monitors"
)

const pingTimeout = 2 * time.Second

func (h *Handler) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Welcome to the rentals backend!"})
}

func (h *Handler) HealthCheck(ctx *gin.Context) {
	result := monitors.CheckStore(ctx.Request.Context(), h.store, pingTimeout)

	if !result.Up {
		h.logger.Warn(ctx.Request.Context(), "Health check failed", "error", result.Err, "latency", result.Latency)

		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "degraded",
			"message":    "Database is unreachable",
			"database":   "down",
			"latency_ms": result.Latency.Milliseconds(),
			"timestamp":  time.Now().Format(time.RFC3339),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"message":    "Rentals backend is running",
		"database":   "up",
		"latency_ms": result.Latency.Milliseconds(),
		"timestamp":  time.Now().Format(time.RFC3339),
	})
}
