package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/rentals/internal/metrics"
)

// Metrics records HTTP metrics for each request. The path label is the route
// pattern so ids in the URL do not explode the label space.
func Metrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		metrics.RequestStarted()

		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.RequestFinished(
			ctx.Request.Method,
			path,
			strconv.Itoa(ctx.Writer.Status()),
			time.Since(start),
		)
	}
}
