package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/monocle-dev/rentals/internal/logging"
	"github.com/monocle-dev/rentals/internal/types"
	"github.com/monocle-dev/rentals/internal/utils"
)

const RequestIDHeader = "X-Request-ID"

// RequestSession attaches a request id and a request-scoped logger to both
// the gin context and the request context, then logs the completed request.
func RequestSession(logger logging.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)

		if requestID == "" || len(requestID) > 64 {
			requestID = uuid.NewString()
		}

		ctx.Header(RequestIDHeader, requestID)

		session := &utils.RequestSession{
			RequestID: requestID,
			Logger: logger.With(
				"request_id", requestID,
				"method", ctx.Request.Method,
				"path", ctx.Request.URL.Path,
			),
			StartedAt: time.Now(),
		}

		ctx.Set(types.ContextSessionKey, session)
		ctx.Request = ctx.Request.WithContext(utils.WithSession(ctx.Request.Context(), session))

		ctx.Next()

		status := ctx.Writer.Status()
		args := []any{
			"status", status,
			"duration_ms", time.Since(session.StartedAt).Milliseconds(),
			"client_ip", ctx.ClientIP(),
		}

		switch {
		case status >= http.StatusInternalServerError:
			session.Logger.Error(ctx.Request.Context(), "Request failed", args...)
		case status >= http.StatusBadRequest:
			session.Logger.Warn(ctx.Request.Context(), "Request rejected", args...)
		default:
			session.Logger.Info(ctx.Request.Context(), "Request completed", args...)
		}
	}
}
