package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/rentals/internal/logging"
	"github.com/monocle-dev/rentals/internal/types"
)

// RequestSession is the per-request state handed from the middleware to the
// handlers and resolvers. There is no authenticated user: the API has no
// sessions or tokens.
type RequestSession struct {
	RequestID string
	Logger    logging.Logger
	StartedAt time.Time
}

type sessionKey struct{}

func WithSession(ctx context.Context, session *RequestSession) context.Context {
	ctx = context.WithValue(ctx, sessionKey{}, session)
	return logging.WithLogger(ctx, session.Logger)
}

func SessionFromContext(ctx context.Context) (*RequestSession, bool) {
	session, ok := ctx.Value(sessionKey{}).(*RequestSession)
	return session, ok && session != nil
}

func GetCurrentSession(ctx *gin.Context) (*RequestSession, error) {
	value, exists := ctx.Get(types.ContextSessionKey)

	if !exists {
		return nil, fmt.Errorf("Request session not initialised")
	}

	session, ok := value.(*RequestSession)

	if !ok {
		return nil, fmt.Errorf("Invalid session type in context")
	}

	return session, nil
}

func GetRequestID(ctx *gin.Context) string {
	session, err := GetCurrentSession(ctx)

	if err != nil {
		return ""
	}

	return session.RequestID
}
