package graph

import (
	"context"

	"github.com/monocle-dev/rentals/internal/logging"
	"github.com/monocle-dev/rentals/internal/services"
	"github.com/monocle-dev/rentals/internal/utils"
)

// resolverError is what clients see: the safe message plus extensions.code
// and, inside a request, extensions.requestId.
type resolverError struct {
	message   string
	code      services.Kind
	requestID string
}

func (e *resolverError) Error() string {
	return e.message
}

func (e *resolverError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": string(e.code)}
	if e.requestID != "" {
		ext["requestId"] = e.requestID
	}
	return ext
}

func (r *Resolver) fail(ctx context.Context, field string, err error) error {
	kind, message := services.Describe(err)

	if kind == services.KindInternal {
		logging.FromContext(ctx, r.logger).Error(ctx, "Unexpected resolver error", "field", field, "error", err)
	}

	out := &resolverError{message: message, code: kind}
	if session, ok := utils.SessionFromContext(ctx); ok {
		out.requestID = session.RequestID
	}

	return out
}
