package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/rentals/internal/logging"
	"github.com/monocle-dev/rentals/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(params ...gin.Param) *gin.Context {
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx.Params = params
	return ctx
}

func TestGetProductID(t *testing.T) {
	id, err := GetProductID(newContext(gin.Param{Key: "id", Value: "42"}))
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = GetProductID(newContext(gin.Param{Key: "id", Value: "4x"}))
	assert.EqualError(t, err, "Invalid Product ID")

	_, err = GetProductID(newContext())
	assert.EqualError(t, err, "Product ID not found")
}

func TestGetOwnerEmail(t *testing.T) {
	email, err := GetOwnerEmail(newContext(gin.Param{Key: "email", Value: " a@x.com "}))
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)

	_, err = GetOwnerEmail(newContext())
	assert.Error(t, err)
}

func TestSession(t *testing.T) {
	ctx := newContext()

	_, err := GetCurrentSession(ctx)
	assert.Error(t, err)
	assert.Empty(t, GetRequestID(ctx))

	ctx.Set(types.ContextSessionKey, "not a session")
	_, err = GetCurrentSession(ctx)
	assert.EqualError(t, err, "Invalid session type in context")

	session := &RequestSession{RequestID: "r-9", Logger: logging.Nop{}}
	ctx.Set(types.ContextSessionKey, session)
	assert.Equal(t, "r-9", GetRequestID(ctx))

	reqCtx := WithSession(context.Background(), session)
	got, ok := SessionFromContext(reqCtx)
	require.True(t, ok)
	assert.Same(t, session, got)
	assert.Equal(t, logging.Nop{}, logging.FromContext(reqCtx, nil))

	_, ok = SessionFromContext(context.Background())
	assert.False(t, ok)
}
