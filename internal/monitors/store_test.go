package monitors

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestCheckStore(t *testing.T) {
	res := CheckStore(context.Background(), pingFunc(func(context.Context) error { return nil }), time.Second)
	assert.True(t, res.Up)
	assert.NoError(t, res.Err)

	down := errors.New("connection refused")
	res = CheckStore(context.Background(), pingFunc(func(context.Context) error { return down }), time.Second)
	assert.False(t, res.Up)
	assert.ErrorIs(t, res.Err, down)
}

func TestCheckStore_Timeout(t *testing.T) {
	slow := pingFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	res := CheckStore(context.Background(), slow, 20*time.Millisecond)
	require.False(t, res.Up)
	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
}
