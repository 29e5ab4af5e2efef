package db

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/monocle-dev/rentals/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestGormLogger(t *testing.T) (*GormLogger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	l, err := logging.New("debug", "text", &buf)
	require.NoError(t, err)

	return NewGormLogger(l, 100*time.Millisecond), &buf
}

func sqlFunc() (string, int64) {
	return `SELECT * FROM "products" WHERE id = 1`, 0
}

func TestGormLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("record not found is silent", func(t *testing.T) {
		l, buf := newTestGormLogger(t)
		l.Trace(ctx, time.Now(), sqlFunc, gorm.ErrRecordNotFound)
		assert.Zero(t, buf.Len())
	})

	t.Run("failure is logged", func(t *testing.T) {
		l, buf := newTestGormLogger(t)
		l.Trace(ctx, time.Now(), sqlFunc, errors.New("connection reset"))
		assert.Contains(t, buf.String(), "SQL failed")
		assert.Contains(t, buf.String(), "connection reset")
	})

	t.Run("slow query is logged", func(t *testing.T) {
		l, buf := newTestGormLogger(t)
		l.Trace(ctx, time.Now().Add(-time.Second), sqlFunc, nil)
		assert.Contains(t, buf.String(), "Slow SQL")
	})

	t.Run("fast query below info is silent", func(t *testing.T) {
		l, buf := newTestGormLogger(t)
		l.Trace(ctx, time.Now(), sqlFunc, nil)
		assert.Zero(t, buf.Len())
	})

	t.Run("silent mode", func(t *testing.T) {
		l, buf := newTestGormLogger(t)
		l.LogMode(gormlogger.Silent).Trace(ctx, time.Now(), sqlFunc, errors.New("boom"))
		assert.Zero(t, buf.Len())
	})
}

func TestGormLogger_UsesRequestLogger(t *testing.T) {
	l, fallback := newTestGormLogger(t)

	var buf bytes.Buffer
	requestLogger, err := logging.New("debug", "text", &buf)
	require.NoError(t, err)

	ctx := logging.WithLogger(context.Background(), requestLogger.With("request_id", "r-1"))
	l.Warn(ctx, "pool %s", "exhausted")

	assert.Zero(t, fallback.Len())
	assert.Contains(t, buf.String(), "pool exhausted")
	assert.Contains(t, buf.String(), "request_id=r-1")
}
