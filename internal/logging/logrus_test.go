package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsBadSettings(t *testing.T) {
	_, err := New("loud", "json", &bytes.Buffer{})
	require.Error(t, err)

	_, err = New("info", "xml", &bytes.Buffer{})
	require.Error(t, err)
}

func TestLogrusLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("debug", "json", &buf)
	require.NoError(t, err)

	child := l.With("request_id", "abc")
	child.Info(context.Background(), "product created", "product_id", 7, "err", errors.New("boom"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "product created", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "abc", entry["request_id"])
	assert.Equal(t, float64(7), entry["product_id"])
	assert.Equal(t, "boom", entry["err"])
}

func TestLogrusLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("warn", "text", &buf)
	require.NoError(t, err)

	l.Info(context.Background(), "hidden")
	assert.Zero(t, buf.Len())

	l.Warn(context.Background(), "shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestFields_Malformed(t *testing.T) {
	f := fields([]any{"ok", 1, 42, "dangling"})

	assert.Equal(t, 1, f["ok"])
	assert.Equal(t, "dangling", f[badKey])
}

func TestFromContext(t *testing.T) {
	fallback := Nop{}
	assert.Equal(t, Logger(fallback), FromContext(context.Background(), fallback))

	var buf bytes.Buffer
	l, err := New("info", "text", &buf)
	require.NoError(t, err)

	ctx := WithLogger(context.Background(), l)
	assert.Same(t, l, FromContext(ctx, fallback))
}
