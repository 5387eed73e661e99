package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := captureLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "starting")
	log.Info(ctx, "listening", "addr", ":8000")
	log.Warn(ctx, "slow query", "ms", 120)
	log.Error(ctx, "ping failed")

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", "msg=starting",
		"level=INFO", "addr=:8000",
		"level=WARN", "ms=120",
		"level=ERROR", `msg="ping failed"`,
	} {
		assert.Contains(t, out, want)
	}
}

func TestSlogLogger_WithCarriesAttributes(t *testing.T) {
	log, buf := captureLogger(t)

	child := log.With("request_id", "r-1")
	child.Info(context.Background(), "handled", "status", 200)

	out := buf.String()
	assert.Contains(t, out, "request_id=r-1")
	assert.Contains(t, out, "status=200")

	// The parent is untouched.
	buf.Reset()
	log.Info(context.Background(), "plain")
	require.NotContains(t, buf.String(), "request_id")
}
