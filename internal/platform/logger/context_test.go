package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerContextRoundTrip(t *testing.T) {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := WithLogger(context.Background(), base)
	assert.Same(t, base, FromContext(ctx))
	assert.Same(t, base, FromContextOrDefault(ctx, nil))
}

func TestFromContextOrDefault_Fallbacks(t *testing.T) {
	def := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Context without a logger falls back to the provided default
	assert.Same(t, def, FromContextOrDefault(context.Background(), def))

	// Nil default falls back to slog.Default
	assert.Same(t, slog.Default(), FromContextOrDefault(context.Background(), nil))
}

func TestFromContext_AbsentReturnsNil(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))
}
