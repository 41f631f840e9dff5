package parser

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	var logger Logger = NopLogger{}

	// All methods are no-ops and must not panic
	logger.Debug("debug", "k", "v")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	assert.Equal(t, NopLogger{}, logger.With("k", "v"))
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlogAdapter(slog.New(handler))

	logger.Debug("detected format", "format", "yaml")
	assert.Contains(t, buf.String(), "detected format")
	assert.Contains(t, buf.String(), "format=yaml")

	buf.Reset()
	logger.Info("parsed specification", "path", "api.yaml")
	assert.Contains(t, buf.String(), "parsed specification")

	buf.Reset()
	logger.Warn("slow load")
	assert.Contains(t, buf.String(), "slow load")

	buf.Reset()
	logger.Error("fetch failed")
	assert.Contains(t, buf.String(), "fetch failed")
}

func TestSlogAdapterWith(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlogAdapter(slog.New(handler)).With("source", "stdin")

	logger.Info("parsed specification")
	assert.Contains(t, buf.String(), "source=stdin")
}

func TestNewSlogAdapterNil(t *testing.T) {
	logger := NewSlogAdapter(nil)
	require.NotNil(t, logger)
	// Uses slog.Default(); just ensure calls do not panic
	logger.Debug("noop")
}

func TestParserUsesNopLoggerByDefault(t *testing.T) {
	p := New()
	assert.Equal(t, NopLogger{}, p.log())
}
