package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestSetup_JSONWithRequestID(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	closer := Setup(Options{Level: "debug", Format: "json", Output: &buf})
	defer closer.Close()

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-42")
	WithFields(ctx, "query", "thrombin").Debug("search finished")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "search finished", entry["msg"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "thrombin", entry["query"])
}

func TestSetup_LevelFilters(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	Setup(Options{Level: "warn", Output: &buf})
	slog.Info("hidden")
	slog.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetup_WritesRotatedFile(t *testing.T) {
	restoreDefault(t)
	path := filepath.Join(t.TempDir(), "aptadb.log")
	var buf bytes.Buffer

	closer := Setup(Options{Output: &buf, File: path, MaxSizeMB: 1})
	slog.Info("records loaded", "records", 3)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "records loaded")
	assert.Contains(t, buf.String(), "records loaded")
}

func TestFromContext_NoRequestID(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	Setup(Options{Format: "json", Output: &buf})

	FromContext(context.Background()).Info("plain")

	assert.NotContains(t, buf.String(), "request_id")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}
