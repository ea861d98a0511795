package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock handler to inspect log records
type mockHandler struct {
	mu       sync.Mutex
	records  []slog.Record
	attrs    []slog.Attr
	group    string
	enabled  bool
	handleFn func(slog.Record) error // Optional custom handle logic
}

func (h *mockHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.enabled
}

func (h *mockHandler) Handle(ctx context.Context, record slog.Record) error {
	if h.handleFn != nil {
		return h.handleFn(record)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, record)
	return nil
}

func (h *mockHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h.mu.Lock()
	defer h.mu.Unlock()
	newHandler := mockHandler{records: h.records, attrs: h.attrs, group: h.group, enabled: h.enabled, handleFn: h.handleFn}
	newHandler.attrs = append(h.attrs, attrs...)
	return &newHandler
}

func (h *mockHandler) WithGroup(name string) slog.Handler {
	h.mu.Lock()
	defer h.mu.Unlock()
	newHandler := mockHandler{records: h.records, attrs: h.attrs, group: h.group, enabled: h.enabled, handleFn: h.handleFn}
	if newHandler.group == "" {
		newHandler.group = name
	} else {
		newHandler.group = newHandler.group + "." + name
	}
	return &newHandler
}

func (h *mockHandler) getRecords() []slog.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.records
}

func TestMultiHandler(t *testing.T) {
	h1 := &mockHandler{enabled: true}
	h2 := &mockHandler{enabled: true}

	multi := &multiHandler{handlers: []slog.Handler{h1, h2}}

	t.Run("Enabled", func(t *testing.T) {
		assert.True(t, multi.Enabled(context.Background(), slog.LevelInfo))

		h1.enabled = false
		h2.enabled = false
		assert.False(t, multi.Enabled(context.Background(), slog.LevelInfo))
	})

	t.Run("Handle", func(t *testing.T) {
		h1.enabled = true
		h2.enabled = true
		record := slog.NewRecord(time.Now(), slog.LevelInfo, "test message", 0)
		err := multi.Handle(context.Background(), record)
		assert.NoError(t, err)
		assert.Len(t, h1.getRecords(), 1)
		assert.Len(t, h2.getRecords(), 1)
		assert.Equal(t, "test message", h1.getRecords()[0].Message)
	})

	t.Run("Handle skips disabled handlers", func(t *testing.T) {
		quiet := &mockHandler{enabled: false}
		loud := &mockHandler{enabled: true}
		m := &multiHandler{handlers: []slog.Handler{quiet, loud}}

		record := slog.NewRecord(time.Now(), slog.LevelDebug, "only loud", 0)
		require.NoError(t, m.Handle(context.Background(), record))
		assert.Empty(t, quiet.getRecords())
		assert.Len(t, loud.getRecords(), 1)
	})

	t.Run("WithAttrs", func(t *testing.T) {
		attrs := []slog.Attr{slog.String("key", "value")}
		handlerWithAttrs := multi.WithAttrs(attrs)

		// Check if the new handler is a multiHandler
		newMulti, ok := handlerWithAttrs.(*multiHandler)
		require.True(t, ok, "WithAttrs should return a *multiHandler")

		// Check if underlying handlers have the attributes
		for _, h := range newMulti.handlers {
			mockH, ok := h.(*mockHandler)
			require.True(t, ok)
			assert.Equal(t, attrs, mockH.attrs)
		}
	})

	t.Run("WithGroup", func(t *testing.T) {
		handlerWithGroup := multi.WithGroup("my-group")

		newMulti, ok := handlerWithGroup.(*multiHandler)
		require.True(t, ok, "WithGroup should return a *multiHandler")

		for _, h := range newMulti.handlers {
			mockH, ok := h.(*mockHandler)
			require.True(t, ok)
			assert.Equal(t, "my-group", mockH.group)
		}
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("Warn level by default", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(false, "", &buf)

		logger.Info("loaded results")
		logger.Warn("baseline missing")

		assert.NotContains(t, buf.String(), "loaded results")
		assert.Contains(t, buf.String(), "baseline missing")
	})

	t.Run("Debug true", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(true, "", &buf)

		logger.Debug("debug message", "path", "results.csv")
		assert.Contains(t, buf.String(), "debug message")
		assert.Contains(t, buf.String(), "path=results.csv")
	})

	t.Run("File logging", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "benchreport.log")

		var console bytes.Buffer
		logger := NewLogger(false, path, &console)
		logger.Info("file message")

		content, err := os.ReadFile(path)
		require.NoError(t, err)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(bytes.TrimSpace(content), &entry))
		assert.Equal(t, "file message", entry["msg"])
		assert.Empty(t, console.String())
	})

	t.Run("No handlers", func(t *testing.T) {
		logger := NewLogger(false, "", nil)
		assert.NotNil(t, logger)
		logger.Error("this goes to dev/null")
	})
}

func TestLogError(t *testing.T) {
	originalLogger := slog.Default()
	defer slog.SetDefault(originalLogger)

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))

	LogError("Failed to write markdown report", io.ErrShortWrite, "path", "report.md")

	var logOutput map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logOutput))
	assert.Equal(t, "Failed to write markdown report", logOutput["msg"])
	assert.Equal(t, "ERROR", logOutput["level"])
	assert.Equal(t, "report.md", logOutput["path"])
	assert.Equal(t, io.ErrShortWrite.Error(), logOutput["error"])
}

func TestNewLogger_FileError(t *testing.T) {
	// Save original logger and restore it after the test
	originalLogger := slog.Default()
	defer slog.SetDefault(originalLogger)

	// Capture log output in a buffer
	var buf bytes.Buffer
	testLogger := slog.New(slog.NewJSONHandler(&buf, nil))
	slog.SetDefault(testLogger)

	// Use a path that's intentionally invalid for logging
	invalidPath := filepath.Join(t.TempDir(), "nonexistent/test.log")
	logger := NewLogger(false, invalidPath, nil)
	assert.NotNil(t, logger)

	// Verify that an error was logged to our buffer
	output := buf.String()
	assert.True(t, strings.Contains(output, "Failed to open log file"), "Expected log file error message, got: "+output)
}
