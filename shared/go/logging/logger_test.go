package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog/log"
)

func TestNewWritesJSONAtConfiguredLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Format: "json", Output: &buf})

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered at warn level, got %q", buf.String())
	}

	logger.Error(errors.New("boom"), "venue insert failed")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "venue insert failed" || entry["error"] != "boom" || entry["level"] != "error" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestNewFallsBackToInfoOnUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "loud", Output: &buf})

	logger.Info("kept")
	if buf.Len() == 0 {
		t.Fatalf("expected info entry with fallback level")
	}
}

func TestWithContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	previous := log.Logger
	t.Cleanup(func() { log.Logger = previous })
	SetGlobalLogger(New(Config{Level: "debug", Output: &buf}))

	ctx := ContextWithRequestID(context.Background(), "req-123")
	WithContext(ctx).Info().Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["request_id"] != "req-123" {
		t.Fatalf("expected request_id in entry, got %v", entry)
	}
}

func TestSetGlobalLoggerRoutesPackageLog(t *testing.T) {
	previous := log.Logger
	t.Cleanup(func() { log.Logger = previous })

	var buf bytes.Buffer
	SetGlobalLogger(New(Config{Level: "info", Output: &buf}))

	log.Info().Msg("Fyyur listening")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected global log to reach configured output, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "Fyyur listening" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}
