package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false, "info")

	logger.Debug("hidden")
	logger.Info("lookup finished", "domain", "example.in")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "lookup finished" {
		t.Errorf("msg = %v, want %q", entry["msg"], "lookup finished")
	}
	if entry["domain"] != "example.in" {
		t.Errorf("domain = %v, want %q", entry["domain"], "example.in")
	}
}

func TestNewDevelopmentIsText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true, "debug")

	logger.Debug("eviction pass", "deleted", 3)

	out := buf.String()
	if !strings.Contains(out, "eviction pass") {
		t.Errorf("output %q missing message", out)
	}
	if json.Valid([]byte(strings.TrimSpace(out))) {
		t.Errorf("development output should not be JSON: %q", out)
	}
}
