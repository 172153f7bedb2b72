package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_ConsoleFormatPromotesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.With("component", "apod").Info("fetched record", "title", "Nebula X", "bytes", 42)

	line := buf.String()
	if !strings.Contains(line, " INFO apod: fetched record") {
		t.Fatalf("line = %q, want component prefix", line)
	}
	if !strings.Contains(line, `title="Nebula X"`) {
		t.Fatalf("line = %q, want quoted title", line)
	}
	if !strings.Contains(line, "bytes=42") {
		t.Fatalf("line = %q, want bytes=42", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("line = %q, component should not repeat as a pair", line)
	}
}

func TestNew_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "error", errors.New("boom"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("output = %q, info should be filtered", out)
	}
	if !strings.Contains(out, "WARN shown") || !strings.Contains(out, "error=boom") {
		t.Fatalf("output = %q, want warn line with error", out)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("wallpaper set", "style", "fill")

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("Unmarshal: %v (output %q)", err, buf.String())
	}
	if payload["level"] != "info" {
		t.Fatalf("level = %v, want info", payload["level"])
	}
	if payload["style"] != "fill" {
		t.Fatalf("style = %v, want fill", payload["style"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("payload missing ts: %v", payload)
	}
}

func TestNew_UnsupportedFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatalf("New returned nil error, want unsupported format error")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestPrettyHandler_GroupsFlatten(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.WithGroup("image").Info("downloaded", "width", 1920)
	if !strings.Contains(buf.String(), "image.width=1920") {
		t.Fatalf("output = %q, want image.width=1920", buf.String())
	}
}
