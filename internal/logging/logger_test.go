package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewConsoleLoggerWritesAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	logger.Info("scan complete", slog.String("provider", "mediainfo"), slog.Int("tracks", 3))

	line := buf.String()
	if !strings.Contains(line, "scan complete") {
		t.Fatalf("message missing from output: %q", line)
	}
	if !strings.Contains(line, "provider=mediainfo") || !strings.Contains(line, "tracks=3") {
		t.Fatalf("attrs missing from output: %q", line)
	}
}

func TestNewJSONLoggerShape(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	logger.Warn("tool missing", slog.String("tool", "mediainfo"))

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if decoded["level"] != "warn" || decoded["msg"] != "tool missing" || decoded["tool"] != "mediainfo" {
		t.Fatalf("unexpected JSON line: %v", decoded)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	logger.Debug("hidden")
	logger.Info("also hidden")
	logger.Error("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("low-severity lines leaked: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("error line missing: %q", out)
	}
}
