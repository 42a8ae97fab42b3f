package logger

import (
	"bytes"
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
		{"WARN", slog.LevelWarn},
		{"Error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHistoryAndLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nopWriter{})
	ClearHistory()

	SetLevel("WARN")
	Info("hidden")
	Warn("shown", "interface", "IInStream")

	h := GetHistory()
	if len(h) != 1 {
		t.Fatalf("history has %d records, want 1: %v", len(h), h)
	}
	if !strings.Contains(h[0], `msg="shown"`) || !strings.Contains(h[0], "interface=IInStream") {
		t.Errorf("unexpected history record %q", h[0])
	}
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("info record written at WARN level: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("missing warn record in output: %q", buf.String())
	}
	SetLevel("INFO")
}

func TestHistoryIsBounded(t *testing.T) {
	SetOutput(nopWriter{})
	ClearHistory()
	for i := 0; i < maxHistory+10; i++ {
		Info("record", "n", i)
	}
	h := GetHistory()
	if len(h) != maxHistory {
		t.Fatalf("history has %d records, want %d", len(h), maxHistory)
	}
	if !strings.Contains(h[0], "n=10") {
		t.Errorf("oldest record = %q, want n=10", h[0])
	}
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
