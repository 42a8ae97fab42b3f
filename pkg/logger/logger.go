package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"lib7zip/pkg/env"
)

var Log *slog.Logger

const timeFormat = "2006-01-02T15:04:05.000-07:00"

var (
	history     []string
	historyMu   sync.RWMutex
	maxHistory  = 500
	output      io.Writer = os.Stderr
	outputMu    sync.Mutex
	logLocation *time.Location
	locationMu  sync.RWMutex
)

func init() {
	configure(slog.LevelInfo)
}

// ParseLevel maps DEBUG, WARN and ERROR to their slog level; anything else is
// INFO.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init initializes the global logger
func Init(levelStr string) {
	configure(ParseLevel(levelStr))

	locationMu.RLock()
	currentLoc := logLocation
	locationMu.RUnlock()
	Log.Debug("Logger initialized", "level", ParseLevel(levelStr).String(), "timezone", currentLoc.String())
}

// SetLevel updates the logger level at runtime
func SetLevel(levelStr string) {
	configure(ParseLevel(levelStr))
}

// SetOutput redirects log output. Tests use it to capture records.
func SetOutput(w io.Writer) {
	outputMu.Lock()
	output = w
	outputMu.Unlock()
}

func configure(level slog.Level) {
	// Use configured timezone (from TZ environment variable)
	loc := time.Local
	if tz := env.TZ(); tz != "" {
		if loaded, err := time.LoadLocation(tz); err == nil {
			loc = loaded
		}
	}
	locationMu.Lock()
	logLocation = loc
	locationMu.Unlock()

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String("time", a.Value.Time().In(loc).Format(timeFormat))
			}
			return a
		},
	}
	Log = slog.New(&HistoryHandler{Handler: slog.NewTextHandler(writerFunc(write), opts)})
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

func write(p []byte) (int, error) {
	outputMu.Lock()
	defer outputMu.Unlock()
	return output.Write(p)
}

// HistoryHandler keeps the most recent records in memory next to the text
// output.
type HistoryHandler struct {
	slog.Handler
}

func (h *HistoryHandler) Handle(ctx context.Context, r slog.Record) error {
	locationMu.RLock()
	loc := logLocation
	locationMu.RUnlock()
	if loc == nil {
		loc = time.Local
	}

	msg := fmt.Sprintf("time=%s level=%s msg=%q", r.Time.In(loc).Format(timeFormat), r.Level, r.Message)
	r.Attrs(func(a slog.Attr) bool {
		msg += fmt.Sprintf(" %s=%v", a.Key, a.Value)
		return true
	})

	historyMu.Lock()
	if len(history) >= maxHistory {
		history = history[1:]
	}
	history = append(history, msg)
	historyMu.Unlock()

	return h.Handler.Handle(ctx, r)
}

func (h *HistoryHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &HistoryHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *HistoryHandler) WithGroup(name string) slog.Handler {
	return &HistoryHandler{Handler: h.Handler.WithGroup(name)}
}

// GetHistory returns the current log history
func GetHistory() []string {
	historyMu.RLock()
	defer historyMu.RUnlock()
	cp := make([]string, len(history))
	copy(cp, history)
	return cp
}

// ClearHistory drops the in-memory history.
func ClearHistory() {
	historyMu.Lock()
	history = nil
	historyMu.Unlock()
}

// Helper functions for easy access
func Debug(msg string, args ...any) {
	Log.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Log.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Log.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Log.Error(msg, args...)
}

func Fatal(msg string, args ...any) {
	Log.Error(msg, args...)
	os.Exit(1)
}
