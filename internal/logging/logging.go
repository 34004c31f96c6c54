// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.Setup(os.Stderr, "warn")  // level from config, LOG_LEVEL env wins
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

var (
	sessionID     string
	sessionIDOnce sync.Once
)

// SessionID returns the id shared by every log line of this process.
func SessionID() string {
	sessionIDOnce.Do(func() {
		id, err := uuid.NewV7()
		if err != nil {
			sessionID = uuid.New().String()
			return
		}
		sessionID = id.String()
	})
	return sessionID
}

// Setup installs a tint handler writing to w as the slog default and
// returns it. The LOG_LEVEL env var, when set, overrides level.
func Setup(w io.Writer, level string) *slog.Logger {
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}
	logger := slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      ParseLevel(level),
			TimeFormat: time.Kitchen,
			NoColor:    !isTerminal(w),
		}),
	).With("session", SessionID())
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps debug, info, warn, and error to slog levels. Anything
// else is treated as warn.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
