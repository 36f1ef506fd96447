package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Log is the process-wide logger. The TUI owns the terminal, so
// records go to a file under the user cache dir instead of stdout,
// and only when CINEMASEAT_LOG asks for them.
var Log *slog.Logger

func init() {
	Log = newLogger(os.Getenv("CINEMASEAT_LOG"))
}

func newLogger(level string) *slog.Logger {
	var min slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		min = slog.LevelDebug
	case "info":
		min = slog.LevelInfo
	case "warn":
		min = slog.LevelWarn
	default:
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	dir, err := os.UserCacheDir()
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	path := filepath.Join(dir, "cinemaseat-cli", "client.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: min}))
}
