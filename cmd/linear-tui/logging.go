package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nicobailon/linear-tui/internal/config"
)

// configureRuntimeLogger sends logs to a file because the terminal belongs to
// the UI while it runs. When the file cannot be opened logs are dropped.
func configureRuntimeLogger(cfg *config.Config) (*slog.Logger, func()) {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	logPath := cfg.LogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, func() {
		_ = f.Close()
	}
}
