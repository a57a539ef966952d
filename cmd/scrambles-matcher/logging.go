package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/soyrandom1/scrambles-matcher/internal/config"
)

func newLogger(c config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// fileLogger logs to log.file, or nowhere when it is unset. The terminal
// belongs to the TUI.
func fileLogger(c config.LogConfig) (*slog.Logger, func(), error) {
	if c.File == "" {
		return newLogger(c, io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return newLogger(c, f), func() { _ = f.Close() }, nil
}
