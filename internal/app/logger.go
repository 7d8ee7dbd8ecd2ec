package app

import (
	"io"
	"log/slog"
	"os"

	"zistino-dispatch/internal/config"
	"zistino-dispatch/internal/logx"
)

// NewLogger builds the JSON logger at the configured level.
func NewLogger(cfg *config.Config) (logx.Logger, error) {
	level, err := logx.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return newJSONLogger(os.Stdout, level), nil
}

func newJSONLogger(w io.Writer, level slog.Level) logx.Logger {
	base := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	return logx.NewSlogAdapter(base)
}
