// Package logger configures the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

type Config struct {
	Level  string
	Format string // "text", "json"; anything else gets text
	Output io.Writer
}

var (
	once sync.Once
	lg   *slog.Logger
)

// Init configures the global logger once; later calls are no-ops
func Init(cfg Config) {
	once.Do(func() {
		if cfg.Output == nil {
			cfg.Output = os.Stderr
		}
		opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
		var handler slog.Handler
		switch cfg.Format {
		case "json":
			handler = slog.NewJSONHandler(cfg.Output, opts)
		default:
			handler = slog.NewTextHandler(cfg.Output, opts)
		}
		lg = slog.New(handler)
		slog.SetDefault(lg)
	})
}

// L returns the configured logger, initializing defaults if needed
func L() *slog.Logger {
	if lg == nil {
		Init(Config{Level: "info"})
	}
	return lg
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
