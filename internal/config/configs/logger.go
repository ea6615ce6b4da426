package configs

import (
	"log/slog"
	"strings"
)

// Logger configures the service logger. Level is one of "debug", "info",
// "warn" or "error"; Format is "text" (default) or "json". AddSource
// annotates records with the emitting file and line.
type Logger struct {
	Level     string `env:"LEVEL" envDefault:"info"`
	Format    string `env:"FORMAT" envDefault:"text"`
	AddSource bool   `env:"ADD_SOURCE" envDefault:"false"`
}

// HandlerOptions returns the slog options for this configuration.
func (c Logger) HandlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{Level: c.SlogLevel(), AddSource: c.AddSource}
}

// SlogLevel converts the textual level into a slog.Level. Unknown levels
// default to slog.LevelInfo.
func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SlogFormat validates and normalises the requested log format. Supported
// formats are "text" and "json". Any other value returns "text".
func (c Logger) SlogFormat() string {
	switch strings.ToLower(c.Format) {
	case "json":
		return "json"
	default:
		return "text"
	}
}
