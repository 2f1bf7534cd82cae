// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the base logger.
type Config struct {
	Level   string    // "debug", "info", ...; defaults to info
	Format  string    // "json" or "console"
	Output  io.Writer // defaults to os.Stdout
	Service string
}

var (
	mu   sync.RWMutex
	base = zerolog.New(os.Stdout).With().Timestamp().Str("service", "rightimage-site").Logger()
)

// Configure replaces the base logger.
func Configure(cfg Config) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	writer := cfg.Output
	if writer == nil {
		writer = os.Stdout
	}
	if cfg.Format == "console" {
		writer = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.Kitchen}
	}

	service := cfg.Service
	if service == "" {
		service = "rightimage-site"
	}

	mu.Lock()
	base = zerolog.New(writer).With().
		Timestamp().
		Str("service", service).
		Logger()
	mu.Unlock()
}

// Base returns the configured base logger.
func Base() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}
