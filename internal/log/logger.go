// SPDX-License-Identifier: MIT

package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config captures options for configuring the global logger.
type Config struct {
	Level   string    // optional log level ("debug", "info", etc.)
	Output  io.Writer // optional writer (defaults to os.Stderr)
	File    string    // optional log file, rotated by size
	Service string    // optional service name attached to every log entry
	Version string
}

var (
	once sync.Once
	mu   sync.RWMutex
	base zerolog.Logger
	file *lumberjack.Logger
)

// Configure initialises the global zerolog logger exactly once. Calls after the
// first are ignored.
func Configure(cfg Config) {
	once.Do(func() {
		l, f := build(cfg)
		mu.Lock()
		base, file = l, f
		mu.Unlock()
	})
}

func build(cfg Config) (zerolog.Logger, *lumberjack.Logger) {
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
		writer = os.Stderr
		if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
			writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
		}
	}

	var rotating *lumberjack.Logger
	if cfg.File != "" {
		rotating = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10,
			MaxBackups: 3,
		}
		writer = zerolog.MultiLevelWriter(writer, rotating)
	}

	service := cfg.Service
	if service == "" {
		service = "epgclean"
	}

	ctx := zerolog.New(writer).With().
		Timestamp().
		Str("service", service)
	if cfg.Version != "" {
		ctx = ctx.Str("version", cfg.Version)
	}
	return ctx.Logger(), rotating
}

// Close flushes and closes the log file, if one was configured.
func Close() error {
	mu.RLock()
	f := file
	mu.RUnlock()
	if f == nil {
		return nil
	}
	return f.Close()
}

func logger() zerolog.Logger {
	Configure(Config{})
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	return logger()
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return logger().With().Str(FieldComponent, component).Logger()
}
