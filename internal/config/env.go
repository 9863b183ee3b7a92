// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"strconv"

	"github.com/ManuGH/epgclean/internal/log"
	"github.com/rs/zerolog"
)

// Environment variables recognised by the loader.
const (
	EnvInput         = "EPGCLEAN_INPUT"
	EnvOutput        = "EPGCLEAN_OUTPUT"
	EnvLogLevel      = "EPGCLEAN_LOG_LEVEL"
	EnvLogFile       = "EPGCLEAN_LOG_FILE"
	EnvWorkers       = "EPGCLEAN_WORKERS"
	EnvMetricsFile   = "EPGCLEAN_METRICS_FILE"
	EnvMaxInputBytes = "EPGCLEAN_MAX_INPUT_BYTES"
)

// ParseString reads a string from environment variable or returns default value.
// It logs the source (environment or default) for observability.
func ParseString(key, defaultValue string) string {
	return parseStringWithLogger(log.WithComponent("config"), key, defaultValue)
}

func parseStringWithLogger(logger zerolog.Logger, key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		if value == "" {
			logger.Debug().
				Str("key", key).
				Str("default", defaultValue).
				Str("source", "default").
				Msg("using default value (environment variable is empty)")
			return defaultValue
		}
		logger.Debug().
			Str("key", key).
			Str("value", value).
			Str("source", "environment").
			Msg("using environment variable")
		return value
	}
	logger.Debug().
		Str("key", key).
		Str("default", defaultValue).
		Str("source", "default").
		Msg("using default value")
	return defaultValue
}

// ParseInt reads an integer from environment variable or returns default value.
// It validates the input and falls back to default on parse errors.
func ParseInt(key string, defaultValue int) int {
	return int(parseInt64(key, int64(defaultValue), strconv.IntSize))
}

// ParseInt64 is ParseInt for 64-bit quantities such as byte limits.
func ParseInt64(key string, defaultValue int64) int64 {
	return parseInt64(key, defaultValue, 64)
}

func parseInt64(key string, defaultValue int64, bitSize int) int64 {
	logger := log.WithComponent("config")
	if v, ok := os.LookupEnv(key); ok {
		if v == "" {
			logger.Debug().
				Str("key", key).
				Int64("default", defaultValue).
				Str("source", "default").
				Msg("using default value (environment variable is empty)")
			return defaultValue
		}
		if i, err := strconv.ParseInt(v, 10, bitSize); err == nil {
			logger.Debug().
				Str("key", key).
				Int64("value", i).
				Str("source", "environment").
				Msg("using environment variable")
			return i
		}
		logger.Warn().
			Str("key", key).
			Str("value", v).
			Int64("default", defaultValue).
			Msg("invalid integer in environment variable, using default")
		return defaultValue
	}
	logger.Debug().
		Str("key", key).
		Int64("default", defaultValue).
		Str("source", "default").
		Msg("using default value")
	return defaultValue
}
