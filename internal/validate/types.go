// SPDX-License-Identifier: MIT

package validate

import (
	"errors"
	"fmt"
	"strings"
)

// LogLevel is a level name accepted by the logger.
type LogLevel string

const (
	LogLevelTrace LogLevel = "trace"
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogLevels lists every accepted level in increasing severity.
var LogLevels = []string{
	string(LogLevelTrace),
	string(LogLevelDebug),
	string(LogLevelInfo),
	string(LogLevelWarn),
	string(LogLevelError),
}

// ErrInvalidLogLevel is returned by ParseLogLevel for unknown names.
var ErrInvalidLogLevel = errors.New("invalid log level")

// IsValid checks if the log level is valid
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	default:
		return false
	}
}

// ParseLogLevel parses a lower-case level name.
func ParseLogLevel(s string) (LogLevel, error) {
	level := LogLevel(s)
	if !level.IsValid() {
		return "", fmt.Errorf("%w %q (must be one of: %s)", ErrInvalidLogLevel, s, strings.Join(LogLevels, ", "))
	}
	return level, nil
}
