// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/ManuGH/epgclean/internal/validate"
)

// Validate checks a resolved AppConfig. Every reported problem wraps ErrInvalidConfig.
func Validate(cfg AppConfig) error {
	v := validate.New()

	v.NotEmpty("input", cfg.Input)
	v.NotEmpty("output", cfg.Output)
	v.DistinctPaths("output", cfg.Input, cfg.Output)
	v.LogLevel("logLevel", cfg.LogLevel)
	v.Range("workers", cfg.Workers, 1, 1024)
	v.NonNegative("maxInputBytes", cfg.MaxInputBytes)
	v.NonEmptyList("sports.keywords", cfg.SportsKeywords)

	if len(cfg.Channels) == 0 {
		v.AddError("channels", "allow-list cannot be empty", cfg.Channels)
	}
	ids := make([]string, len(cfg.Channels))
	for i, ch := range cfg.Channels {
		ids[i] = ch.ID
	}
	v.Unique("channels", ids)

	if err := v.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
