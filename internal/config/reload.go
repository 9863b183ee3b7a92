// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"fmt"
	"slices"
	"sync"

	xglog "github.com/ManuGH/epgclean/internal/log"
	"github.com/rs/zerolog"
)

// Holder keeps the active configuration and swaps it atomically on Reload. A failed
// reload leaves the previous configuration in place.
type Holder struct {
	mu      sync.RWMutex
	current AppConfig
	loader  *Loader
	logger  zerolog.Logger
}

// NewHolder creates a holder with the initial configuration.
func NewHolder(initial AppConfig, loader *Loader) *Holder {
	return &Holder{
		current: initial.Clone(),
		loader:  loader,
		logger:  xglog.WithComponent("config"),
	}
}

// Get returns a snapshot of the current configuration.
func (h *Holder) Get() AppConfig {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current.Clone()
}

// Reload loads and validates the configuration again.
func (h *Holder) Reload(_ context.Context) error {
	h.logger.Info().Str(xglog.FieldEvent, "config.reload_start").Msg("reloading configuration")

	newCfg, err := h.loader.Load()
	if err != nil {
		h.logger.Error().
			Err(err).
			Str(xglog.FieldEvent, "config.reload_failed").
			Msg("failed to load new configuration")
		return fmt.Errorf("load config: %w", err)
	}

	h.mu.Lock()
	oldCfg := h.current
	h.current = newCfg
	h.mu.Unlock()

	h.logChanges(oldCfg, newCfg)
	h.logger.Info().
		Str(xglog.FieldEvent, "config.reload_success").
		Msg("configuration reloaded successfully")
	return nil
}

func (h *Holder) logChanges(old, newCfg AppConfig) {
	if old.Input != newCfg.Input {
		h.logger.Info().Str("old", old.Input).Str("new", newCfg.Input).Msg("config changed: input")
	}
	if old.Output != newCfg.Output {
		h.logger.Info().Str("old", old.Output).Str("new", newCfg.Output).Msg("config changed: output")
	}
	if old.Workers != newCfg.Workers {
		h.logger.Info().Int("old", old.Workers).Int("new", newCfg.Workers).Msg("config changed: workers")
	}
	if !slices.Equal(old.SportsKeywords, newCfg.SportsKeywords) {
		h.logger.Info().
			Int("old", len(old.SportsKeywords)).
			Int("new", len(newCfg.SportsKeywords)).
			Msg("config changed: sports keywords")
	}
	if !slices.Equal(old.Channels, newCfg.Channels) {
		h.logger.Info().
			Int("old", len(old.Channels)).
			Int("new", len(newCfg.Channels)).
			Msg("config changed: channels")
	}
}
