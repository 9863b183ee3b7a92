// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"runtime"

	"github.com/ManuGH/epgclean/internal/epg"
	"github.com/ManuGH/epgclean/internal/normalize"
	"gopkg.in/yaml.v3"
)

const (
	DefaultInput    = "epg.xml"
	DefaultOutput   = "clean_epg.xml"
	DefaultLogLevel = "info"
)

//go:embed channels.yaml
var defaultChannelsYAML []byte

// DefaultChannels returns the embedded channel allow-list.
func DefaultChannels() ([]ChannelEntry, error) {
	var doc struct {
		Channels []ChannelEntry `yaml:"channels"`
	}
	dec := yaml.NewDecoder(bytes.NewReader(defaultChannelsYAML))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode embedded channel table: %w", err)
	}
	return doc.Channels, nil
}

func (l *Loader) setDefaults(cfg *AppConfig) error {
	channels, err := DefaultChannels()
	if err != nil {
		return err
	}
	cfg.Version = l.version
	cfg.Input = DefaultInput
	cfg.Output = DefaultOutput
	cfg.LogLevel = DefaultLogLevel
	cfg.Workers = runtime.NumCPU()
	cfg.MaxInputBytes = epg.DefaultMaxBytes
	cfg.SportsKeywords = append([]string(nil), normalize.DefaultSportsKeywords...)
	cfg.Channels = channels
	return nil
}
