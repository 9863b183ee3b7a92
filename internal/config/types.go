// SPDX-License-Identifier: MIT

package config

import (
	"github.com/ManuGH/epgclean/internal/epg"
)

// ChannelEntry is one row of the channel allow-list.
type ChannelEntry struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name,omitempty"`
}

// SportsConfig configures the sports detector.
type SportsConfig struct {
	Keywords []string `yaml:"keywords,omitempty"`
}

// FileConfig is the on-disk YAML shape. Zero values mean "not set".
type FileConfig struct {
	Input         string         `yaml:"input,omitempty"`
	Output        string         `yaml:"output,omitempty"`
	LogLevel      string         `yaml:"logLevel,omitempty"`
	LogFile       string         `yaml:"logFile,omitempty"`
	Workers       int            `yaml:"workers,omitempty"`
	MetricsFile   string         `yaml:"metricsFile,omitempty"`
	MaxInputBytes int64          `yaml:"maxInputBytes,omitempty"`
	Sports        SportsConfig   `yaml:"sports,omitempty"`
	Channels      []ChannelEntry `yaml:"channels,omitempty"`
}

// AppConfig is the resolved configuration after defaults, file and environment.
type AppConfig struct {
	Version string

	Input         string
	Output        string
	LogLevel      string
	LogFile       string
	Workers       int
	MetricsFile   string
	MaxInputBytes int64

	SportsKeywords []string
	Channels       []ChannelEntry
}

// ChannelTable builds the immutable allow-list used by the pipeline.
func (c AppConfig) ChannelTable() (*epg.ChannelTable, error) {
	entries := make([]epg.ChannelEntry, len(c.Channels))
	for i, ch := range c.Channels {
		entries[i] = epg.ChannelEntry{ID: ch.ID, Name: ch.Name}
	}
	return epg.NewChannelTable(entries)
}

// Clone returns a deep copy so holders can hand out snapshots safely.
func (c AppConfig) Clone() AppConfig {
	out := c
	out.SportsKeywords = append([]string(nil), c.SportsKeywords...)
	out.Channels = append([]ChannelEntry(nil), c.Channels...)
	return out
}
