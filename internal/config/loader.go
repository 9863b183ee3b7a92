// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader handles configuration loading with precedence
type Loader struct {
	configPath      string
	version         string
	ConsumedEnvKeys map[string]struct{}
}

// NewLoader creates a new configuration loader. An empty configPath skips the file
// layer.
func NewLoader(configPath, version string) *Loader {
	return &Loader{
		configPath:      configPath,
		version:         version,
		ConsumedEnvKeys: make(map[string]struct{}),
	}
}

// Path returns the config file path, or "" when none is configured.
func (l *Loader) Path() string { return l.configPath }

func (l *Loader) envString(key, defaultVal string) string {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseString(key, defaultVal)
}

func (l *Loader) envInt(key string, defaultVal int) int {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseInt(key, defaultVal)
}

func (l *Loader) envInt64(key string, defaultVal int64) int64 {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseInt64(key, defaultVal)
}

// Load loads configuration with precedence: ENV > File > Defaults, then validates.
func (l *Loader) Load() (AppConfig, error) {
	cfg := AppConfig{}

	if err := l.setDefaults(&cfg); err != nil {
		return cfg, fmt.Errorf("set defaults: %w", err)
	}

	if l.configPath != "" {
		fileCfg, err := LoadFile(l.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		mergeFileConfig(&cfg, fileCfg)
	}

	l.mergeEnvConfig(&cfg)

	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile parses a YAML config file in strict mode.
func LoadFile(path string) (*FileConfig, error) {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("unsupported config format: %s (only YAML supported)", ext)
	}

	// #nosec G304 -- configuration file paths are provided by the operator via CLI/ENV
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return parseFile(data)
}

func parseFile(data []byte) (*FileConfig, error) {
	var fileCfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&fileCfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &FileConfig{}, nil
		}
		if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("strict config parse error: %w: %w", ErrUnknownConfigField, err)
		}
		return nil, fmt.Errorf("strict config parse error: %w", err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config file contains multiple documents or trailing content")
	}

	return &fileCfg, nil
}

func mergeFileConfig(dst *AppConfig, src *FileConfig) {
	if src.Input != "" {
		dst.Input = os.ExpandEnv(src.Input)
	}
	if src.Output != "" {
		dst.Output = os.ExpandEnv(src.Output)
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.LogFile != "" {
		dst.LogFile = os.ExpandEnv(src.LogFile)
	}
	if src.Workers != 0 {
		dst.Workers = src.Workers
	}
	if src.MetricsFile != "" {
		dst.MetricsFile = os.ExpandEnv(src.MetricsFile)
	}
	if src.MaxInputBytes != 0 {
		dst.MaxInputBytes = src.MaxInputBytes
	}
	if len(src.Sports.Keywords) > 0 {
		dst.SportsKeywords = append([]string(nil), src.Sports.Keywords...)
	}
	if len(src.Channels) > 0 {
		dst.Channels = append([]ChannelEntry(nil), src.Channels...)
	}
}

func (l *Loader) mergeEnvConfig(cfg *AppConfig) {
	cfg.Input = l.envString(EnvInput, cfg.Input)
	cfg.Output = l.envString(EnvOutput, cfg.Output)
	cfg.LogLevel = strings.ToLower(l.envString(EnvLogLevel, cfg.LogLevel))
	cfg.LogFile = l.envString(EnvLogFile, cfg.LogFile)
	cfg.Workers = l.envInt(EnvWorkers, cfg.Workers)
	cfg.MetricsFile = l.envString(EnvMetricsFile, cfg.MetricsFile)
	cfg.MaxInputBytes = l.envInt64(EnvMaxInputBytes, cfg.MaxInputBytes)
}
