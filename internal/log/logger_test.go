// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(b), &m), "log line: %s", b)
	return m
}

func TestBuildWritesJSON(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	var buf bytes.Buffer
	l, f := build(Config{Level: "debug", Output: &buf, Version: "v1.2.3"})
	assert.Nil(t, f)

	l.Debug().Str(FieldEvent, "run.start").Msg("starting")

	m := decodeLine(t, buf.Bytes())
	assert.Equal(t, "epgclean", m["service"])
	assert.Equal(t, "v1.2.3", m["version"])
	assert.Equal(t, "run.start", m[FieldEvent])
	assert.Equal(t, "debug", m["level"])
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestBuildInvalidLevelFallsBackToInfo(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	var buf bytes.Buffer
	l, _ := build(Config{Level: "chatty", Output: &buf, Service: "custom"})
	l.Debug().Msg("hidden")
	assert.Zero(t, buf.Len(), "debug must be filtered at info level")

	l.Info().Msg("shown")
	assert.Equal(t, "custom", decodeLine(t, buf.Bytes())["service"])
}

func TestBuildLogFile(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	path := filepath.Join(t.TempDir(), "epgclean.log")
	var buf bytes.Buffer
	l, f := build(Config{Output: &buf, File: path})
	require.NotNil(t, f)
	t.Cleanup(func() { _ = f.Close() })

	l.Info().Str(FieldEvent, "run.done").Msg("finished")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "run.done", decodeLine(t, data)[FieldEvent])
	assert.Equal(t, "run.done", decodeLine(t, buf.Bytes())[FieldEvent], "console output still written")
}

func TestCloseWithoutFile(t *testing.T) {
	assert.NoError(t, Close())
}
