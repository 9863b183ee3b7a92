// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ManuGH/epgclean/internal/jobs"
	"github.com/ManuGH/epgclean/internal/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cliGuide = `<?xml version="1.0" encoding="UTF-8"?>
<tv>
  <channel id="b.us"><display-name>B</display-name></channel>
  <channel id="a.us"><display-name>A</display-name></channel>
  <channel id="x.us"><display-name>X</display-name></channel>
  <programme start="20240105200000 +0000" channel="b.us">
    <title>NBA Basketball</title>
    <sub-title>Lakers vs Celtics</sub-title>
  </programme>
  <programme start="20240105180000 +0000" channel="a.us">
    <title>Friends (HD)</title>
    <episode-num system="onscreen">S05E08</episode-num>
  </programme>
  <programme start="20240105180000 +0000" channel="x.us">
    <title>Dropped</title>
  </programme>
</tv>
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func writeCLIConfig(t *testing.T, dir string) string {
	t.Helper()
	input := writeFile(t, dir, "epg.xml", cliGuide)
	return writeFile(t, dir, "config.yaml", `input: `+input+`
output: `+filepath.Join(dir, "clean_epg.xml")+`
logLevel: error
workers: 2
channels:
  - id: a.us
    name: Alpha
  - id: b.us
`)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeCLIConfig(t, dir)

	out, err := execute(t, "run", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Channels kept")
	assert.Contains(t, out, "2 of 3")

	data, err := os.ReadFile(filepath.Join(dir, "clean_epg.xml"))
	require.NoError(t, err)
	doc := string(data)

	assert.Contains(t, doc, "<display-name>Alpha</display-name>")
	assert.Contains(t, doc, "<title>Lakers vs Celtics</title>")
	assert.Contains(t, doc, "<desc>Friends - S5E8. (01/05/2024)</desc>")
	assert.NotContains(t, doc, "Dropped")
	assert.Less(t, strings.Index(doc, `channel id="a.us"`), strings.Index(doc, `channel id="b.us"`))
	assert.Less(t, strings.Index(doc, "Friends"), strings.Index(doc, "Lakers"))
}

func TestRootRunsByDefault(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeCLIConfig(t, dir)
	other := filepath.Join(dir, "other.xml")

	_, err := execute(t, "--config", cfgPath, "--output", other)
	require.NoError(t, err)
	assert.FileExists(t, other)
	assert.NoFileExists(t, filepath.Join(dir, "clean_epg.xml"))
}

func TestRunCommandFlagOverrideValidated(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeCLIConfig(t, dir)

	_, err := execute(t, "run", "--config", cfgPath, "--output", filepath.Join(dir, "epg.xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output")
}

func TestRunCommandMissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "run",
		"--input", filepath.Join(dir, "missing.xml"),
		"--output", filepath.Join(dir, "out.xml"),
		"--log-level", "error")
	assert.ErrorIs(t, err, jobs.ErrSourceNotFound)
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "validate", "-f", writeCLIConfig(t, dir))
	require.NoError(t, err)
	assert.Contains(t, out, "is valid (2 channels)")

	bad := writeFile(t, dir, "bad.yaml", "logLevel: loud\nchannels:\n  - id: a.us\n  - id: a.us\n")
	out, err = execute(t, "validate", "-f", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration error in "+bad)
	assert.Contains(t, out, "  - logLevel: invalid log level \"loud\"")
	assert.Contains(t, out, "  - channels[1]: duplicate of entry 0")

	unknown := writeFile(t, dir, "unknown.yaml", "inptu: epg.xml\n")
	_, err = execute(t, "validate", "-f", unknown)
	require.Error(t, err)

	_, err = execute(t, "validate")
	require.Error(t, err, "--file is required")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "epgclean dev (commit: none, built: unknown)\n", out)
}

func TestRenderSummary(t *testing.T) {
	out := renderSummary(&jobs.Summary{
		RunID:              "run-1",
		Input:              "epg.xml",
		Output:             "clean_epg.xml",
		ChannelsRead:       10,
		ChannelsKept:       4,
		ProgrammesRead:     100,
		ProgrammesFiltered: 60,
		ProgrammesSkipped:  2,
		ProgrammesEmitted:  38,
		Categories:         map[normalize.Category]int{normalize.CategorySports: 7},
	})

	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "4 of 10")
	for _, label := range []string{"Filtered", "Skipped (malformed)", "Sports", "Episodic", "Dates resolved"} {
		assert.Contains(t, out, label)
	}
}
