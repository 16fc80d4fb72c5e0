package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns what it printed to
// stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v), string(data))
}

func TestRootLoadsPipelineConfig(t *testing.T) {
	dir := t.TempDir()
	simplified := writeFile(t, dir, "records.json", `[{"country":"USA","sector":"power","subsector":"x","emissions":10}]`)
	netPath := filepath.Join(dir, "net.json")

	config := writeFile(t, dir, "run.yaml", `
output:
  simplified: `+simplified+`
  net: `+netPath+`
  gross: `+filepath.Join(dir, "gross.json")+`
  breakdown: `+filepath.Join(dir, "breakdown.json")+`
`)

	_, _, err := execute(t, "aggregate", "--config", config)
	require.NoError(t, err)

	var net map[string]float64
	readJSON(t, netPath, &net)
	assert.Equal(t, map[string]float64{"USA": 10}, net)
}

func TestRootRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "run.yaml", "year: 1990\nbatch_size: 0\n")

	_, stderr, err := execute(t, "aggregate", "--config", config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "year must be between")
	assert.Contains(t, stderr, "failed to load pipeline config")
}

func TestRootMissingConfig(t *testing.T) {
	_, _, err := execute(t, "clean", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
