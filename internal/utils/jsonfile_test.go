package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndReadJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, WriteJSONFile(path, map[string]int{"b": 2, "a": 1}, "    "))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"a\": 1,\n    \"b\": 2\n}\n", string(data))

	var back map[string]int
	require.NoError(t, ReadJSONFile(path, &back))
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, back)
}

func TestWriteJSONFileDoesNotCreateOnEncodeFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	err := WriteJSONFile(path, map[string]any{"f": func() {}}, "  ")
	assert.Error(t, err)

	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestReadJSONFileMissing(t *testing.T) {
	var v any
	err := ReadJSONFile(filepath.Join(t.TempDir(), "nope.json"), &v)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteJSONFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "net.json")
	second := filepath.Join(dir, "gross.json")

	require.NoError(t, WriteJSONFiles([]JSONOutput{
		{Path: first, Value: map[string]int{"USA": 1}},
		{Path: second, Value: map[string]int{"USA": 2}},
	}, "  "))

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"USA\": 1\n}\n", string(data))

	data, err = os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"USA\": 2\n}\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temporary files are left behind")
}

func TestWriteJSONFilesWritesNothingOnFailure(t *testing.T) {
	tests := []struct {
		name    string
		outputs func(dir string) []JSONOutput
	}{
		{
			name: "later file cannot be created",
			outputs: func(dir string) []JSONOutput {
				return []JSONOutput{
					{Path: filepath.Join(dir, "net.json"), Value: 1},
					{Path: filepath.Join(dir, "missing-dir", "gross.json"), Value: 2},
				}
			},
		},
		{
			name: "later value cannot be encoded",
			outputs: func(dir string) []JSONOutput {
				return []JSONOutput{
					{Path: filepath.Join(dir, "net.json"), Value: 1},
					{Path: filepath.Join(dir, "gross.json"), Value: func() {}},
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()

			err := WriteJSONFiles(tt.outputs(dir), "  ")
			require.Error(t, err)

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestWriteJSONFilesKeepsExistingTargetsOnFailure(t *testing.T) {
	dir := t.TempDir()
	net := filepath.Join(dir, "net.json")
	require.NoError(t, os.WriteFile(net, []byte("old\n"), 0o644))

	err := WriteJSONFiles([]JSONOutput{
		{Path: net, Value: 1},
		{Path: filepath.Join(dir, "missing-dir", "gross.json"), Value: 2},
	}, "  ")
	require.Error(t, err)

	data, err := os.ReadFile(net)
	require.NoError(t, err)
	assert.Equal(t, "old\n", string(data))
}
