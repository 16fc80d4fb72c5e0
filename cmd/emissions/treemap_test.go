package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbontradle.org/internal/treemap"
)

func TestTreemapCommand(t *testing.T) {
	dir := t.TempDir()
	dumpPath := writeFile(t, dir, "cleaned.json", dumpFixture)
	breakdownPath := writeFile(t, dir, "breakdown.json", `{
  "CHN": {
    "manufacturing": {"cement": 150, "sectorTotal": 150},
    "power": {"electricity-generation": 900, "heat-plants": -5, "sectorTotal": 895}
  }
}`)
	csvPath := writeFile(t, dir, "assets.tsv",
		"iso3_country\tsector\tsubsector\temissions_quantity\n"+
			"CHN\tmanufacturing\tcement\t100\n"+
			"CHN\tmanufacturing\tcement\t50\n"+
			"CHN\tpower\telectricity-generation\t900\n"+
			"CHN\tpower\theat-plants\tn/a\n"+
			"USA\tpower\telectricity-generation\t1000\n")

	wantChildren := []*treemap.Node{
		{Name: "manufacturing", Value: 150, Children: []*treemap.Node{{Name: "cement", Value: 150}}},
		{Name: "power", Value: 900, Children: []*treemap.Node{{Name: "electricity-generation", Value: 900}}},
	}

	tests := []struct {
		name string
		args []string
	}{
		{name: "dump", args: []string{"--source", "dump", "--input", dumpPath}},
		{name: "breakdown", args: []string{"--source", "breakdown", "--input", breakdownPath}},
		{name: "csv", args: []string{"--source", "csv", "--input", csvPath, "--delimiter", `\t`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := filepath.Join(t.TempDir(), "treemap.json")
			args := append([]string{"treemap", "--country", "chn", "--output", output}, tt.args...)

			stdout, _, err := execute(t, args...)
			require.NoError(t, err)
			assert.Equal(t, "China: 2 sectors, total 1050\n", stdout)

			var root treemap.Node
			readJSON(t, output, &root)
			assert.Equal(t, "China", root.Name)
			assert.Equal(t, 1050.0, root.Value)
			assert.Equal(t, wantChildren, root.Children)
		})
	}
}

func TestTreemapCommandCustomName(t *testing.T) {
	dir := t.TempDir()
	breakdownPath := writeFile(t, dir, "breakdown.json", `{"CHN": {"power": {"heat-plants": -5, "sectorTotal": -5}}}`)
	output := filepath.Join(dir, "treemap.json")

	_, _, err := execute(t, "treemap", "--source", "breakdown", "--input", breakdownPath,
		"--country", "CHN", "--name", "PRC", "--output", output)
	require.NoError(t, err)

	var root treemap.Node
	readJSON(t, output, &root)
	assert.Equal(t, "PRC", root.Name)
	assert.Equal(t, 0.0, root.Value)
	assert.NotNil(t, root.Children)
	assert.Empty(t, root.Children)
}

func TestTreemapCommandErrors(t *testing.T) {
	dir := t.TempDir()
	dumpPath := writeFile(t, dir, "cleaned.json", dumpFixture)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "missing country flag", args: []string{"--input", dumpPath}, wantErr: `required flag(s) "country" not set`},
		{name: "bad country code", args: []string{"--country", "CN", "--input", dumpPath}, wantErr: "invalid country code"},
		{name: "country not in dump", args: []string{"--country", "FRA", "--input", dumpPath}, wantErr: `country "France" not found`},
		{name: "unknown source", args: []string{"--country", "CHN", "--source", "xml"}, wantErr: `unknown source "xml"`},
		{name: "csv without input", args: []string{"--country", "CHN", "--source", "csv"}, wantErr: "--input is required"},
		{name: "bad delimiter", args: []string{"--country", "CHN", "--source", "csv", "--input", dumpPath, "--delimiter", ";;"}, wantErr: "single character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"treemap", "--output", filepath.Join(t.TempDir(), "out.json")}, tt.args...)
			_, _, err := execute(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in   string
		want rune
		ok   bool
	}{
		{in: `\t`, want: '\t', ok: true},
		{in: "tab", want: '\t', ok: true},
		{in: "\t", want: '\t', ok: true},
		{in: ",", want: ',', ok: true},
		{in: ";", want: ';', ok: true},
		{in: "", ok: false},
		{in: "ab", ok: false},
	}

	for _, tt := range tests {
		got, err := parseDelimiter(tt.in)
		if !tt.ok {
			assert.Error(t, err, "%q", tt.in)
			continue
		}
		require.NoError(t, err, "%q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}
