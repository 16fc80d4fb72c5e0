package treemap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTSV = "iso3_country\tsector\tsubsector\temissions_quantity\n" +
	"CHN\tfluorinated-gases\tfluorinated-gases\t120.5\n" +
	" CHN \tfluorinated-gases\tfluorinated-gases\t79.5\n" +
	"CHN\tpower\telectricity-generation\tnot-a-number\n" +
	"CHN\t\tcement\t50\n" +
	"USA\tpower\telectricity-generation\t1000\n" +
	"CHN\tpower\n"

func TestReadRowsAndAggregate(t *testing.T) {
	rows, err := ReadRows(strings.NewReader(sampleTSV), '\t')
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "USA", rows[4][ColumnCountry])
	assert.Equal(t, "", rows[5][ColumnQuantity])

	totals := AggregateRows(rows, "CHN")
	assert.Equal(t, Totals{
		"fluorinated-gases": {"fluorinated-gases": 200},
		"power":             {"electricity-generation": 0},
	}, totals)

	tree := BuildFromTotals("China", totals)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, 200.0, tree.Value)
}

func TestLoadRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.csv")
	require.NoError(t, os.WriteFile(path, []byte("\ufeffiso3_country,sector,subsector,emissions_quantity\nIND,waste,solid-waste-disposal,\"1,5\"\nIND,waste,solid-waste-disposal,2\n"), 0o600))

	rows, err := LoadRows(path, ',')
	require.NoError(t, err)
	require.Len(t, rows, 2)

	totals := AggregateRows(rows, "IND")
	assert.Equal(t, 2.0, totals["waste"]["solid-waste-disposal"])

	_, err = LoadRows(filepath.Join(t.TempDir(), "missing.csv"), ',')
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadRowsEmptyInput(t *testing.T) {
	rows, err := ReadRows(strings.NewReader(""), ',')
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Empty(t, AggregateRows(rows, "CHN"))
}
