package emissions

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveJSONIndentsByTwoSpaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.json")

	require.NoError(t, SaveJSON(path, Totals{"USA": 60}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"USA\": 60\n}\n", string(data))
}

func TestRecordsRoundTripThroughFiles(t *testing.T) {
	dir := t.TempDir()
	records := []Record{
		{Country: "USA", Sector: "power", Subsector: "x", Emissions: 10},
		{Country: "USA", Sector: "power", Subsector: "y", Emissions: 5},
		{Country: "NOR", Sector: "forestry-and-land-use", Subsector: "net-forest-land", Emissions: -2.25},
	}

	recordsPath := filepath.Join(dir, "simplified_emissions.json")
	require.NoError(t, SaveJSON(recordsPath, records))

	loaded, err := LoadRecords(recordsPath)
	require.NoError(t, err)
	assert.Equal(t, records, loaded)

	breakdownPath := filepath.Join(dir, "subsector_breakdown.json")
	require.NoError(t, SaveJSON(breakdownPath, BuildBreakdown(loaded)))

	data, err := os.ReadFile(breakdownPath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"sectorTotal": 15`))

	b, err := LoadBreakdown(breakdownPath)
	require.NoError(t, err)
	assert.Equal(t, 15.0, b["USA"]["power"].SectorTotal)
	assert.Equal(t, -2.25, b["NOR"]["forestry-and-land-use"].Subsectors["net-forest-land"])
}

func TestLoadRecordsErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadRecords(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"not": "a list"}`), 0o600))
	_, err = LoadRecords(bad)
	assert.Error(t, err)
}

func TestSaveJSONReportsCreateFailure(t *testing.T) {
	err := SaveJSON(filepath.Join(t.TempDir(), "no-such-dir", "out.json"), Totals{})
	assert.Error(t, err)
}
