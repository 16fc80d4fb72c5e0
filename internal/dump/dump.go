// Package dump models the nested per-country emissions dump produced by the
// subsector scrape and filters degenerate entries out of it.
package dump

import (
	"bytes"
	"encoding/json"

	"carbontradle.org/internal/utils"
)

// Entry is one emission object from the API. The original document is kept
// so that fields this package does not read survive a load and save.
type Entry struct {
	raw    json.RawMessage
	fields map[string]json.RawMessage
}

// NewEntry parses one emission object.
func NewEntry(b []byte) (Entry, error) {
	var e Entry
	err := e.UnmarshalJSON(b)
	return e, err
}

func (e Entry) MarshalJSON() ([]byte, error) {
	if len(e.raw) == 0 {
		return []byte("null"), nil
	}
	return e.raw, nil
}

// UnmarshalJSON accepts any JSON value. Values that are not objects carry no
// fields and read as zero.
func (e *Entry) UnmarshalJSON(b []byte) error {
	e.raw = append(json.RawMessage(nil), bytes.TrimSpace(b)...)
	e.fields = nil

	if len(e.raw) > 0 && e.raw[0] == '{' {
		return json.Unmarshal(e.raw, &e.fields)
	}
	return nil
}

// Field returns the raw value of a field, or nil when it is absent.
func (e Entry) Field(name string) json.RawMessage {
	return e.fields[name]
}

// Emissions returns the entry's emissions quantity for summing. Absent,
// null and non-numeric values read as 0.
func (e Entry) Emissions() float64 {
	return utils.CoerceFloat(e.fields["Emissions"])
}

// AssetCount returns the number of assets behind the entry, 0 when absent.
func (e Entry) AssetCount() float64 {
	return utils.CoerceFloat(e.fields["AssetCount"])
}

// ByCode maps a country code to its emission entries.
type ByCode map[string][]Entry

// SectorData maps a subsector to its entries by country code.
type SectorData map[string]ByCode

// CountryData maps a sector to its subsectors.
type CountryData map[string]SectorData

// Dump maps a country display name to its sectors.
type Dump map[string]CountryData

// Load reads a dump file.
func Load(path string) (Dump, error) {
	var d Dump
	if err := utils.ReadJSONFile(path, &d); err != nil {
		return nil, err
	}
	return d, nil
}

// Save writes d to path indented by four spaces.
func Save(path string, d Dump) error {
	return utils.WriteJSONFile(path, d, "    ")
}
