// Package emissions flattens emissions API responses into records and
// reduces them into per-country totals and sector breakdowns.
package emissions

import (
	"encoding/json"
	"fmt"

	"carbontradle.org/internal/taxonomy"
	"carbontradle.org/internal/utils"
)

// NoCountry labels a record that carried no country.
const NoCountry = "N/A"

// Record is one flat emission quantity attributed to a country and subsector.
type Record struct {
	Country   string  `json:"country"`
	Sector    string  `json:"sector"`
	Subsector string  `json:"subsector"`
	Emissions float64 `json:"emissions"`
}

// UnmarshalJSON decodes a record best-effort: missing labels get sentinel
// values and a non-numeric emissions value counts as zero.
func (r *Record) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return fmt.Errorf("decoding record: %w", err)
	}

	*r = Record{
		Country:   utils.StringOr(fields["country"], NoCountry),
		Sector:    utils.StringOr(fields["sector"], taxonomy.Unknown),
		Subsector: utils.StringOr(fields["subsector"], taxonomy.Unknown),
		Emissions: utils.CoerceFloat(fields["emissions"]),
	}
	return nil
}
