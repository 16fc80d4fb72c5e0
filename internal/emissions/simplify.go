package emissions

import (
	"encoding/json"

	"carbontradle.org/internal/climatetrace"
	"carbontradle.org/internal/taxonomy"
	"carbontradle.org/internal/utils"
)

// Simplify flattens fetched response units into records. Units that are not
// country-keyed objects are skipped, as are entries that are not objects.
// Output follows unit order, then country key order, then entry order.
func Simplify(units []climatetrace.RawUnit) []Record {
	var records []Record

	for _, unit := range units {
		countries, err := unit.Countries()
		if err != nil {
			continue
		}

		for _, country := range countries {
			for _, raw := range country.Entries {
				var entry map[string]json.RawMessage
				if err := json.Unmarshal(raw, &entry); err != nil || entry == nil {
					continue
				}

				// The API reports the subsector under "Sector".
				subsector := utils.StringOr(entry["Sector"], "")
				records = append(records, Record{
					Country:   country.Code,
					Sector:    taxonomy.SectorOf(subsector),
					Subsector: subsector,
					Emissions: utils.CoerceFloat(entry["Emissions"]),
				})
			}
		}
	}

	return records
}
