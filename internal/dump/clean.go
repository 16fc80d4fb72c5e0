package dump

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FilterEntries drops entries whose asset count and emissions are both
// exactly zero. A field counts as zero when it is absent or a JSON number
// equal to 0; null, strings and other values are kept. The input slice is
// left untouched.
func FilterEntries(entries []Entry) []Entry {
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if isExactZero(e.Field("AssetCount")) && isExactZero(e.Field("Emissions")) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

// isExactZero reports whether raw is absent or a JSON number equal to 0.
func isExactZero(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return true
	}
	if c := raw[0]; c != '-' && (c < '0' || c > '9') {
		return false
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	return err == nil && f == 0
}

// CleanStats counts what a Clean pass removed.
type CleanStats struct {
	Lists   int
	Entries int
	Removed int
}

// Clean returns a copy of d with every entry list filtered. All keys are kept,
// including containers left empty; a null container becomes an empty one.
func Clean(d Dump) Dump {
	out, _ := CleanWithStats(d)
	return out
}

// CleanWithStats is Clean that also reports how many entries were removed.
func CleanWithStats(d Dump) (Dump, CleanStats) {
	var stats CleanStats

	out := make(Dump, len(d))
	for country, sectors := range d {
		cleanSectors := make(CountryData, len(sectors))
		for sector, subsectors := range sectors {
			cleanSubsectors := make(SectorData, len(subsectors))
			for subsector, byCode := range subsectors {
				cleanByCode := make(ByCode, len(byCode))
				for code, entries := range byCode {
					kept := FilterEntries(entries)
					stats.Lists++
					stats.Entries += len(entries)
					stats.Removed += len(entries) - len(kept)
					cleanByCode[code] = kept
				}
				cleanSubsectors[subsector] = cleanByCode
			}
			cleanSectors[sector] = cleanSubsectors
		}
		out[country] = cleanSectors
	}

	return out, stats
}
