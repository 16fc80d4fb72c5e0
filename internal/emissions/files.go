package emissions

import "carbontradle.org/internal/utils"

// LoadRecords reads a flat JSON array of records.
func LoadRecords(path string) ([]Record, error) {
	var records []Record
	if err := utils.ReadJSONFile(path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// LoadBreakdown reads a breakdown file written by SaveJSON.
func LoadBreakdown(path string) (Breakdown, error) {
	var b Breakdown
	if err := utils.ReadJSONFile(path, &b); err != nil {
		return nil, err
	}
	return b, nil
}

// SaveJSON writes v to path as JSON indented by two spaces.
func SaveJSON(path string, v any) error {
	return utils.WriteJSONFile(path, v, "  ")
}

// SaveJSONFiles is SaveJSON for several files at once: either every file is
// written or none is.
func SaveJSONFiles(outputs ...utils.JSONOutput) error {
	return utils.WriteJSONFiles(outputs, "  ")
}
