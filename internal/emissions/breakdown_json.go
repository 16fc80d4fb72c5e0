package emissions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
)

const (
	sectorTotalKey = "sectorTotal"
	// A subsector whose name is sectorTotalKey is written under this key.
	escapedSectorTotalKey = "subsector:" + sectorTotalKey
)

// MarshalJSON writes the flat file shape: subsector keys in sorted order
// followed by "sectorTotal".
func (s SectorBreakdown) MarshalJSON() ([]byte, error) {
	names := make([]string, 0, len(s.Subsectors))
	for name := range s.Subsectors {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for _, name := range names {
		key := name
		if name == sectorTotalKey {
			slog.Warn("subsector name collides with sector total key",
				slog.String("component", "emissions"),
				slog.String("written_as", escapedSectorTotalKey))
			key = escapedSectorTotalKey
		}
		if err := writeMember(&buf, key, s.Subsectors[name]); err != nil {
			return nil, err
		}
		buf.WriteByte(',')
	}
	if err := writeMember(&buf, sectorTotalKey, s.SectorTotal); err != nil {
		return nil, err
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key string, value float64) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

// UnmarshalJSON reads the flat file shape. The stored total is ignored and
// recomputed from the subsector values.
func (s *SectorBreakdown) UnmarshalJSON(b []byte) error {
	var values map[string]json.RawMessage
	if err := json.Unmarshal(b, &values); err != nil {
		return fmt.Errorf("decoding sector breakdown: %w", err)
	}

	s.Subsectors = make(map[string]float64, len(values))
	for key, raw := range values {
		switch key {
		case sectorTotalKey:
			continue
		case escapedSectorTotalKey:
			key = sectorTotalKey
		}
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			return fmt.Errorf("decoding subsector %q: %w", key, err)
		}
		s.Subsectors[key] = f
	}
	s.Recompute()

	return nil
}
