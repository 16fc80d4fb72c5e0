package climatetrace

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Definition kinds served under /v6/definitions/.
const (
	SectorDefinitions    = "sectors"
	SubsectorDefinitions = "subsectors"
)

// Definitions fetches the API's list of sector or subsector identifiers.
// Entries that are not strings are skipped with a warning.
func (c *Client) Definitions(ctx context.Context, kind string) ([]string, error) {
	if kind != SectorDefinitions && kind != SubsectorDefinitions {
		return nil, fmt.Errorf("unknown definition kind %q", kind)
	}

	body, err := c.get(ctx, definitionsPath+kind, nil)
	if err != nil {
		return nil, err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decoding %s definitions: %w", kind, err)
	}

	out := make([]string, 0, len(raw))
	for _, r := range raw {
		var s string
		if err := json.Unmarshal(r, &s); err != nil {
			c.logger.Warn("skipping non-string definition",
				slog.String("kind", kind),
				slog.String("value", string(r)))
			continue
		}
		out = append(out, s)
	}
	return out, nil
}
