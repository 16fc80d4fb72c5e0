// Package game scores a country guess against the target country by
// distance and direction.
package game

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"carbontradle.org/internal/logging"
	"carbontradle.org/internal/taxonomy"
	"carbontradle.org/internal/utils"
)

// ErrUnknownCountry is returned when a country has no known coordinates.
var ErrUnknownCountry = errors.New("unknown country")

// Coordinates maps a lower-cased country name to its centroid.
type Coordinates map[string]Point

// LoadCoordinates reads a CSV file with COUNTRY, LATITUDE and LONGITUDE
// columns.
func LoadCoordinates(path string) (Coordinates, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer logging.SafeCloseWithLogging(f, slog.Default(), "read "+path)

	return ReadCoordinates(f)
}

// ReadCoordinates is LoadCoordinates over an arbitrary reader. Rows without
// a country are skipped; unparseable coordinates read as zero.
func ReadCoordinates(r io.Reader) (Coordinates, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading coordinates header: %w", err)
	}

	col := map[string]int{}
	for i, name := range header {
		col[strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	for _, required := range []string{"COUNTRY", "LATITUDE", "LONGITUDE"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("coordinates header is missing %s", required)
		}
	}

	field := func(record []string, name string) string {
		if i := col[name]; i < len(record) {
			return record[i]
		}
		return ""
	}

	coords := Coordinates{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading coordinates: %w", err)
		}

		name := strings.ToLower(strings.TrimSpace(field(record, "COUNTRY")))
		if name == "" {
			continue
		}
		coords[name] = Point{
			Lat: utils.ParseFloatLoose(field(record, "LATITUDE")),
			Lon: utils.ParseFloatLoose(field(record, "LONGITUDE")),
		}
	}

	return coords, nil
}

// Lookup finds a country by display name (any case) or ISO alpha-3 code.
func (c Coordinates) Lookup(country string) (Point, bool) {
	key := strings.ToLower(strings.TrimSpace(country))
	if p, ok := c[key]; ok {
		return p, true
	}

	code := strings.ToUpper(key)
	if name := taxonomy.CountryName(code); name != code {
		p, ok := c[strings.ToLower(name)]
		return p, ok
	}
	return Point{}, false
}

// Names returns the known country keys in sorted order.
func (c Coordinates) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
