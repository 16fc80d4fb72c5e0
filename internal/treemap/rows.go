package treemap

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"carbontradle.org/internal/logging"
	"carbontradle.org/internal/utils"
)

// Column names read from an emissions CSV export.
const (
	ColumnCountry   = "iso3_country"
	ColumnSector    = "sector"
	ColumnSubsector = "subsector"
	ColumnQuantity  = "emissions_quantity"
)

// Row is one line of an emissions CSV export keyed by header name.
type Row map[string]string

// LoadRows reads a delimited file whose first line is a header. Short lines
// leave the missing columns empty.
func LoadRows(path string, delimiter rune) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer logging.SafeCloseWithLogging(f, slog.Default(), "read "+path)

	return ReadRows(f, delimiter)
}

// ReadRows is LoadRows over an arbitrary reader.
func ReadRows(r io.Reader, delimiter rune) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(rows)+2, err)
		}

		row := make(Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// AggregateRows sums emissions_quantity per sector and subsector for rows
// whose iso3_country matches code. Rows without a sector or subsector are
// skipped and an unparseable quantity counts as zero.
func AggregateRows(rows []Row, code string) Totals {
	totals := make(Totals)
	for _, row := range rows {
		if strings.TrimSpace(row[ColumnCountry]) != code {
			continue
		}

		sector := strings.TrimSpace(row[ColumnSector])
		subsector := strings.TrimSpace(row[ColumnSubsector])
		if sector == "" || subsector == "" {
			continue
		}

		if totals[sector] == nil {
			totals[sector] = make(map[string]float64)
		}
		totals[sector][subsector] += utils.ParseFloatLoose(row[ColumnQuantity])
	}
	return totals
}
