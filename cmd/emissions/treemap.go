package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"carbontradle.org/internal/dump"
	"carbontradle.org/internal/emissions"
	"carbontradle.org/internal/logging"
	"carbontradle.org/internal/taxonomy"
	"carbontradle.org/internal/treemap"
	"carbontradle.org/internal/utils"
)

// Treemap input formats.
const (
	sourceDump      = "dump"
	sourceBreakdown = "breakdown"
	sourceCSV       = "csv"
)

const defaultTreemapFile = "treemap_data.json"

type treemapOptions struct {
	source    string
	input     string
	output    string
	country   string
	name      string
	delimiter string
}

func newTreemapCmd(cc *cliContext) *cobra.Command {
	opts := &treemapOptions{}

	cmd := &cobra.Command{
		Use:   "treemap",
		Short: "Build a sector/subsector treemap for one country",
		Long: "Builds a name/value/children hierarchy for one country from a cleaned dump, " +
			"a subsector breakdown, or a delimited asset export. Subsectors with no positive " +
			"total are dropped, as are sectors left without children.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTreemap(cmd, cc, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.source, "source", sourceDump, "input format: dump, breakdown or csv")
	f.StringVarP(&opts.input, "input", "i", "", "input file (defaults depend on --source)")
	f.StringVarP(&opts.output, "output", "o", defaultTreemapFile, "treemap output file")
	f.StringVar(&opts.country, "country", "", "ISO alpha-3 code of the country")
	f.StringVar(&opts.name, "name", "", "root label (defaults to the country's display name)")
	f.StringVar(&opts.delimiter, "delimiter", "\t", "field delimiter for --source csv")
	_ = cmd.MarkFlagRequired("country")
	return cmd
}

func runTreemap(cmd *cobra.Command, cc *cliContext, opts *treemapOptions) error {
	logger := cc.component("treemap")
	start := time.Now()

	code := strings.ToUpper(strings.TrimSpace(opts.country))
	if err := utils.ValidateCountryCode(code); err != nil {
		return err
	}
	name := opts.name
	if name == "" {
		name = taxonomy.CountryName(code)
	}

	input := opts.input
	if input == "" {
		switch opts.source {
		case sourceDump:
			input = defaultCleanedFile
		case sourceBreakdown:
			input = cc.pipeline.Output.Breakdown
		}
	}

	var root *treemap.Node
	switch opts.source {
	case sourceDump:
		d, err := dump.Load(input)
		if err != nil {
			logging.LogError(logger, "failed to load dump", err, slog.String("path", input))
			return err
		}
		country, ok := d[name]
		if !ok {
			err := fmt.Errorf("country %q not found in %s", name, input)
			logging.LogError(logger, "country missing from dump", err)
			return err
		}
		root = treemap.BuildFromDump(name, country, code)

	case sourceBreakdown:
		b, err := emissions.LoadBreakdown(input)
		if err != nil {
			logging.LogError(logger, "failed to load breakdown", err, slog.String("path", input))
			return err
		}
		root = treemap.BuildFromBreakdown(name, b, code)

	case sourceCSV:
		if input == "" {
			return fmt.Errorf("--input is required for --source %s", sourceCSV)
		}
		delim, err := parseDelimiter(opts.delimiter)
		if err != nil {
			return err
		}
		rows, err := treemap.LoadRows(input, delim)
		if err != nil {
			logging.LogError(logger, "failed to load rows", err, slog.String("path", input))
			return err
		}
		root = treemap.BuildFromTotals(name, treemap.AggregateRows(rows, code))

	default:
		return fmt.Errorf("unknown source %q (want %s, %s or %s)", opts.source, sourceDump, sourceBreakdown, sourceCSV)
	}

	if err := utils.WriteJSONFile(opts.output, root, "    "); err != nil {
		logging.LogError(logger, "failed to write treemap", err, slog.String("path", opts.output))
		return err
	}

	logging.LogOperation(logger, "treemap_written",
		slog.String("country", code),
		slog.String("source", opts.source),
		slog.String("path", opts.output),
		slog.Int("sectors", len(root.Children)),
		elapsed(start))

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d sectors, total %g\n", name, len(root.Children), root.Value)
	return nil
}

// parseDelimiter accepts a single character or the escapes \t and tab.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case `\t`, "tab":
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
