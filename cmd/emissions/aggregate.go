package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"carbontradle.org/internal/emissions"
	"carbontradle.org/internal/logging"
	"carbontradle.org/internal/taxonomy"
	"carbontradle.org/internal/utils"
)

type aggregateOptions struct {
	input        string
	net          string
	gross        string
	breakdown    string
	displayNames bool
}

func newAggregateCmd(cc *cliContext) *cobra.Command {
	opts := &aggregateOptions{}

	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Compute net, gross and per-subsector totals from simplified records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyAggregateFlags(cmd, cc, opts)
			return runAggregate(cmd, cc, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "simplified records file")
	f.StringVar(&opts.net, "net", "", "net totals output file")
	f.StringVar(&opts.gross, "gross", "", "gross totals output file")
	f.StringVar(&opts.breakdown, "breakdown", "", "subsector breakdown output file")
	f.BoolVar(&opts.displayNames, "display-names", false, "key outputs by country display name instead of ISO code")
	return cmd
}

func applyAggregateFlags(cmd *cobra.Command, cc *cliContext, opts *aggregateOptions) {
	f := cmd.Flags()
	out := &cc.pipeline.Output
	if f.Changed("input") {
		out.Simplified = opts.input
	}
	if f.Changed("net") {
		out.Net = opts.net
	}
	if f.Changed("gross") {
		out.Gross = opts.gross
	}
	if f.Changed("breakdown") {
		out.Breakdown = opts.breakdown
	}
}

func runAggregate(cmd *cobra.Command, cc *cliContext, opts *aggregateOptions) error {
	logger := cc.component("aggregate")
	out := cc.pipeline.Output
	start := time.Now()

	records, err := emissions.LoadRecords(out.Simplified)
	if err != nil {
		logging.LogError(logger, "failed to load simplified records", err,
			slog.String("path", out.Simplified))
		return err
	}

	summary := emissions.Aggregate(records)
	net, gross, breakdown := summary.Net, summary.Gross, summary.Breakdown
	if opts.displayNames {
		if net, err = totalsByName(net); err != nil {
			return err
		}
		if gross, err = totalsByName(gross); err != nil {
			return err
		}
		if breakdown, err = breakdownByName(breakdown); err != nil {
			return err
		}
	}

	err = emissions.SaveJSONFiles(
		utils.JSONOutput{Path: out.Net, Value: net},
		utils.JSONOutput{Path: out.Gross, Value: gross},
		utils.JSONOutput{Path: out.Breakdown, Value: breakdown},
	)
	if err != nil {
		logging.LogError(logger, "failed to write aggregates", err,
			slog.String("net", out.Net),
			slog.String("gross", out.Gross),
			slog.String("breakdown", out.Breakdown))
		return err
	}

	logging.LogOperation(logger, "aggregates_written",
		slog.Int("records", len(records)),
		slog.Int("countries", len(summary.Net)),
		elapsed(start))

	fmt.Fprintf(cmd.OutOrStdout(), "aggregated %d records for %d countries\n", len(records), len(summary.Net))
	return nil
}

// totalsByName rekeys totals by display name. Two codes sharing a name is an
// error rather than a silent merge.
func totalsByName(t emissions.Totals) (emissions.Totals, error) {
	out := make(emissions.Totals, len(t))
	for code, v := range t {
		name := taxonomy.CountryName(code)
		if _, dup := out[name]; dup {
			return nil, fmt.Errorf("country name %q is shared by more than one code", name)
		}
		out[name] = v
	}
	return out, nil
}

func breakdownByName(b emissions.Breakdown) (emissions.Breakdown, error) {
	out := make(emissions.Breakdown, len(b))
	for code, sectors := range b {
		name := taxonomy.CountryName(code)
		if _, dup := out[name]; dup {
			return nil, fmt.Errorf("country name %q is shared by more than one code", name)
		}
		out[name] = sectors
	}
	return out, nil
}
