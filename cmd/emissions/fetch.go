package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"carbontradle.org/internal/climatetrace"
	"carbontradle.org/internal/emissions"
	"carbontradle.org/internal/logging"
	"carbontradle.org/internal/utils"
)

type fetchOptions struct {
	baseURL    string
	year       int
	batchSize  int
	countries  string
	sectors    string
	subsectors string
	timeout    time.Duration
	output     string
	strict     bool
}

func newFetchCmd(cc *cliContext) *cobra.Command {
	opts := &fetchOptions{}

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Retrieve emissions records and write them as a flat JSON list",
		Long: "Requests emissions from the Climate TRACE API in country batches, " +
			"simplifies every response into flat records and writes them to the simplified output file. " +
			"A failed batch is logged and skipped.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyFetchFlags(cmd, cc, opts)
			return runFetch(cmd, cc, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.baseURL, "base-url", "", "emissions API base URL")
	f.IntVar(&opts.year, "year", 0, "inventory year")
	f.IntVar(&opts.batchSize, "batch-size", 0, "countries per request")
	f.StringVar(&opts.countries, "countries", "", "comma separated ISO alpha-3 codes")
	f.StringVar(&opts.sectors, "sectors", "", "comma separated sectors")
	f.StringVar(&opts.subsectors, "subsectors", "", "comma separated subsectors")
	f.DurationVar(&opts.timeout, "timeout", 0, "per-request timeout")
	f.StringVarP(&opts.output, "output", "o", "", "simplified records output file")
	f.BoolVar(&opts.strict, "strict", false, "exit non-zero when any batch fails")
	return cmd
}

// applyFetchFlags overrides pipeline settings with the flags that were set.
func applyFetchFlags(cmd *cobra.Command, cc *cliContext, opts *fetchOptions) {
	f := cmd.Flags()
	p := &cc.pipeline
	if f.Changed("base-url") {
		p.BaseURL = opts.baseURL
	}
	if f.Changed("year") {
		p.Year = opts.year
	}
	if f.Changed("batch-size") {
		p.BatchSize = opts.batchSize
	}
	if f.Changed("countries") {
		p.Countries = utils.NormalizeCountryCodes(utils.ParseList(opts.countries))
	}
	if f.Changed("sectors") {
		p.Sectors = utils.ParseList(opts.sectors)
	}
	if f.Changed("subsectors") {
		p.Subsectors = utils.ParseList(opts.subsectors)
	}
	if f.Changed("timeout") {
		p.Timeout = opts.timeout
	}
	if f.Changed("output") {
		p.Output.Simplified = opts.output
	}
}

func runFetch(cmd *cobra.Command, cc *cliContext, opts *fetchOptions) error {
	logger := cc.component("fetch")
	p := cc.pipeline

	if err := p.Validate(); err != nil {
		logging.LogError(logger, "invalid fetch settings", err)
		return err
	}

	client := climatetrace.NewClient(climatetrace.Config{
		BaseURL: p.BaseURL,
		Token:   p.Token(),
		Timeout: p.Timeout,
	}, cc.logger, cc.metrics)

	start := time.Now()
	result, err := client.FetchEmissions(cmd.Context(), climatetrace.Query{
		Countries:  p.Countries,
		Sectors:    p.Sectors,
		Subsectors: p.Subsectors,
		Year:       p.Year,
		BatchSize:  p.BatchSize,
	})
	if err != nil {
		logging.LogError(logger, "fetch interrupted", err,
			slog.Int("chunks_done", len(result.Chunks)))
		return err
	}

	records := emissions.Simplify(result.Units)
	cc.metrics.ObserveSimplified(len(records))

	if err := emissions.SaveJSON(p.Output.Simplified, records); err != nil {
		logging.LogError(logger, "failed to write simplified records", err,
			slog.String("path", p.Output.Simplified))
		return err
	}

	failed := result.Failed()
	for _, c := range failed {
		logger.Warn("chunk missing from output",
			slog.Int("chunk", c.Index+1),
			slog.String("countries", strings.Join(c.Countries, ",")),
			slog.String("error", c.Err.Error()))
	}

	logging.LogOperation(logger, "simplified_records_written",
		slog.String("path", p.Output.Simplified),
		slog.Int("records", len(records)),
		slog.Int("failed_chunks", len(failed)),
		elapsed(start))

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records to %s (%d of %d chunks failed)\n",
		len(records), p.Output.Simplified, len(failed), len(result.Chunks))

	if opts.strict && len(failed) > 0 {
		return fmt.Errorf("%w: %d of %d", errPartialFetch, len(failed), len(result.Chunks))
	}
	return nil
}
