package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"carbontradle.org/internal/dump"
	"carbontradle.org/internal/logging"
)

const (
	defaultDumpFile    = "emission_data_all.json"
	defaultCleanedFile = "filtered_emission_data_all.json"
)

type cleanOptions struct {
	input  string
	output string
}

func newCleanCmd(cc *cliContext) *cobra.Command {
	opts := &cleanOptions{}

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Drop emission entries with no assets and no emissions from a raw dump",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, cc, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", defaultDumpFile, "raw dump file")
	f.StringVarP(&opts.output, "output", "o", defaultCleanedFile, "cleaned dump output file")
	return cmd
}

func runClean(cmd *cobra.Command, cc *cliContext, opts *cleanOptions) error {
	logger := cc.component("clean")
	start := time.Now()

	d, err := dump.Load(opts.input)
	if err != nil {
		logging.LogError(logger, "failed to load dump", err, slog.String("path", opts.input))
		return err
	}

	cleaned, stats := dump.CleanWithStats(d)

	if err := dump.Save(opts.output, cleaned); err != nil {
		logging.LogError(logger, "failed to write cleaned dump", err, slog.String("path", opts.output))
		return err
	}

	logging.LogOperation(logger, "dump_cleaned",
		slog.String("input", opts.input),
		slog.String("output", opts.output),
		slog.Int("lists", stats.Lists),
		slog.Int("entries", stats.Entries),
		slog.Int("removed", stats.Removed),
		elapsed(start))

	fmt.Fprintf(cmd.OutOrStdout(), "removed %d of %d entries across %d lists\n",
		stats.Removed, stats.Entries, stats.Lists)
	return nil
}
