package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"carbontradle.org/internal/appconf"
	"carbontradle.org/internal/logging"
	"carbontradle.org/internal/metrics"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath  string
	logLevel    string
	metricsFile string
}

// cliContext carries what PersistentPreRunE initialized to the subcommands.
type cliContext struct {
	pipeline appconf.Pipeline
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cc := &cliContext{}

	cmd := &cobra.Command{
		Use:   "emissions",
		Short: "Fetch, aggregate and reshape Climate TRACE emissions data",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cc.init(cmd, opts)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return cc.writeMetrics(opts.metricsFile)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "pipeline run file (YAML); defaults apply when empty")
	pf.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this file after the run")

	cmd.AddCommand(
		newFetchCmd(cc),
		newAggregateCmd(cc),
		newCleanCmd(cc),
		newTreemapCmd(cc),
		newDefinitionsCmd(cc),
	)
	return cmd
}

func (cc *cliContext) init(cmd *cobra.Command, opts *rootOptions) error {
	cc.logger = logging.NewStructuredLogger(cmd.ErrOrStderr(), logging.ParseLevel(opts.logLevel))
	cc.metrics = metrics.New()

	if opts.configPath == "" {
		cc.pipeline = appconf.DefaultPipeline()
		return nil
	}

	p, err := appconf.LoadPipeline(opts.configPath)
	if err != nil {
		logging.LogError(cc.logger, "failed to load pipeline config", err,
			slog.String("path", opts.configPath))
		return err
	}
	cc.pipeline = p
	return nil
}

// writeMetrics dumps the run's metrics in the text exposition format for a
// node exporter textfile collector.
func (cc *cliContext) writeMetrics(path string) error {
	if path == "" || cc.metrics == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, cc.metrics.Registry); err != nil {
		logging.LogError(cc.logger, "failed to write metrics", err, slog.String("path", path))
		return fmt.Errorf("writing metrics: %w", err)
	}
	return nil
}

// component returns the run logger tagged for one subcommand.
func (cc *cliContext) component(name string) *slog.Logger {
	return logging.ForComponent(cc.logger, "cli_"+name)
}

// errPartialFetch is returned by fetch --strict when any chunk failed.
var errPartialFetch = errors.New("some emissions chunks could not be retrieved")

// elapsed is a LogOperation duration attr.
func elapsed(start time.Time) slog.Attr {
	return slog.Duration("duration", time.Since(start))
}
