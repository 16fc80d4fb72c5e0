package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"carbontradle.org/internal/climatetrace"
	"carbontradle.org/internal/logging"
	"carbontradle.org/internal/taxonomy"
)

func newDefinitionsCmd(cc *cliContext) *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "definitions",
		Short: "Report API sectors and subsectors missing from the built-in taxonomy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("base-url") {
				cc.pipeline.BaseURL = baseURL
			}
			return runDefinitions(cmd, cc)
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "emissions API base URL")
	return cmd
}

func runDefinitions(cmd *cobra.Command, cc *cliContext) error {
	logger := cc.component("definitions")
	p := cc.pipeline

	client := climatetrace.NewClient(climatetrace.Config{
		BaseURL: p.BaseURL,
		Token:   p.Token(),
		Timeout: p.Timeout,
	}, cc.logger, cc.metrics)

	sectors, err := client.Definitions(cmd.Context(), climatetrace.SectorDefinitions)
	if err != nil {
		logging.LogError(logger, "failed to fetch sector definitions", err)
		return err
	}
	subsectors, err := client.Definitions(cmd.Context(), climatetrace.SubsectorDefinitions)
	if err != nil {
		logging.LogError(logger, "failed to fetch subsector definitions", err)
		return err
	}

	var unknownSectors []string
	for _, s := range sectors {
		if !taxonomy.IsSector(s) {
			unknownSectors = append(unknownSectors, s)
		}
	}
	unmapped := taxonomy.Unmapped(subsectors)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%d sectors, %d subsectors from the API\n", len(sectors), len(subsectors))
	for _, s := range unknownSectors {
		fmt.Fprintf(w, "unknown sector: %s\n", s)
	}
	for _, s := range unmapped {
		fmt.Fprintf(w, "unmapped subsector: %s\n", s)
	}

	logging.LogOperation(logger, "definitions_checked",
		slog.Int("sectors", len(sectors)),
		slog.Int("subsectors", len(subsectors)),
		slog.Int("unknown_sectors", len(unknownSectors)),
		slog.Int("unmapped_subsectors", len(unmapped)))
	return nil
}
