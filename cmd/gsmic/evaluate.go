package main

import (
	"fmt"

	"github.com/at-ishikawa/gsmic/internal/cli"
	"github.com/at-ishikawa/gsmic/internal/report"
	"github.com/spf13/cobra"
)

func newEvaluateCommand() *cobra.Command {
	var format string

	command := &cobra.Command{
		Use:   "evaluate [response files...]",
		Short: "Compute accuracy reports from saved model responses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				cfg.Reports.Format = format
			}

			var archive report.Archive
			if cfg.Reports.Database.Enabled {
				dbArchive, closeDB, err := openArchive(cmd.Context(), cfg.Reports.Database)
				if err != nil {
					return err
				}
				defer closeDB()
				archive = dbArchive
			}

			if _, err := cli.RunEvaluate(cmd.Context(), cmd.OutOrStdout(), args, cfg.Reports.Format, archive); err != nil {
				return fmt.Errorf("cli.RunEvaluate > %w", err)
			}
			return nil
		},
	}

	command.Flags().StringVar(&format, "format", report.FormatCSV, "Report format (csv or xlsx)")

	return command
}
