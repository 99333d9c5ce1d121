package main

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/gsmic/internal/cli"
	"github.com/at-ishikawa/gsmic/internal/config"
	"github.com/at-ishikawa/gsmic/internal/database"
	"github.com/at-ishikawa/gsmic/internal/report"
	"github.com/spf13/cobra"
)

func newReportsCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "reports",
		Short: "Commands for archived accuracy reports",
	}
	command.AddCommand(newReportsListCommand())
	return command
}

func newReportsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accuracy reports archived in the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cfg.Reports.Database.Enabled {
				return fmt.Errorf("reports.database.enabled must be true to list archived reports")
			}

			archive, closeDB, err := openArchive(cmd.Context(), cfg.Reports.Database)
			if err != nil {
				return err
			}
			defer closeDB()

			return cli.RunListReports(cmd.Context(), cmd.OutOrStdout(), archive)
		},
	}
}

// openArchive connects to the database and creates the archive table on first use
func openArchive(ctx context.Context, cfg config.DatabaseConfig) (*report.DBArchive, func(), error) {
	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	closeDB := func() {
		_ = db.Close()
	}

	archive := report.NewDBArchive(db)
	if err := archive.EnsureSchema(ctx); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("failed to prepare the report archive: %w", err)
	}
	return archive, closeDB, nil
}
