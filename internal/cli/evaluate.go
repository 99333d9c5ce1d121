package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/at-ishikawa/gsmic/internal/report"
	"github.com/at-ishikawa/gsmic/internal/results"
	"github.com/at-ishikawa/gsmic/internal/scoring"
)

// RunEvaluate scores each response file on its own and writes one report next to it.
// The archive is optional and receives every report in addition to the file.
func RunEvaluate(
	ctx context.Context,
	stdout io.Writer,
	responseFiles []string,
	format string,
	archive report.Archive,
) ([]scoring.Report, error) {
	writer, err := report.NewWriter(format)
	if err != nil {
		return nil, err
	}

	reports := make([]scoring.Report, 0, len(responseFiles))
	for _, responseFile := range responseFiles {
		records, err := results.Load(responseFile)
		if err != nil {
			return reports, fmt.Errorf("failed to load responses: %w", err)
		}

		r, err := scoring.Evaluate(filepath.Base(responseFile), records)
		if err != nil {
			return reports, fmt.Errorf("failed to evaluate %s: %w", responseFile, err)
		}

		reportPath := report.AccuracyPath(responseFile, format)
		if err := writer.Write(reportPath, r); err != nil {
			return reports, fmt.Errorf("failed to write report: %w", err)
		}
		slog.Default().Debug("accuracy report written",
			"file", responseFile,
			"report", reportPath,
			"records", r.Total,
			"irrelevantRecords", r.IrrelevantTotal)

		if archive != nil {
			if err := archive.Save(ctx, r); err != nil {
				return reports, fmt.Errorf("failed to archive report: %w", err)
			}
		}

		report.PrintSummary(stdout, responseFile, r)
		reports = append(reports, r)
	}
	return reports, nil
}

// RunListReports prints every archived report, oldest first
func RunListReports(ctx context.Context, stdout io.Writer, archive report.Archive) error {
	archived, err := archive.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load archived reports: %w", err)
	}
	if len(archived) == 0 {
		_, _ = fmt.Fprintln(stdout, "No archived reports found.")
		return nil
	}

	_, _ = fmt.Fprintf(stdout, "%-20s  %-30s  %8s  %8s  %8s  %8s  %7s\n",
		"Created At", "File", "Original", "New", "Orig Irr", "New Irr", "Records")
	for _, a := range archived {
		_, _ = fmt.Fprintf(stdout, "%-20s  %-30s  %8.2f  %8.2f  %8.2f  %8.2f  %7d\n",
			a.CreatedAt.Format("2006-01-02 15:04:05"),
			a.File,
			a.OriginalAccuracy,
			a.NewAccuracy,
			a.OriginalIrrelevantAccuracy,
			a.NewIrrelevantAccuracy,
			a.RecordCount)
	}
	return nil
}
