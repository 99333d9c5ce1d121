// Package report writes accuracy reports for scored response files.
package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/at-ishikawa/gsmic/internal/scoring"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Header is the fixed column order of an accuracy report
var Header = []string{
	"File",
	"Original Accuracy (%)",
	"New Accuracy (%)",
	"Original Irrelevant Accuracy (%)",
	"New Irrelevant Accuracy (%)",
}

// Writer writes a single-row accuracy report, replacing any existing file at path.
type Writer interface {
	Write(path string, r scoring.Report) error
}

func NewWriter(format string) (Writer, error) {
	switch format {
	case FormatCSV, "":
		return CSVWriter{}, nil
	case FormatXLSX:
		return XLSXWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
}

// AccuracyPath derives the report path from the scored file: same directory and base name,
// suffixed with "_accuracy_results".
func AccuracyPath(inputPath, format string) string {
	if format == "" {
		format = FormatCSV
	}
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return base + "_accuracy_results." + format
}

func formatPercentage(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

// Row returns the report's values in Header order
func Row(r scoring.Report) []string {
	return []string{
		r.File,
		formatPercentage(r.OriginalAccuracy),
		formatPercentage(r.NewAccuracy),
		formatPercentage(r.OriginalIrrelevantAccuracy),
		formatPercentage(r.NewIrrelevantAccuracy),
	}
}
