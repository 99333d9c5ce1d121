package report

import (
	"fmt"
	"io"

	"github.com/at-ishikawa/gsmic/internal/scoring"
	"github.com/fatih/color"
)

// PrintSummary echoes the report values in a human-readable form
func PrintSummary(w io.Writer, inputPath string, r scoring.Report) {
	bold := color.New(color.Bold)
	_, _ = bold.Fprintf(w, "Accuracy for %s:\n", inputPath)
	_, _ = fmt.Fprintf(w, "  Original Accuracy: %s%%\n", formatPercentage(r.OriginalAccuracy))
	_, _ = fmt.Fprintf(w, "  New Accuracy: %s%%\n", formatPercentage(r.NewAccuracy))
	_, _ = fmt.Fprintf(w, "  Original Irrelevant Accuracy: %s%%\n", formatPercentage(r.OriginalIrrelevantAccuracy))
	_, _ = fmt.Fprintf(w, "  New Irrelevant Accuracy: %s%%\n", formatPercentage(r.NewIrrelevantAccuracy))
}
