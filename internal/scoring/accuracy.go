package scoring

import (
	"errors"
	"fmt"

	"github.com/at-ishikawa/gsmic/internal/results"
)

var ErrNoRecords = errors.New("no response records")

// Report is the accuracy of one response file
type Report struct {
	File string

	OriginalAccuracy           float64
	NewAccuracy                float64
	OriginalIrrelevantAccuracy float64
	NewIrrelevantAccuracy      float64

	Total                     int
	IrrelevantTotal           int
	OriginalCorrect           int
	NewCorrect                int
	OriginalIrrelevantCorrect int
	NewIrrelevantCorrect      int
}

// Evaluate scores every record against its ground-truth answer.
// Accuracies are percentages; the irrelevant-context accuracies are 0 when no record has irrelevant context.
func Evaluate(file string, records []results.Record) (Report, error) {
	if len(records) == 0 {
		return Report{}, fmt.Errorf("%s: %w", file, ErrNoRecords)
	}

	report := Report{
		File:  file,
		Total: len(records),
	}
	for i, record := range records {
		expected, err := record.Answer.Int()
		if err != nil {
			return Report{}, fmt.Errorf("record %d (id %d): %w", i, record.ID, err)
		}

		irrelevant := HasIrrelevantContext(record.Labels)
		if irrelevant {
			report.IrrelevantTotal++
		}

		if isCorrect(extractResponse(record.OriginalResponse), expected) {
			report.OriginalCorrect++
			if irrelevant {
				report.OriginalIrrelevantCorrect++
			}
		}
		if isCorrect(extractResponse(record.NewResponse), expected) {
			report.NewCorrect++
			if irrelevant {
				report.NewIrrelevantCorrect++
			}
		}
	}

	report.OriginalAccuracy = percentage(report.OriginalCorrect, report.Total)
	report.NewAccuracy = percentage(report.NewCorrect, report.Total)
	report.OriginalIrrelevantAccuracy = percentage(report.OriginalIrrelevantCorrect, report.IrrelevantTotal)
	report.NewIrrelevantAccuracy = percentage(report.NewIrrelevantCorrect, report.IrrelevantTotal)
	return report, nil
}

func isCorrect(got *int, expected int) bool {
	return got != nil && *got == expected
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
