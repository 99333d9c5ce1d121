package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/at-ishikawa/gsmic/internal/scoring"
)

type CSVWriter struct{}

func (CSVWriter) Write(path string, r scoring.Report) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	w := csv.NewWriter(file)
	if err := w.WriteAll([][]string{Header, Row(r)}); err != nil {
		return fmt.Errorf("csv.WriteAll > %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("file.Close > %w", err)
	}
	return nil
}
