package report

import (
	"fmt"

	"github.com/at-ishikawa/gsmic/internal/scoring"
	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Accuracy"

type XLSXWriter struct{}

func (XLSXWriter) Write(path string, r scoring.Report) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName(f.GetSheetName(0), xlsxSheet); err != nil {
		return fmt.Errorf("excelize.SetSheetName > %w", err)
	}
	for rowIdx, row := range [][]string{Header, Row(r)} {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx+1)
		if err != nil {
			return fmt.Errorf("excelize.CoordinatesToCellName > %w", err)
		}
		values := make([]interface{}, len(row))
		for i, v := range row {
			values[i] = v
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &values); err != nil {
			return fmt.Errorf("excelize.SetSheetRow > %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("excelize.SaveAs(%s) > %w", path, err)
	}
	return nil
}
