package pr3import

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// failureReport accumulates failed source rows into a workbook shaped like
// the source sheet: the original header (gray fill) on row one, then one
// row per failure with the original cells plus a red error-detail cell.
type failureReport struct {
	file        *excelize.File
	sheet       string
	headerStyle int
	errorStyle  int
	nextRow     int
}

func newFailureReport(sheetName string, header []string) (*failureReport, error) {
	file := excelize.NewFile()
	if err := file.SetSheetName(file.GetSheetName(0), sheetName); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to name report sheet: %w", err)
	}

	headerStyle, err := file.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
	})
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	errorStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: errorFontColor},
	})
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to create error style: %w", err)
	}

	report := &failureReport{
		file:        file,
		sheet:       sheetName,
		headerStyle: headerStyle,
		errorStyle:  errorStyle,
		nextRow:     1,
	}
	if err := report.writeHeader(header); err != nil {
		_ = file.Close()
		return nil, err
	}
	return report, nil
}

func (r *failureReport) writeHeader(header []string) error {
	if err := r.writeCells(1, header); err != nil {
		return err
	}
	if len(header) > 0 {
		first, _ := excelize.CoordinatesToCellName(1, 1)
		last, _ := excelize.CoordinatesToCellName(len(header), 1)
		if err := r.file.SetCellStyle(r.sheet, first, last, r.headerStyle); err != nil {
			return fmt.Errorf("failed to style report header: %w", err)
		}
	}
	r.nextRow = 2
	return nil
}

// appendFailedRow copies the source cells to the next report row and adds
// the error detail in an extra trailing cell.
func (r *failureReport) appendFailedRow(cells []string, detail string) error {
	if err := r.writeCells(r.nextRow, cells); err != nil {
		return err
	}

	detailCell, err := excelize.CoordinatesToCellName(len(cells)+1, r.nextRow)
	if err != nil {
		return fmt.Errorf("failed to locate detail cell: %w", err)
	}
	if err := r.file.SetCellValue(r.sheet, detailCell, detail); err != nil {
		return fmt.Errorf("failed to write error detail: %w", err)
	}
	if err := r.file.SetCellStyle(r.sheet, detailCell, detailCell, r.errorStyle); err != nil {
		return fmt.Errorf("failed to style error detail: %w", err)
	}

	r.nextRow++
	return nil
}

func (r *failureReport) writeCells(rowIndex int, cells []string) error {
	for colIndex, value := range cells {
		cell, err := excelize.CoordinatesToCellName(colIndex+1, rowIndex)
		if err != nil {
			return fmt.Errorf("failed to locate report cell: %w", err)
		}
		if err := r.file.SetCellValue(r.sheet, cell, value); err != nil {
			return fmt.Errorf("failed to write report cell: %w", err)
		}
	}
	return nil
}

// failedRows is the number of failure rows appended so far, header excluded.
func (r *failureReport) failedRows() int {
	return r.nextRow - 2
}

func (r *failureReport) bytes() ([]byte, error) {
	buf, err := r.file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to finalize failure report: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *failureReport) close() {
	_ = r.file.Close()
}
