// Package export renders the currently loaded report page to local Excel
// and PDF files. Server-side exports cover the full query; these cover
// exactly what is on screen, for quick offline handoff.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bekendz87/droh-admin/internal/report"
)

// Table is a display-ready snapshot of one report page.
type Table struct {
	GeneratedAt time.Time
	Title       string
	Headers     []string
	Rows        [][]string
	Summary     []report.Stat
}

const sheetName = "Report"

// WriteExcel writes the table as an .xlsx workbook.
func WriteExcel(path string, tbl Table) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	row := 1
	if err := setRow(f, row, []string{tbl.Title}); err != nil {
		return err
	}
	row++
	if err := setRow(f, row, []string{"Generated " + tbl.GeneratedAt.Format("2006-01-02 15:04")}); err != nil {
		return err
	}
	row += 2

	headerRow := row
	if err := setRow(f, row, tbl.Headers); err != nil {
		return err
	}
	row++

	for _, cells := range tbl.Rows {
		if err := setRow(f, row, cells); err != nil {
			return err
		}
		row++
	}

	row++
	for _, stat := range tbl.Summary {
		if err := setRow(f, row, []string{stat.Label, stat.Value}); err != nil {
			return err
		}
		row++
	}

	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		start, _ := excelize.CoordinatesToCellName(1, headerRow)
		end, _ := excelize.CoordinatesToCellName(len(tbl.Headers), headerRow)
		_ = f.SetCellStyle(sheetName, start, end, style)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

func setRow(f *excelize.File, row int, cells []string) error {
	for col, value := range cells {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("bad cell coordinate: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}
