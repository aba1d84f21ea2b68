// Package spreadsheet renders tabular exports as .xlsx workbooks.
package spreadsheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the generated workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet is a named table written as one worksheet. The header becomes the
// first, bold row.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]interface{}
}

// Write renders the sheets into a single workbook and writes it to w.
func Write(w io.Writer, sheets ...Sheet) (err error) {
	if len(sheets) == 0 {
		return errors.New("spreadsheet: at least one sheet is required")
	}

	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("spreadsheet: header style: %w", err)
	}

	defaultSheet := f.GetSheetName(0)
	for idx, sheet := range sheets {
		if idx == 0 {
			if err := f.SetSheetName(defaultSheet, sheet.Name); err != nil {
				return fmt.Errorf("spreadsheet: rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("spreadsheet: add sheet %q: %w", sheet.Name, err)
		}

		if err := writeSheet(f, sheet, bold); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("spreadsheet: write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet Sheet, headerStyle int) error {
	row := 1
	if len(sheet.Header) > 0 {
		header := make([]interface{}, len(sheet.Header))
		for i, title := range sheet.Header {
			header[i] = title
		}
		if err := setRow(f, sheet.Name, row, header); err != nil {
			return err
		}
		if err := f.SetRowStyle(sheet.Name, row, row, headerStyle); err != nil {
			return fmt.Errorf("spreadsheet: style header: %w", err)
		}
		row++
	}

	for _, values := range sheet.Rows {
		if err := setRow(f, sheet.Name, row, values); err != nil {
			return err
		}
		row++
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("spreadsheet: cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("spreadsheet: write row %d of %q: %w", row, sheet, err)
	}
	return nil
}
