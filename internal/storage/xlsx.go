package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"tdgen/internal/domain"

	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet excelize.NewFile starts with
const defaultSheet = "Sheet1"

// Column widths are clamped so long URLs stay readable without
// stretching the sheet.
const (
	minColumnWidth = 10
	maxColumnWidth = 60
)

// XLSXStorage stores a workbook as an Excel file, one sheet per table
type XLSXStorage struct {
	path string
}

// NewXLSXStorage returns a Storage that reads/writes the given .xlsx path
func NewXLSXStorage(path string) *XLSXStorage {
	return &XLSXStorage{path: path}
}

// Path returns the workbook file path
func (s *XLSXStorage) Path() string {
	return s.path
}

// Save writes every sheet with its header row in row 1 and data from row 2.
// No index column is written. An existing file is overwritten.
func (s *XLSXStorage) Save(wb *domain.Workbook) error {
	if len(wb.Sheets) == 0 {
		return fmt.Errorf("workbook has no sheets")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for i, sheet := range wb.Sheets {
		if i == 0 {
			// Reuse the default sheet so the workbook holds only our sheets
			if err := f.SetSheetName(defaultSheet, sheet.Name); err != nil {
				return fmt.Errorf("rename sheet %s: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("create sheet %s: %w", sheet.Name, err)
		}

		if err := writeSheet(f, sheet, headerStyle); err != nil {
			return fmt.Errorf("write sheet %s: %w", sheet.Name, err)
		}
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// writeSheet writes the header row and data rows of a single sheet
func writeSheet(f *excelize.File, sheet domain.Sheet, headerStyle int) error {
	header := toRow(sheet.Headers)
	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return err
	}
	if len(sheet.Headers) > 0 {
		last, err := excelize.CoordinatesToCellName(len(sheet.Headers), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet.Name, "A1", last, headerStyle); err != nil {
			return err
		}
	}

	for i, values := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := toRow(values)
		if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
			return err
		}
	}

	for col, width := range columnWidths(sheet) {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet.Name, name, name, width); err != nil {
			return err
		}
	}
	return nil
}

// Load reads every sheet in workbook order. The first row of each sheet is
// taken as the header; data rows are padded to the header width because
// excelize drops trailing empty cells.
func (s *XLSXStorage) Load() (*domain.Workbook, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	wb := &domain.Workbook{}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", name, err)
		}

		sheet := domain.Sheet{Name: name, Headers: []string{}, Rows: [][]string{}}
		if len(rows) > 0 {
			sheet.Headers = rows[0]
			for _, row := range rows[1:] {
				sheet.Rows = append(sheet.Rows, pad(row, len(sheet.Headers)))
			}
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}
	return wb, nil
}

func toRow(values []string) []interface{} {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}

func pad(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}

func columnWidths(sheet domain.Sheet) []float64 {
	widths := make([]float64, len(sheet.Headers))
	measure := func(col int, v string) {
		if col >= len(widths) {
			return
		}
		if w := float64(utf8.RuneCountInString(v) + 2); w > widths[col] {
			widths[col] = w
		}
	}
	for i, h := range sheet.Headers {
		measure(i, h)
	}
	for _, row := range sheet.Rows {
		for i, v := range row {
			measure(i, v)
		}
	}
	for i, w := range widths {
		switch {
		case w < minColumnWidth:
			widths[i] = minColumnWidth
		case w > maxColumnWidth:
			widths[i] = maxColumnWidth
		}
	}
	return widths
}
