package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"tdgen/internal/domain"
)

// CSVStorage stores each sheet as <SheetName>.csv inside one directory,
// header line first
type CSVStorage struct {
	dir    string
	sheets []string
}

// NewCSVStorage returns a Storage for dir. sheets fixes which files Load
// reads and in which order.
func NewCSVStorage(dir string, sheets []string) *CSVStorage {
	return &CSVStorage{dir: dir, sheets: sheets}
}

// Path returns the directory holding the CSV files
func (s *CSVStorage) Path() string {
	return s.dir
}

// FileName returns the CSV file path for a sheet
func (s *CSVStorage) FileName(sheet string) string {
	return filepath.Join(s.dir, sheet+".csv")
}

// Save writes one CSV file per sheet, overwriting existing files.
func (s *CSVStorage) Save(wb *domain.Workbook) error {
	if len(wb.Sheets) == 0 {
		return fmt.Errorf("workbook has no sheets")
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, sheet := range wb.Sheets {
		if err := s.writeSheet(sheet); err != nil {
			return fmt.Errorf("write sheet %s: %w", sheet.Name, err)
		}
	}
	return nil
}

func (s *CSVStorage) writeSheet(sheet domain.Sheet) error {
	file, err := os.Create(s.FileName(sheet.Name))
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(sheet.Headers); err != nil {
		return err
	}
	if err := w.WriteAll(sheet.Rows); err != nil {
		return err
	}
	return file.Close()
}

// Load reads the configured sheets in order. Short rows are padded to the
// header width.
func (s *CSVStorage) Load() (*domain.Workbook, error) {
	wb := &domain.Workbook{}
	for _, name := range s.sheets {
		sheet, err := s.readSheet(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", name, err)
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}
	return wb, nil
}

func (s *CSVStorage) readSheet(name string) (domain.Sheet, error) {
	file, err := os.Open(s.FileName(name))
	if err != nil {
		return domain.Sheet{}, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return domain.Sheet{}, err
	}

	sheet := domain.Sheet{Name: name, Headers: []string{}, Rows: [][]string{}}
	if len(records) > 0 {
		sheet.Headers = records[0]
		for _, row := range records[1:] {
			sheet.Rows = append(sheet.Rows, pad(row, len(sheet.Headers)))
		}
	}
	return sheet, nil
}
