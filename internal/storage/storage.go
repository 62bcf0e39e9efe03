package storage

import (
	"fmt"

	"tdgen/internal/config"
	"tdgen/internal/domain"
	"tdgen/internal/fixtures"
)

// Storage persists and loads fixture workbooks
type Storage interface {
	Save(wb *domain.Workbook) error
	Load() (*domain.Workbook, error)
	// Path returns the file (or, for CSV, the directory) the storage reads and writes
	Path() string
}

// New returns the Storage matching the configured output format
func New(cfg *config.Config) (Storage, error) {
	switch cfg.Format {
	case config.FormatXLSX:
		return NewXLSXStorage(cfg.OutputPath()), nil
	case config.FormatCSV:
		return NewCSVStorage(cfg.OutputDirPath(), []string{fixtures.LoginSheet, fixtures.AccountSheet}), nil
	case config.FormatJSON:
		return NewJSONStorage(cfg.OutputPath()), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", cfg.Format)
	}
}
