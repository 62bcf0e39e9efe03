package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tdgen/internal/domain"
)

// JSONStorage stores a workbook as an indented JSON document
type JSONStorage struct {
	path string
}

// NewJSONStorage returns a Storage that reads/writes the given JSON path
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the JSON file path
func (s *JSONStorage) Path() string {
	return s.path
}

// Save writes the workbook to the JSON file, creating its directory if needed.
func (s *JSONStorage) Save(wb *domain.Workbook) error {
	data, err := json.MarshalIndent(wb, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal workbook: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Load reads a workbook from the JSON file.
func (s *JSONStorage) Load() (*domain.Workbook, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read workbook file: %w", err)
	}
	var wb domain.Workbook
	if err := json.Unmarshal(data, &wb); err != nil {
		return nil, fmt.Errorf("parse workbook: %w", err)
	}
	return &wb, nil
}
