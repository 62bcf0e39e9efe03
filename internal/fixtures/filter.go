package fixtures

import (
	"path/filepath"
	"strings"

	"tdgen/internal/domain"
)

// Filter selects test case rows by their TestCase value
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByTestCase keeps the rows whose first column matches pattern.
// Supports wildcards like "Empty*" or "*Login*"; a pattern without
// wildcards matches as a substring. Sheets keep their headers even when no
// row matches.
func (f *Filter) FilterByTestCase(wb *domain.Workbook, pattern string) *domain.Workbook {
	if pattern == "" {
		return wb
	}

	out := &domain.Workbook{Sheets: make([]domain.Sheet, 0, len(wb.Sheets))}
	for _, sheet := range wb.Sheets {
		filtered := domain.Sheet{Name: sheet.Name, Headers: sheet.Headers, Rows: [][]string{}}
		for _, row := range sheet.Rows {
			if len(row) > 0 && f.Match(row[0], pattern) {
				filtered.Rows = append(filtered.Rows, row)
			}
		}
		out.Sheets = append(out.Sheets, filtered)
	}
	return out
}

// Match reports whether name matches the wildcard pattern
func (f *Filter) Match(name, pattern string) bool {
	if pattern == "" {
		return true
	}

	// filepath.Match supports * and ? wildcards
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// Looser match for patterns like "*Login*": every literal part must appear
	hasPart := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		if strings.Contains(part, "?") || !strings.Contains(name, part) {
			return false
		}
		hasPart = true
	}
	return hasPart
}
