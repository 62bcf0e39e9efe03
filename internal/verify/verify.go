// Package verify compares a stored workbook against the expected fixtures.
package verify

import (
	"fmt"
	"strings"

	"tdgen/internal/domain"

	"github.com/xuri/excelize/v2"
)

// Compare returns every difference between expected and actual. Sheet names
// and order are checked first; cells are only compared for sheets present in
// both workbooks.
func Compare(expected, actual *domain.Workbook) []domain.Mismatch {
	var mismatches []domain.Mismatch

	wantNames := strings.Join(expected.SheetNames(), ", ")
	gotNames := strings.Join(actual.SheetNames(), ", ")
	if wantNames != gotNames {
		mismatches = append(mismatches, domain.Mismatch{
			Sheet:    "(workbook)",
			Expected: wantNames,
			Actual:   gotNames,
		})
	}

	for _, want := range expected.Sheets {
		got := actual.Sheet(want.Name)
		if got == nil {
			continue
		}
		mismatches = append(mismatches, compareSheet(want, *got)...)
	}
	return mismatches
}

func compareSheet(want, got domain.Sheet) []domain.Mismatch {
	var mismatches []domain.Mismatch

	mismatches = append(mismatches, compareRow(want.Name, 1, want.Headers, got.Headers)...)

	if len(want.Rows) != len(got.Rows) {
		mismatches = append(mismatches, domain.Mismatch{
			Sheet:    want.Name,
			Expected: fmt.Sprintf("%d data rows", len(want.Rows)),
			Actual:   fmt.Sprintf("%d data rows", len(got.Rows)),
		})
	}

	for i, row := range want.Rows {
		if i >= len(got.Rows) {
			break
		}
		mismatches = append(mismatches, compareRow(want.Name, i+2, row, got.Rows[i])...)
	}
	return mismatches
}

// compareRow compares one row cell by cell; rowNum is the 1-based sheet row
func compareRow(sheet string, rowNum int, want, got []string) []domain.Mismatch {
	var mismatches []domain.Mismatch

	width := len(want)
	if len(got) > width {
		width = len(got)
	}
	for col := 0; col < width; col++ {
		w, g := cellAt(want, col), cellAt(got, col)
		if w == g {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			cell = fmt.Sprintf("R%dC%d", rowNum, col+1)
		}
		mismatches = append(mismatches, domain.Mismatch{
			Sheet:    sheet,
			Cell:     cell,
			Expected: w,
			Actual:   g,
		})
	}
	return mismatches
}

func cellAt(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}
