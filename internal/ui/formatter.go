package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"tdgen/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to stdout
func NewFormatter() *Formatter {
	return &Formatter{out: color.Output}
}

// NewFormatterTo creates a Formatter writing to w
func NewFormatterTo(w io.Writer) *Formatter {
	return &Formatter{out: w}
}

// PrintGenerated prints the confirmation after a workbook was written
func (f *Formatter) PrintGenerated(kind, path string, sheets []string) {
	color.New(color.FgGreen).Fprintf(f.out, "%s test data file created successfully: %s\n", kind, path)
	fmt.Fprintf(f.out, "Sheets created: %s\n", strings.Join(sheets, ", "))
}

// PrintWorkbook prints every sheet as an aligned table
func (f *Formatter) PrintWorkbook(wb *domain.Workbook) {
	title := color.New(color.FgCyan, color.Bold)

	for i, sheet := range wb.Sheets {
		if i > 0 {
			fmt.Fprintln(f.out)
		}
		title.Fprintf(f.out, "%s (%d rows)\n", sheet.Name, len(sheet.Rows))

		w := tabwriter.NewWriter(f.out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, strings.Join(sheet.Headers, "\t"))
		for _, row := range sheet.Rows {
			fmt.Fprintln(w, strings.Join(displayRow(row), "\t"))
		}
		w.Flush()
	}
}

// PrintNoMatches reports a filter that left no test cases
func (f *Formatter) PrintNoMatches() {
	color.New(color.FgYellow).Fprintln(f.out, "No test cases found")
}

// PrintVerification prints the outcome of comparing a stored workbook to the fixtures
func (f *Formatter) PrintVerification(path string, mismatches []domain.Mismatch) {
	if len(mismatches) == 0 {
		color.New(color.FgGreen).Fprintf(f.out, "✓ %s matches the built-in fixtures\n", path)
		return
	}

	color.New(color.FgRed).Fprintf(f.out, "✗ %s differs from the built-in fixtures (%d difference(s))\n", path, len(mismatches))
	w := tabwriter.NewWriter(f.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SHEET\tCELL\tEXPECTED\tACTUAL")
	for _, m := range mismatches {
		cell := m.Cell
		if cell == "" {
			cell = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%q\t%q\n", m.Sheet, cell, m.Expected, m.Actual)
	}
	w.Flush()
}

// PrintSeeding announces a seed run before the progress bar starts
func (f *Formatter) PrintSeeding(rows int, addr, database string) {
	color.New(color.FgCyan).Fprintf(f.out, "Seeding %d rows into %s/%s\n", rows, addr, database)
}

// PrintSeeded prints one line per seeded table
func (f *Formatter) PrintSeeded(database string, results []domain.SeedResult) {
	for _, r := range results {
		color.New(color.FgGreen).Fprintf(f.out, "✓ %s -> %s.%s (%d rows)\n", r.Sheet, database, r.Table, r.Rows)
	}
}

// displayRow marks empty cells so blank credentials stay visible in the listing
func displayRow(row []string) []string {
	out := make([]string, len(row))
	for i, v := range row {
		if v == "" {
			v = "(empty)"
		}
		out[i] = v
	}
	return out
}
