package domain

// Mismatch describes a difference between an expected and a stored workbook
type Mismatch struct {
	Sheet    string // Sheet name
	Cell     string // A1-style cell reference, empty for sheet-level differences
	Expected string
	Actual   string
}
