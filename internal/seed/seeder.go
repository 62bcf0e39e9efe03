// Package seed loads fixture sheets into MySQL tables.
package seed

import (
	"database/sql"
	"fmt"
	"strings"
	"unicode"

	"tdgen/internal/domain"
)

// rowColumn keeps the sheet row order, since SQL tables are unordered
const rowColumn = "row_num"

// Progress receives one tick per inserted row
type Progress interface {
	Increment()
	Finish()
	Abort()
}

// Opener returns a connection to the fixture database
type Opener interface {
	Open() (*sql.DB, error)
}

// Seeder loads a workbook into a database
type Seeder interface {
	Seed(wb *domain.Workbook) ([]domain.SeedResult, error)
}

// MySQLSeeder writes each sheet to its own table, replacing previous contents
type MySQLSeeder struct {
	opener      Opener
	newProgress func(total int) Progress
}

// NewMySQLSeeder creates a new MySQLSeeder
func NewMySQLSeeder(opener Opener) *MySQLSeeder {
	return &MySQLSeeder{opener: opener}
}

// SetProgress sets how the progress reporter is built. It is only called
// once the connection is open, with the number of rows to insert.
func (s *MySQLSeeder) SetProgress(newProgress func(total int) Progress) {
	s.newProgress = newProgress
}

// Seed creates one table per sheet and replaces its rows inside a transaction.
func (s *MySQLSeeder) Seed(wb *domain.Workbook) ([]domain.SeedResult, error) {
	db, err := s.opener.Open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var progress Progress
	if s.newProgress != nil {
		progress = s.newProgress(wb.RowCount())
	}

	results := make([]domain.SeedResult, 0, len(wb.Sheets))
	for _, sheet := range wb.Sheets {
		table := TableName(sheet.Name)
		if err := s.seedSheet(db, table, sheet, progress); err != nil {
			if progress != nil {
				progress.Abort()
			}
			return results, fmt.Errorf("seed sheet %s: %w", sheet.Name, err)
		}
		results = append(results, domain.SeedResult{Sheet: sheet.Name, Table: table, Rows: len(sheet.Rows)})
	}

	if progress != nil {
		progress.Finish()
	}
	return results, nil
}

func (s *MySQLSeeder) seedSheet(db *sql.DB, table string, sheet domain.Sheet, progress Progress) error {
	if _, err := db.Exec(CreateTableSQL(table, sheet.Headers)); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM " + quoteIdent(table)); err != nil {
		return fmt.Errorf("clear table: %w", err)
	}

	stmt, err := tx.Prepare(InsertSQL(table, sheet.Headers))
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range sheet.Rows {
		args := make([]interface{}, 0, len(sheet.Headers)+1)
		args = append(args, i+1)
		for col := range sheet.Headers {
			value := ""
			if col < len(row) {
				value = row[col]
			}
			args = append(args, value)
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("insert row %d: %w", i+1, err)
		}
		if progress != nil {
			progress.Increment()
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// CreateTableSQL returns the DDL for a sheet table: the row number plus one TEXT column per header
func CreateTableSQL(table string, headers []string) string {
	columns := []string{quoteIdent(rowColumn) + " INT NOT NULL PRIMARY KEY"}
	for _, h := range headers {
		columns = append(columns, quoteIdent(ColumnName(h))+" TEXT NOT NULL")
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", quoteIdent(table), strings.Join(columns, ", "))
}

// InsertSQL returns the parameterised INSERT for a sheet table
func InsertSQL(table string, headers []string) string {
	columns := []string{quoteIdent(rowColumn)}
	for _, h := range headers {
		columns = append(columns, quoteIdent(ColumnName(h)))
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", quoteIdent(table), strings.Join(columns, ", "), placeholders)
}

// TableName maps a sheet name to its table, e.g. LoginData -> login_data
func TableName(sheet string) string {
	return snakeCase(sheet)
}

// ColumnName maps a header to its column, e.g. ExpectedResult -> expected_result, URL -> url
func ColumnName(header string) string {
	return snakeCase(header)
}

func snakeCase(s string) string {
	runes := []rune(strings.TrimSpace(s))
	var b strings.Builder
	for i, r := range runes {
		switch {
		case r == ' ' || r == '-':
			b.WriteRune('_')
			continue
		case unicode.IsUpper(r):
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					b.WriteRune('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
