package seed

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"tdgen/internal/domain"
	"tdgen/internal/fixtures"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOpener struct {
	db  *sql.DB
	err error
}

func (o stubOpener) Open() (*sql.DB, error) {
	return o.db, o.err
}

type recordingProgress struct {
	total      int
	increments int
	finished   bool
	aborted    bool
}

func (p *recordingProgress) Increment() { p.increments++ }
func (p *recordingProgress) Finish()    { p.finished = true }
func (p *recordingProgress) Abort()     { p.aborted = true }

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	return db, mock
}

// expectSheet registers the statements seeding one sheet issues, in order
func expectSheet(mock sqlmock.Sqlmock, sheet domain.Sheet) {
	table := TableName(sheet.Name)
	mock.ExpectExec(CreateTableSQL(table, sheet.Headers)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `" + table + "`").WillReturnResult(sqlmock.NewResult(0, 0))
	prep := mock.ExpectPrepare(InsertSQL(table, sheet.Headers))
	for i, row := range sheet.Rows {
		prep.ExpectExec().WithArgs(rowArgs(i+1, row, len(sheet.Headers))...).WillReturnResult(sqlmock.NewResult(int64(i+1), 1))
	}
	mock.ExpectCommit()
}

func rowArgs(rowNum int, row []string, width int) []driver.Value {
	args := []driver.Value{rowNum}
	for col := 0; col < width; col++ {
		value := ""
		if col < len(row) {
			value = row[col]
		}
		args = append(args, value)
	}
	return args
}

func seedWithMock(t *testing.T, wb *domain.Workbook) ([]domain.SeedResult, *recordingProgress) {
	t.Helper()
	db, mock := newMock(t)
	for _, sheet := range wb.Sheets {
		expectSheet(mock, sheet)
	}
	mock.ExpectClose()

	progress := &recordingProgress{}
	seeder := NewMySQLSeeder(stubOpener{db: db})
	seeder.SetProgress(func(total int) Progress {
		progress.total = total
		return progress
	})

	results, err := seeder.Seed(wb)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
	return results, progress
}

func TestMySQLSeeder_Seed(t *testing.T) {
	results, progress := seedWithMock(t, fixtures.Workbook())

	assert.Equal(t, []domain.SeedResult{
		{Sheet: "LoginData", Table: "login_data", Rows: 5},
		{Sheet: "AccountData", Table: "account_data", Rows: 3},
	}, results)

	t.Run("progress ticks once per row", func(t *testing.T) {
		assert.Equal(t, 8, progress.total)
		assert.Equal(t, 8, progress.increments)
		assert.True(t, progress.finished)
		assert.False(t, progress.aborted)
	})
}

func TestMySQLSeeder_RerunReplacesRows(t *testing.T) {
	// every run clears the table before inserting, so repeated runs match
	first, _ := seedWithMock(t, fixtures.Workbook())
	second, _ := seedWithMock(t, fixtures.Workbook())
	assert.Equal(t, first, second)
}

func TestMySQLSeeder_FillsBlankCells(t *testing.T) {
	wb := &domain.Workbook{Sheets: []domain.Sheet{{
		Name:    "LoginData",
		Headers: []string{"TestCase", "Username", "Password"},
		Rows:    [][]string{{"ShortRow"}},
	}}}

	results, _ := seedWithMock(t, wb)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Rows)
}

func TestMySQLSeeder_RollsBackOnFailedInsert(t *testing.T) {
	wb := fixtures.Workbook()
	login := wb.Sheets[0]
	table := TableName(login.Name)

	db, mock := newMock(t)
	mock.ExpectExec(CreateTableSQL(table, login.Headers)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `" + table + "`").WillReturnResult(sqlmock.NewResult(0, 0))
	prep := mock.ExpectPrepare(InsertSQL(table, login.Headers))
	prep.ExpectExec().WithArgs(rowArgs(1, login.Rows[0], len(login.Headers))...).WillReturnResult(sqlmock.NewResult(1, 1))
	prep.ExpectExec().WithArgs(rowArgs(2, login.Rows[1], len(login.Headers))...).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()
	mock.ExpectClose()

	progress := &recordingProgress{}
	seeder := NewMySQLSeeder(stubOpener{db: db})
	seeder.SetProgress(func(total int) Progress { return progress })

	results, err := seeder.Seed(wb)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert row 2")
	assert.Empty(t, results)
	assert.Equal(t, 1, progress.increments)
	assert.True(t, progress.aborted)
	assert.False(t, progress.finished)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLSeeder_OpenFailureSkipsProgress(t *testing.T) {
	called := false
	seeder := NewMySQLSeeder(stubOpener{err: errors.New("connection refused")})
	seeder.SetProgress(func(total int) Progress {
		called = true
		return &recordingProgress{}
	})

	_, err := seeder.Seed(fixtures.Workbook())
	require.Error(t, err)
	assert.False(t, called)
}
