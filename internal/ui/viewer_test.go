package ui

import (
	"testing"

	"tdgen/internal/domain"
	"tdgen/internal/fixtures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSheetTable(t *testing.T) {
	sheet := fixtures.Workbook().Sheets[0]
	table := newSheetTable(sheet)

	assert.Equal(t, len(sheet.Rows)+1, table.GetRowCount())
	assert.Equal(t, len(sheet.Headers), table.GetColumnCount())
	assert.Equal(t, "TestCase", table.GetCell(0, 0).Text)
	assert.Equal(t, "ValidLogin", table.GetCell(1, 0).Text)

	t.Run("header row is not selectable", func(t *testing.T) {
		assert.False(t, table.GetCell(1, 0).NotSelectable)
		assert.True(t, table.GetCell(0, 0).NotSelectable)
	})

	t.Run("empty values are marked", func(t *testing.T) {
		// EmptyCredentials has no username
		assert.Equal(t, "(empty)", table.GetCell(3, 1).Text)
	})
}

func TestSheetViewer_HeaderText(t *testing.T) {
	viewer := NewSheetViewer("testData/TestData.xlsx")
	text := viewer.headerText(fixtures.Workbook(), 1)

	assert.Contains(t, text, "testData/TestData.xlsx")
	assert.Contains(t, text, "[yellow] LoginData [-]")
	assert.Contains(t, text, "[black:yellow] AccountData [-:-]")
}

func TestSheetViewer_ViewEmptyWorkbook(t *testing.T) {
	err := NewSheetViewer("empty").View(&domain.Workbook{})
	require.Error(t, err)
}
