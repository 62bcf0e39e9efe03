package fixtures

import (
	"testing"

	"tdgen/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkbook(t *testing.T) {
	wb := Workbook()

	t.Run("sheet order", func(t *testing.T) {
		assert.Equal(t, []string{LoginSheet, AccountSheet}, wb.SheetNames())
	})

	t.Run("login sheet", func(t *testing.T) {
		s := wb.Sheet(LoginSheet)
		require.NotNil(t, s)
		assert.Equal(t, []string{"TestCase", "Username", "Password", "URL", "ExpectedResult"}, s.Headers)
		require.Len(t, s.Rows, 5)
		assert.Equal(t, []string{"ValidLogin", "testuser@example.com", "password123", "https://test.salesforce.com", "Success"}, s.Rows[0])
		assert.Equal(t, []string{"EmptyCredentials", "", "", "https://test.salesforce.com", "Failure"}, s.Rows[2])
		assert.Equal(t, []string{"EmptyPassword", "testuser@example.com", "", "https://test.salesforce.com", "Failure"}, s.Rows[4])
	})

	t.Run("account sheet", func(t *testing.T) {
		s := wb.Sheet(AccountSheet)
		require.NotNil(t, s)
		assert.Equal(t, []string{
			"TestCase", "Username", "Password", "URL", "AccountName",
			"AccountType", "Industry", "Phone", "Website",
		}, s.Headers)
		require.Len(t, s.Rows, 3)
		assert.Equal(t, []string{
			"AccountCreation2", "testuser@example.com", "password123", "https://test.salesforce.com",
			"Test Account 2", "Customer - Channel", "Healthcare", "987-654-3210", "https://www.testaccount2.com",
		}, s.Rows[1])
	})

	t.Run("rows align with headers", func(t *testing.T) {
		for _, s := range wb.Sheets {
			for i, row := range s.Rows {
				assert.Len(t, row, len(s.Headers), "sheet %s row %d", s.Name, i+1)
			}
		}
	})
}

func TestWorkbook_ReturnsFreshCopies(t *testing.T) {
	first := Workbook()
	first.Sheets[0].Headers[0] = "changed"
	first.Sheets[0].Rows[0][0] = "changed"

	second := Workbook()
	assert.Equal(t, "TestCase", second.Sheets[0].Headers[0])
	assert.Equal(t, "ValidLogin", second.Sheets[0].Rows[0][0])
	assert.Equal(t, "TestCase", domain.LoginHeaders[0])
}

func TestLogins_ExpectedResults(t *testing.T) {
	successes := 0
	for _, r := range Logins() {
		if r.ExpectedResult == domain.Success {
			successes++
		}
	}
	assert.Equal(t, 1, successes)
}
