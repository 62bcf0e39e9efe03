// Package fixtures holds the built-in test data tables written to the workbook.
package fixtures

import "tdgen/internal/domain"

const (
	// LoginSheet is the sheet name the test suite reads login cases from
	LoginSheet = "LoginData"
	// AccountSheet is the sheet name the test suite reads account cases from
	AccountSheet = "AccountData"

	defaultURL      = "https://test.salesforce.com"
	defaultUser     = "testuser@example.com"
	defaultPassword = "password123"
)

// Logins returns the login test cases
func Logins() []domain.LoginRecord {
	return []domain.LoginRecord{
		{TestCase: "ValidLogin", Username: defaultUser, Password: defaultPassword, URL: defaultURL, ExpectedResult: domain.Success},
		{TestCase: "InvalidLogin", Username: "invalid@example.com", Password: "wrongpassword", URL: defaultURL, ExpectedResult: domain.Failure},
		{TestCase: "EmptyCredentials", Username: "", Password: "", URL: defaultURL, ExpectedResult: domain.Failure},
		{TestCase: "EmptyUsername", Username: "", Password: defaultPassword, URL: defaultURL, ExpectedResult: domain.Failure},
		{TestCase: "EmptyPassword", Username: defaultUser, Password: "", URL: defaultURL, ExpectedResult: domain.Failure},
	}
}

// Accounts returns the account creation test cases
func Accounts() []domain.AccountRecord {
	return []domain.AccountRecord{
		{
			TestCase:    "AccountCreation1",
			Username:    defaultUser,
			Password:    defaultPassword,
			URL:         defaultURL,
			AccountName: "Test Account 1",
			AccountType: "Customer - Direct",
			Industry:    "Technology",
			Phone:       "123-456-7890",
			Website:     "https://www.testaccount1.com",
		},
		{
			TestCase:    "AccountCreation2",
			Username:    defaultUser,
			Password:    defaultPassword,
			URL:         defaultURL,
			AccountName: "Test Account 2",
			AccountType: "Customer - Channel",
			Industry:    "Healthcare",
			Phone:       "987-654-3210",
			Website:     "https://www.testaccount2.com",
		},
		{
			TestCase:    "AccountCreation3",
			Username:    defaultUser,
			Password:    defaultPassword,
			URL:         defaultURL,
			AccountName: "Test Account 3",
			AccountType: "Prospect",
			Industry:    "Finance",
			Phone:       "555-123-4567",
			Website:     "https://www.testaccount3.com",
		},
	}
}

// Workbook returns both tables as sheets, login first
func Workbook() *domain.Workbook {
	logins := Logins()
	loginRows := make([][]string, 0, len(logins))
	for _, r := range logins {
		loginRows = append(loginRows, r.Values())
	}

	accounts := Accounts()
	accountRows := make([][]string, 0, len(accounts))
	for _, r := range accounts {
		accountRows = append(accountRows, r.Values())
	}

	return &domain.Workbook{
		Sheets: []domain.Sheet{
			{Name: LoginSheet, Headers: headers(domain.LoginHeaders), Rows: loginRows},
			{Name: AccountSheet, Headers: headers(domain.AccountHeaders), Rows: accountRows},
		},
	}
}

// headers copies h so callers cannot modify the package-level header slices
func headers(h []string) []string {
	out := make([]string, len(h))
	copy(out, h)
	return out
}
