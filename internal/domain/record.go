package domain

// ExpectedResult is the outcome a login test case expects
type ExpectedResult string

const (
	Success ExpectedResult = "Success"
	Failure ExpectedResult = "Failure"
)

// LoginHeaders are the column headers of the login sheet, in column order
var LoginHeaders = []string{"TestCase", "Username", "Password", "URL", "ExpectedResult"}

// AccountHeaders are the column headers of the account sheet, in column order
var AccountHeaders = []string{
	"TestCase",
	"Username",
	"Password",
	"URL",
	"AccountName",
	"AccountType",
	"Industry",
	"Phone",
	"Website",
}

// LoginRecord represents a single login test case
type LoginRecord struct {
	TestCase       string
	Username       string
	Password       string
	URL            string
	ExpectedResult ExpectedResult
}

// Values returns the record fields in LoginHeaders order
func (r LoginRecord) Values() []string {
	return []string{r.TestCase, r.Username, r.Password, r.URL, string(r.ExpectedResult)}
}

// AccountRecord represents a single account creation test case
type AccountRecord struct {
	TestCase    string
	Username    string
	Password    string
	URL         string
	AccountName string
	AccountType string
	Industry    string
	Phone       string
	Website     string
}

// Values returns the record fields in AccountHeaders order
func (r AccountRecord) Values() []string {
	return []string{
		r.TestCase,
		r.Username,
		r.Password,
		r.URL,
		r.AccountName,
		r.AccountType,
		r.Industry,
		r.Phone,
		r.Website,
	}
}
