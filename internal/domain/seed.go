package domain

// SeedResult represents the outcome of loading one sheet into a database table
type SeedResult struct {
	Sheet string
	Table string
	Rows  int
}
