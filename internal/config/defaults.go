package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultOutputDir is the directory the workbook is written to
	DefaultOutputDir = "testData"
	// DefaultOutputName is the workbook file name without extension
	DefaultOutputName = "TestData"
	// DefaultFormat is the default output format
	DefaultFormat = FormatXLSX

	// Database defaults used by the seed command
	DefaultDBHost     = "127.0.0.1"
	DefaultDBPort     = "3306"
	DefaultDBUser     = "root"
	DefaultDBDatabase = "test_data"
)

// Output formats
const (
	FormatXLSX = "xlsx"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// SupportedFormats lists the formats accepted by --format
var SupportedFormats = []string{FormatXLSX, FormatCSV, FormatJSON}
