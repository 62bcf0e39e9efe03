package commands

import (
	"tdgen/internal/cli"
	"tdgen/internal/config"
	"tdgen/internal/fixtures"
	"tdgen/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Generate *GenerateCommand
	List     *ListCommand
	Verify   *VerifyCommand
	View     *ViewCommand
	Seed     *SeedCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	formatter := ui.NewFormatter()

	return &Commands{
		Generate: NewGenerateCommand(cfg, formatter),
		List:     NewListCommand(cfg, fixtures.NewFilter(), formatter),
		Verify:   NewVerifyCommand(cfg, formatter),
		View:     NewViewCommand(cfg),
		Seed:     NewSeedCommand(cfg, formatter),
	}
}

// Register registers all commands with cobra. The root command itself
// generates the workbook, so running the binary without arguments is
// the same as "generate".
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		return cfg.Apply(flags.ToConfigFlags())
	}

	addOutputFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVarP(&flags.OutputDir, "output-dir", "o", config.DefaultOutputDir, "Directory the test data file is written to")
		cmd.Flags().StringVarP(&flags.File, "file", "n", "", "File name inside the output directory (default TestData.<format>)")
		cmd.Flags().StringVar(&flags.Format, "format", config.DefaultFormat, "Output format: xlsx, csv or json")
	}

	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = c.Generate.Execute
	rootCmd.PreRunE = applyFlags
	addOutputFlags(rootCmd)

	// Generate command
	generateCmd := &cobra.Command{
		Use:     "generate",
		Short:   "Write the test data workbook",
		Long:    "Create the output directory if needed and write the LoginData and AccountData sheets",
		Args:    cobra.NoArgs,
		RunE:    c.Generate.Execute,
		PreRunE: applyFlags,
	}
	addOutputFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "Print the built-in test data",
		Long:    "Print every fixture sheet as a table without writing any file",
		Args:    cobra.NoArgs,
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter test cases by name pattern (supports wildcards, e.g. 'Empty*' or '*Login*')")
	rootCmd.AddCommand(listCmd)

	// Verify command
	verifyCmd := &cobra.Command{
		Use:     "verify",
		Short:   "Check a generated file against the built-in test data",
		Long:    "Read the generated file back and report every sheet, header or cell that differs",
		Args:    cobra.NoArgs,
		RunE:    c.Verify.Execute,
		PreRunE: applyFlags,
	}
	addOutputFlags(verifyCmd)
	rootCmd.AddCommand(verifyCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:     "view",
		Short:   "Browse the test data interactively",
		Long:    "Display the generated file (or the built-in data with --builtin) in an interactive viewer",
		Args:    cobra.NoArgs,
		RunE:    c.View.Execute,
		PreRunE: applyFlags,
	}
	addOutputFlags(viewCmd)
	viewCmd.Flags().BoolVar(&flags.Builtin, "builtin", false, "Show the built-in data instead of reading the file")
	rootCmd.AddCommand(viewCmd)

	// Seed command
	seedCmd := &cobra.Command{
		Use:     "seed",
		Short:   "Load the test data into a MySQL database",
		Long:    "Create one table per sheet (login_data, account_data) and replace its rows. Connection settings come from DB_* environment variables or .env",
		Args:    cobra.NoArgs,
		RunE:    c.Seed.Execute,
		PreRunE: applyFlags,
	}
	seedCmd.Flags().StringVarP(&flags.Database, "database", "d", "", "Database name (default DB_DATABASE or test_data)")
	rootCmd.AddCommand(seedCmd)
}
