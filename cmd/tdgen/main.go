package main

import (
	"fmt"
	"os"

	"tdgen/internal/cli"
	"tdgen/internal/cli/commands"
	"tdgen/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Execute root command
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	// Create root command. Errors are printed once by main, without usage.
	rootCmd := &cobra.Command{
		Use:   "tdgen",
		Short: "Test data workbook generator",
		Long: `Generate testData/TestData.xlsx with the LoginData and AccountData sheets used by the UI test suite.
Run without arguments to (re)generate the workbook.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	return rootCmd
}
