package commands

import (
	"fmt"

	"tdgen/internal/config"
	"tdgen/internal/fixtures"
	"tdgen/internal/storage"
	"tdgen/internal/ui"
	"tdgen/internal/verify"

	"github.com/spf13/cobra"
)

// VerifyCommand handles the verify command
type VerifyCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewVerifyCommand creates a new VerifyCommand
func NewVerifyCommand(cfg *config.Config, formatter *ui.Formatter) *VerifyCommand {
	return &VerifyCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (vc *VerifyCommand) Execute(cmd *cobra.Command, args []string) error {
	st, err := storage.New(vc.config)
	if err != nil {
		return err
	}

	stored, err := st.Load()
	if err != nil {
		return err
	}

	mismatches := verify.Compare(fixtures.Workbook(), stored)
	vc.formatter.PrintVerification(st.Path(), mismatches)
	if len(mismatches) > 0 {
		return fmt.Errorf("%s is out of date, run generate to rewrite it", st.Path())
	}
	return nil
}
