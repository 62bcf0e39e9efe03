package commands

import (
	"fmt"

	"tdgen/internal/config"
	"tdgen/internal/fixtures"
	"tdgen/internal/storage"
	"tdgen/internal/ui"

	"github.com/spf13/cobra"
)

// GenerateCommand handles the generate command
type GenerateCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(cfg *config.Config, formatter *ui.Formatter) *GenerateCommand {
	return &GenerateCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (gc *GenerateCommand) Execute(cmd *cobra.Command, args []string) error {
	st, err := storage.New(gc.config)
	if err != nil {
		return err
	}

	wb := fixtures.Workbook()
	if err := st.Save(wb); err != nil {
		return fmt.Errorf("failed to write test data: %w", err)
	}

	gc.formatter.PrintGenerated(formatLabel(gc.config.Format), st.Path(), wb.SheetNames())
	return nil
}

func formatLabel(format string) string {
	switch format {
	case config.FormatJSON:
		return "JSON"
	case config.FormatCSV:
		return "CSV"
	default:
		return "Excel"
	}
}
