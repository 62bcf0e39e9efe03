package commands

import (
	"github.com/spf13/cobra"
	"tdgen/internal/config"
	"tdgen/internal/fixtures"
	"tdgen/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	filter    *fixtures.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	filter *fixtures.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	wb := lc.filter.FilterByTestCase(fixtures.Workbook(), lc.config.Flags.Filter)

	if wb.RowCount() == 0 {
		lc.formatter.PrintNoMatches()
		return nil
	}

	lc.formatter.PrintWorkbook(wb)
	return nil
}
