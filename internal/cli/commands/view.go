package commands

import (
	"tdgen/internal/config"
	"tdgen/internal/domain"
	"tdgen/internal/fixtures"
	"tdgen/internal/storage"
	"tdgen/internal/ui"

	"github.com/spf13/cobra"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config    *config.Config
	newViewer func(source string) ui.Viewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cfg *config.Config) *ViewCommand {
	return &ViewCommand{
		config: cfg,
		newViewer: func(source string) ui.Viewer {
			return ui.NewSheetViewer(source)
		},
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	wb, source, err := vc.load()
	if err != nil {
		return err
	}
	return vc.newViewer(source).View(wb)
}

func (vc *ViewCommand) load() (*domain.Workbook, string, error) {
	if vc.config.Flags.Builtin {
		return fixtures.Workbook(), "built-in test data", nil
	}

	st, err := storage.New(vc.config)
	if err != nil {
		return nil, "", err
	}
	wb, err := st.Load()
	if err != nil {
		return nil, "", err
	}
	return wb, st.Path(), nil
}
