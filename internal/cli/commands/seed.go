package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"tdgen/internal/config"
	"tdgen/internal/fixtures"
	"tdgen/internal/seed"
	"tdgen/internal/ui"
)

// SeedCommand handles the seed command
type SeedCommand struct {
	config    *config.Config
	formatter *ui.Formatter
	newSeeder func(settings config.Database) seed.Seeder
}

// NewSeedCommand creates a new SeedCommand
func NewSeedCommand(cfg *config.Config, formatter *ui.Formatter) *SeedCommand {
	return &SeedCommand{
		config:    cfg,
		formatter: formatter,
		newSeeder: newMySQLSeeder,
	}
}

// Execute runs the command
func (sc *SeedCommand) Execute(cmd *cobra.Command, args []string) error {
	settings := sc.config.LoadDatabase()
	wb := fixtures.Workbook()

	sc.formatter.PrintSeeding(wb.RowCount(), settings.Addr(), settings.Name)

	results, err := sc.newSeeder(settings).Seed(wb)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	sc.formatter.PrintSeeded(settings.Name, results)
	return nil
}

func newMySQLSeeder(settings config.Database) seed.Seeder {
	seeder := seed.NewMySQLSeeder(seed.NewDatabaseManager(settings))
	seeder.SetProgress(func(total int) seed.Progress {
		return ui.NewProgressBar(total)
	})
	return seeder
}
