package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar creates and manages progress bars
type ProgressBar struct {
	bar   *progressbar.ProgressBar
	total int
	done  int
}

// NewProgressBar creates a new progress bar for seeding count rows
func NewProgressBar(count int) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(
			color.CyanString("Seeding rows: ")+
				color.GreenString("[inserted: 0/%d]", count),
		),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar, total: count}
}

// Increment advances the bar by one inserted row
func (p *ProgressBar) Increment() {
	p.done++
	p.bar.Add(1)
	p.bar.Describe(
		color.CyanString("Seeding rows: ") +
			color.GreenString("[inserted: %d/%d]", p.done, p.total),
	)
}

// Abort stops the bar at its current state and ends the line, so a
// following error message starts on its own line
func (p *ProgressBar) Abort() {
	p.bar.Exit()
	fmt.Fprint(os.Stderr, "\n")
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}
