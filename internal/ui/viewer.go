package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"tdgen/internal/domain"
)

// Viewer displays a workbook interactively
type Viewer interface {
	View(wb *domain.Workbook) error
}

// SheetViewer shows one table page per sheet in a TUI
type SheetViewer struct {
	source string
}

// NewSheetViewer creates a new SheetViewer; source is shown in the header
func NewSheetViewer(source string) *SheetViewer {
	return &SheetViewer{source: source}
}

// View runs the TUI until the user quits with q, Esc or Ctrl+C
func (sv *SheetViewer) View(wb *domain.Workbook) error {
	if len(wb.Sheets) == 0 {
		return fmt.Errorf("workbook has no sheets")
	}

	app := tview.NewApplication()
	pages := tview.NewPages()
	tables := make([]*tview.Table, len(wb.Sheets))
	for i, sheet := range wb.Sheets {
		tables[i] = newSheetTable(sheet)
		pages.AddPage(sheet.Name, tables[i], true, i == 0)
	}

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	current := 0
	show := func(index int) {
		current = (index + len(wb.Sheets)) % len(wb.Sheets)
		pages.SwitchToPage(wb.Sheets[current].Name)
		headerView.SetText(sv.headerText(wb, current))
		app.SetFocus(tables[current])
	}

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab:
			show(current + 1)
			return nil
		case tcell.KeyBacktab:
			show(current - 1)
			return nil
		case tcell.KeyEsc:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' || event.Rune() == 'Q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(pages, 0, 1, true)

	headerView.SetText(sv.headerText(wb, current))
	if err := app.SetRoot(layout, true).SetFocus(tables[current]).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// headerText lists the sheets with the active one highlighted
func (sv *SheetViewer) headerText(wb *domain.Workbook, active int) string {
	tabs := make([]string, len(wb.Sheets))
	for i, sheet := range wb.Sheets {
		if i == active {
			tabs[i] = fmt.Sprintf("[black:yellow] %s [-:-]", tview.Escape(sheet.Name))
		} else {
			tabs[i] = fmt.Sprintf("[yellow] %s [-]", tview.Escape(sheet.Name))
		}
	}
	return fmt.Sprintf(" [cyan]%s[white] | %s | Tab/Shift+Tab to switch sheets, q to exit ",
		tview.Escape(sv.source), strings.Join(tabs, " "))
}

// newSheetTable builds a table with a fixed header row followed by the data rows
func newSheetTable(sheet domain.Sheet) *tview.Table {
	table := tview.NewTable().
		SetFixed(1, 0).
		SetSelectable(true, false).
		SetSeparator(tview.Borders.Vertical)

	for col, h := range sheet.Headers {
		table.SetCell(0, col, tview.NewTableCell(tview.Escape(h)).
			SetTextColor(tcell.ColorYellow).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false).
			SetExpansion(1))
	}

	for r, row := range sheet.Rows {
		for col := range sheet.Headers {
			value := ""
			if col < len(row) {
				value = row[col]
			}
			cell := tview.NewTableCell(tview.Escape(value)).SetExpansion(1)
			if value == "" {
				cell.SetText("(empty)").SetTextColor(tcell.ColorGray)
			}
			table.SetCell(r+1, col, cell)
		}
	}

	table.SetBorder(true).SetTitle(fmt.Sprintf(" %s (%d rows) ", sheet.Name, len(sheet.Rows)))
	return table
}
