// Command pixeled-tui is the terminal front end of the pixel-art editor:
// one table cell per grid cell, click to paint, bottom row to pick the
// color, 'e' toggles the eraser, 'c' clears, 'q' quits.
package main

import (
	"image/color"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"pixeled/cli"
	"pixeled/editor"
)

type viewer struct {
	app    *tview.Application
	table  *tview.Table
	status *tview.TextView

	ed *editor.Editor
}

func newViewer(ed *editor.Editor) *viewer {
	app := tview.NewApplication().EnableMouse(true)

	table := tview.NewTable().SetBorders(false)
	table.SetTitle("Canvas").SetBorder(true)

	status := tview.NewTextView()
	status.SetTitle("Status").SetBorder(true)

	return &viewer{
		app:    app,
		table:  table,
		status: status,
		ed:     ed,
	}
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (v *viewer) Init() {
	v.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC, tcell.KeyEscape:
			v.app.Stop()
			return nil
		}
		switch event.Rune() {
		case 'c':
			v.ed.Key(editor.KeyClear)
		case 'e':
			v.ed.Key(editor.KeyEraser)
		case 's':
			v.ed.Key(editor.KeySave)
		case 'q':
			v.app.Stop()
			return nil
		default:
			return event
		}
		v.Draw()
		return nil
	})
}

// Draw rebuilds the table from the current snapshot. The bottom row is the
// palette strip; everything runs on the tview event thread, in strict
// event-then-draw sequence.
func (v *viewer) Draw() {
	var (
		snap = v.ed.Snapshot()
		cfg  = v.ed.Config()
		rows = cfg.Rows()
		cols = cfg.Cols()
	)
	for row := range rows {
		for col := range cols {
			cell := tview.NewTableCell("  ").
				SetBackgroundColor(tcellColor(snap[row][col]))
			x, y := col, row
			cell.SetClickedFunc(func() bool {
				v.ed.PointerButton(editor.ButtonPrimary, editor.Press, x, y)
				v.ed.PointerButton(editor.ButtonPrimary, editor.Release, x, y)
				v.Draw()
				return true
			})
			v.table.SetCell(row, col, cell)
		}
	}
	// Palette swatches overlay the bottom row, like the strip overlays the
	// bottom of the graphical window.
	for i, c := range v.ed.Palette() {
		x, y := i, rows-1
		cell := tview.NewTableCell("><").
			SetTextColor(tcellColor(c)).
			SetBackgroundColor(tcellColor(c))
		cell.SetClickedFunc(func() bool {
			v.ed.PointerButton(editor.ButtonPrimary, editor.Press, x, y)
			v.ed.PointerButton(editor.ButtonPrimary, editor.Release, x, y)
			v.Draw()
			return true
		})
		v.table.SetCell(rows-1, i, cell)
	}

	for _, msg := range v.ed.PollMessages() {
		v.status.SetText(msg.Text)
	}
	if v.ed.Eraser() {
		v.table.SetTitle("Canvas [eraser]")
	} else {
		v.table.SetTitle("Canvas")
	}
}

func main() {
	cfg, err := cli.ParseConfig()
	if err != nil {
		log.Fatalf("Failed to parse CLI config: %s.", err)
	}

	// One terminal cell per grid cell: the editor geometry collapses to
	// unit cells, with a one-row palette strip at the bottom.
	tuiCfg := editor.Config{
		Width:       cfg.Cols(),
		Height:      cfg.Rows(),
		CellSize:    1,
		SwatchWidth: 1,
		StripHeight: 1,
	}
	ed, err := editor.New(tuiCfg, editor.DefaultPalette())
	if err != nil {
		log.Fatalf("Failed to create editor: %s.", err)
	}

	v := newViewer(ed)
	v.Init()
	v.Draw()

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.table, 0, 1, true).
		AddItem(v.status, 3, 0, false)

	if err := v.app.SetRoot(flex, true).SetFocus(v.table).Run(); err != nil {
		log.Fatalf("Failed to run application: %s.", err)
	}
}
