package editor

import (
	"fmt"
	"image/color"

	"pixeled/canvas"
)

// Button identifies a pointer button, host-agnostic.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// Action is the direction of a button transition.
type Action int

const (
	Press Action = iota
	Release
)

// Key identifies an editor key binding, host-agnostic.
type Key int

const (
	KeyClear Key = iota
	KeyEraser
	KeySave
)

// Editor is the single context object owning the grid, the palette and the
// interaction state. All methods run synchronously on the host's event/render
// thread; there is no locking and no mutation outside the event that
// triggered it.
type Editor struct {
	cfg     Config
	palette Palette
	grid    *canvas.Grid

	current  color.RGBA // Selected paint color.
	eraser   bool       // When set, painting writes the background color.
	dragging bool       // Between a canvas press and the matching release.
	last     *canvas.Cell

	messages []Message
}

// New validates the geometry and creates an editor over a fresh grid.
// A nil palette gets the default 8 colors; the first entry is selected.
func New(cfg Config, palette Palette) (*Editor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if len(palette) == 0 {
		palette = DefaultPalette()
	}
	return &Editor{
		cfg:     cfg,
		palette: palette,
		grid:    canvas.New(cfg.Cols(), cfg.Rows(), Background),
		current: palette[0],
	}, nil
}

func (e *Editor) Config() Config { return e.cfg }

func (e *Editor) Palette() Palette { return e.palette }

func (e *Editor) CurrentColor() color.RGBA { return e.current }

func (e *Editor) Eraser() bool { return e.eraser }

func (e *Editor) Dragging() bool { return e.dragging }

// Snapshot returns a copy of the grid for rendering.
func (e *Editor) Snapshot() [][]color.RGBA { return e.grid.Snapshot() }

// PointerButton handles a pointer button transition at window position
// (x, y). A press over the palette strip selects a color; a press over the
// canvas starts a drag and paints the pressed cell; a release anywhere ends
// the drag, even when it lands outside the window's last known bounds.
func (e *Editor) PointerButton(btn Button, action Action, x, y int) {
	if btn != ButtonPrimary {
		return
	}
	if action == Release {
		e.endDrag()
		return
	}
	if e.inStrip(y) {
		e.selectSwatch(x)
		return
	}
	e.dragging = true
	e.last = nil
	if cell, ok := e.cellAt(x, y); ok {
		e.grid.Paint(cell.Col, cell.Row, e.effectiveColor())
		e.last = &cell
	}
	// An out-of-bounds press keeps the drag alive with no last cell: the
	// first in-bounds move starts line tracking from there.
}

// PointerMove handles pointer motion. Only meaningful mid-drag: it connects
// the previously painted cell to the new one with a full line so that fast
// drags skipping intermediate cells leave no gaps.
func (e *Editor) PointerMove(x, y int) {
	if !e.dragging || e.inStrip(y) {
		return
	}
	cell, ok := e.cellAt(x, y)
	if !ok {
		return
	}
	if e.last == nil {
		e.grid.Paint(cell.Col, cell.Row, e.effectiveColor())
		e.last = &cell
		return
	}
	if cell == *e.last {
		return
	}
	for _, c := range canvas.Line(*e.last, cell) {
		e.grid.Paint(c.Col, c.Row, e.effectiveColor())
	}
	e.last = &cell
}

// Key handles a key press.
func (e *Editor) Key(key Key) {
	switch key {
	case KeyClear:
		e.grid.Clear()
		e.post(MsgCleared, "canvas cleared")
	case KeyEraser:
		e.eraser = !e.eraser
		if e.eraser {
			e.post(MsgEraserOn, "eraser on")
		} else {
			e.post(MsgEraserOff, "eraser off")
		}
	case KeySave:
		e.post(MsgSaveUnsupported, "save not implemented")
	}
}

// CancelDrag ends the active drag without a release event, for hosts that
// lose pointer capture.
func (e *Editor) CancelDrag() { e.endDrag() }

// PollMessages returns the queued status messages and clears the queue.
func (e *Editor) PollMessages() []Message {
	msgs := e.messages
	e.messages = nil
	return msgs
}

func (e *Editor) endDrag() {
	e.dragging = false
	e.last = nil
}

func (e *Editor) effectiveColor() color.RGBA {
	if e.eraser {
		return e.grid.Background()
	}
	return e.current
}

// inStrip reports whether a pointer y lands in the palette strip overlaying
// the bottom of the window.
func (e *Editor) inStrip(y int) bool {
	return y >= e.cfg.Height-e.cfg.StripHeight
}

// cellAt maps a window position to a grid cell, top-left origin.
// Integer division truncates toward zero, so negative coordinates are
// rejected before dividing.
func (e *Editor) cellAt(x, y int) (canvas.Cell, bool) {
	if x < 0 || y < 0 {
		return canvas.Cell{}, false
	}
	cell := canvas.Cell{Col: x / e.cfg.CellSize, Row: y / e.cfg.CellSize}
	if cell.Col >= e.grid.Cols() || cell.Row >= e.grid.Rows() {
		return canvas.Cell{}, false
	}
	return cell, true
}

func (e *Editor) selectSwatch(x int) {
	if x < 0 {
		return
	}
	idx := x / e.cfg.SwatchWidth
	if idx >= len(e.palette) {
		return
	}
	e.current = e.palette[idx]
	e.post(MsgColorSelected, fmt.Sprintf("color %d selected", idx))
}

func (e *Editor) post(mt MessageType, text string) {
	e.messages = append(e.messages, Message{Type: mt, Text: text})
}
