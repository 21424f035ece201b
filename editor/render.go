package editor

import "image/color"

// GridLineColor is the separator color, the reference light gray.
var GridLineColor = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}

// Quad is an axis-aligned filled rectangle in window pixel space.
type Quad struct {
	X, Y, W, H float32
	Color      color.RGBA
}

// Segment is a one-pixel line in window pixel space.
type Segment struct {
	X1, Y1, X2, Y2 float32
	Color          color.RGBA
}

// Frame is everything a host draws for one display refresh: one quad per
// grid cell, the separator lines at every column/row boundary, and one quad
// per palette swatch in the bottom strip. Hosts only translate these
// primitives to their backend.
type Frame struct {
	Cells     []Quad
	GridLines []Segment
	Swatches  []Quad
}

// Frame builds the render primitives from the current grid snapshot.
func (e *Editor) Frame() Frame {
	var (
		snap = e.grid.Snapshot()
		cols = e.grid.Cols()
		rows = e.grid.Rows()
		size = float32(e.cfg.CellSize)
	)

	frame := Frame{
		Cells:     make([]Quad, 0, cols*rows),
		GridLines: make([]Segment, 0, cols+rows+2),
		Swatches:  make([]Quad, 0, len(e.palette)),
	}

	for row := range rows {
		for col := range cols {
			frame.Cells = append(frame.Cells, Quad{
				X: float32(col) * size, Y: float32(row) * size,
				W: size, H: size,
				Color: snap[row][col],
			})
		}
	}

	w, h := size*float32(cols), size*float32(rows)
	for col := range cols + 1 {
		x := float32(col) * size
		frame.GridLines = append(frame.GridLines, Segment{X1: x, Y1: 0, X2: x, Y2: h, Color: GridLineColor})
	}
	for row := range rows + 1 {
		y := float32(row) * size
		frame.GridLines = append(frame.GridLines, Segment{X1: 0, Y1: y, X2: w, Y2: y, Color: GridLineColor})
	}

	stripTop := float32(e.cfg.Height - e.cfg.StripHeight)
	for i, c := range e.palette {
		frame.Swatches = append(frame.Swatches, Quad{
			X: float32(i * e.cfg.SwatchWidth), Y: stripTop,
			W: float32(e.cfg.SwatchWidth), H: float32(e.cfg.StripHeight),
			Color: c,
		})
	}
	return frame
}
