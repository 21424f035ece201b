// Package canvas holds the pixel grid and the discrete line rasterizer.
package canvas

import "image/color"

// Cell identifies one grid cell by column and row.
type Cell struct {
	Col, Row int
}

// Grid is the drawing surface: rows x cols cells, each holding one color.
// Mutations go through Paint and Clear only.
type Grid struct {
	cols, rows int
	background color.RGBA

	cells []color.RGBA // Row-major, rows*cols entries.
}

// New creates a grid filled with the background color.
// cols and rows must be positive, validated by the caller's config.
func New(cols, rows int, background color.RGBA) *Grid {
	g := &Grid{
		cols:       cols,
		rows:       rows,
		background: background,
		cells:      make([]color.RGBA, cols*rows),
	}
	g.Clear()
	return g
}

func (g *Grid) Cols() int { return g.cols }

func (g *Grid) Rows() int { return g.rows }

func (g *Grid) Background() color.RGBA { return g.background }

// Paint overwrites a single cell. Out-of-bounds coordinates are a no-op:
// the pointer routinely leaves the window and must never corrupt state.
func (g *Grid) Paint(col, row int, c color.RGBA) {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return
	}
	g.cells[row*g.cols+col] = c
}

// Clear resets every cell to the background color.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.background
	}
}

// Snapshot returns a copy of the grid, indexed [row][col]. The copy reflects
// all prior Paint/Clear calls and is detached from the backing store, so the
// render path can hold it across a frame without aliasing the model.
func (g *Grid) Snapshot() [][]color.RGBA {
	out := make([][]color.RGBA, g.rows)
	for row := range out {
		out[row] = make([]color.RGBA, g.cols)
		copy(out[row], g.cells[row*g.cols:(row+1)*g.cols])
	}
	return out
}
