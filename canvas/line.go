package canvas

import "slices"

// Line returns the 8-connected line of cells between a and b, both endpoints
// included, each cell exactly once. The endpoint order is canonicalized
// internally so that Line(b, a) is always the exact reverse of Line(a, b):
// two pointer samples produce the same cells no matter the drag direction.
func Line(a, b Cell) []Cell {
	if b.Col < a.Col || (b.Col == a.Col && b.Row < a.Row) {
		cells := Line(b, a)
		slices.Reverse(cells)
		return cells
	}

	// Canonical order: a.Col <= b.Col, so the column only ever steps up.
	dx := b.Col - a.Col
	dy := b.Row - a.Row
	sy := 1
	if dy < 0 {
		dy, sy = -dy, -1
	}

	cells := make([]Cell, 0, max(dx, dy)+1)
	col, row := a.Col, a.Row
	if dx >= dy {
		// Column is the primary axis, the error accumulator starts at
		// half the primary delta and decides when the row steps.
		err := dx / 2
		for range dx + 1 {
			cells = append(cells, Cell{Col: col, Row: row})
			err -= dy
			if err < 0 {
				err += dx
				row += sy
			}
			col++
		}
	} else {
		err := dy / 2
		for range dy + 1 {
			cells = append(cells, Cell{Col: col, Row: row})
			err -= dx
			if err < 0 {
				err += dy
				col++
			}
			row += sy
		}
	}
	return cells
}
