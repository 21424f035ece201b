package canvas

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	red   = color.RGBA{R: 0xff, A: 0xff}
	blue  = color.RGBA{B: 0xff, A: 0xff}
)

func TestNewStartsUniform(t *testing.T) {
	g := New(4, 3, white)

	require.Equal(t, 4, g.Cols())
	require.Equal(t, 3, g.Rows())
	require.Equal(t, white, g.Background())

	snap := g.Snapshot()
	require.Len(t, snap, 3)
	for row := range snap {
		require.Len(t, snap[row], 4)
		for col := range snap[row] {
			assert.Equal(t, white, snap[row][col], "cell (%d,%d)", col, row)
		}
	}
}

func TestPaintSingleCell(t *testing.T) {
	g := New(4, 3, white)
	g.Paint(2, 1, red)

	snap := g.Snapshot()
	for row := range snap {
		for col := range snap[row] {
			want := white
			if col == 2 && row == 1 {
				want = red
			}
			assert.Equal(t, want, snap[row][col], "cell (%d,%d)", col, row)
		}
	}
}

func TestPaintOutOfBounds(t *testing.T) {
	tests := []struct {
		name     string
		col, row int
	}{
		{"negative col", -1, 0},
		{"negative row", 0, -1},
		{"col at cols", 4, 0},
		{"row at rows", 0, 3},
		{"far outside", 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(4, 3, white)
			before := g.Snapshot()
			g.Paint(tt.col, tt.row, red)
			assert.Equal(t, before, g.Snapshot())
		})
	}
}

func TestClear(t *testing.T) {
	g := New(4, 3, white)
	g.Paint(0, 0, red)
	g.Paint(3, 2, blue)

	g.Clear()
	first := g.Snapshot()
	for row := range first {
		for col := range first[row] {
			assert.Equal(t, white, first[row][col], "cell (%d,%d)", col, row)
		}
	}

	// Idempotent.
	g.Clear()
	assert.Equal(t, first, g.Snapshot())
}

func TestSnapshotIsDetached(t *testing.T) {
	g := New(4, 3, white)
	snap := g.Snapshot()

	g.Paint(1, 1, red)
	assert.Equal(t, white, snap[1][1], "snapshot must not see later paints")

	snap[0][0] = blue
	assert.Equal(t, white, g.Snapshot()[0][0], "grid must not see snapshot writes")
}
