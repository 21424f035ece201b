// Package editor owns the interaction state machine of the pixel-art
// editor: it maps raw pointer and key events delivered by a window host to
// palette selections and canvas mutations, and builds the per-frame render
// primitives the host draws.
package editor

import "fmt"

// Reference configuration.
const (
	DefaultWidth       = 800
	DefaultHeight      = 600
	DefaultCellSize    = 20
	DefaultSwatchWidth = 50 // Width of one palette swatch in pixels.
	DefaultStripHeight = 50 // Height of the palette strip in pixels.
)

// Config holds the window and grid geometry. All values are in window
// pixels. The palette strip overlays the bottom StripHeight pixels.
type Config struct {
	Width    int
	Height   int
	CellSize int

	SwatchWidth int
	StripHeight int
}

func DefaultConfig() Config {
	return Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		CellSize:    DefaultCellSize,
		SwatchWidth: DefaultSwatchWidth,
		StripHeight: DefaultStripHeight,
	}
}

// Cols is the number of grid columns. A width not divisible by the cell
// size leaves a remainder strip that no pointer event can reach.
func (c Config) Cols() int { return c.Width / c.CellSize }

// Rows is the number of grid rows.
func (c Config) Rows() int { return c.Height / c.CellSize }

// Validate reports malformed geometry. A cell size exceeding the window
// yields zero rows or columns, which leaves nothing to draw on: fatal at
// startup, there is no recovery path.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d, must be positive", c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size %d, must be positive", c.CellSize)
	}
	if c.SwatchWidth <= 0 || c.StripHeight <= 0 {
		return fmt.Errorf("palette strip %dx%d, must be positive", c.SwatchWidth, c.StripHeight)
	}
	if c.Cols() == 0 || c.Rows() == 0 {
		return fmt.Errorf("cell size %d larger than window %dx%d", c.CellSize, c.Width, c.Height)
	}
	return nil
}
