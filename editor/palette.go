package editor

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Palette is an ordered, fixed sequence of selectable colors, indexed by
// swatch position. Immutable after construction.
type Palette []color.RGBA

// Background is the color of an untouched or erased cell.
var Background = colornames.White

// DefaultPalette returns the classic 8-color layout.
// colornames.Green is the muted CSS green, the palette wants full intensity.
func DefaultPalette() Palette {
	return Palette{
		colornames.Black,
		colornames.Red,
		colornames.Lime,
		colornames.Blue,
		colornames.Yellow,
		colornames.Magenta,
		colornames.Cyan,
		colornames.White,
	}
}
