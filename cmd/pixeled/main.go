// Command pixeled is the graphical pixel-art editor. Left click paints,
// the bottom strip selects the color, 'e' toggles the eraser, 'c' clears.
package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pixeled/cli"
	"pixeled/editor"
)

var fontFace = text.NewGoXFace(bitmapfont.Face)

// Game implements ebiten.Game, forwarding raw events to the editor and
// drawing its frame primitives. Update and Draw run on the same thread in
// strict sequence, so the editor needs no locking.
type Game struct {
	ed  *editor.Editor
	cfg editor.Config

	status string // Last editor message, shown in the HUD.
}

// Update proceeds the game state.
// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ed.PointerButton(editor.ButtonPrimary, editor.Press, x, y)
	}
	g.ed.PointerMove(x, y)
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.ed.PointerButton(editor.ButtonPrimary, editor.Release, x, y)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ed.Key(editor.KeyClear)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.ed.Key(editor.KeyEraser)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.ed.Key(editor.KeySave)
	}

	for _, msg := range g.ed.PollMessages() {
		g.status = msg.Text
	}
	return nil
}

// Draw draws the game screen.
// Draw is called every frame (typically 1/60[s] for 60Hz display).
func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.ed.Frame()
	for _, q := range frame.Cells {
		vector.DrawFilledRect(screen, q.X, q.Y, q.W, q.H, q.Color, false)
	}
	for _, s := range frame.GridLines {
		vector.StrokeLine(screen, s.X1, s.Y1, s.X2, s.Y2, 1, s.Color, false)
	}
	for _, q := range frame.Swatches {
		vector.DrawFilledRect(screen, q.X, q.Y, q.W, q.H, q.Color, false)
	}

	hud := g.status
	if g.ed.Eraser() {
		hud = fmt.Sprintf("[eraser] %s", g.status)
	}
	if hud != "" {
		textOp := &text.DrawOptions{}
		textOp.GeoM.Translate(4, 4)
		textOp.ColorScale.ScaleWithColor(color.RGBA{R: 0xff, A: 0xff})
		text.Draw(screen, hud, fontFace, textOp)
	}
}

// Layout takes the outside size (e.g., the window size) and returns the (logical) screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.Width, g.cfg.Height
}

func main() {
	cfg, err := cli.ParseConfig()
	if err != nil {
		log.Fatalf("Failed to parse CLI config: %s.", err)
	}
	ed, err := editor.New(cfg, editor.DefaultPalette())
	if err != nil {
		log.Fatalf("Failed to create editor: %s.", err)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Pixel Art Editor")

	if err := ebiten.RunGame(&Game{ed: ed, cfg: cfg}); err != nil {
		log.Fatal(err)
	}
}
