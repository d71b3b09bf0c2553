package renderers

import (
	"log"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/blocksmash/asset"
	"github.com/lixenwraith/blocksmash/engine"
	"github.com/lixenwraith/blocksmash/render"
)

// TextRenderer draws text nodes anchored from the window's bottom-left corner
type TextRenderer struct {
	world      *engine.World
	loader     *asset.Loader
	background tcell.Color
}

// NewTextRenderer creates a text renderer
func NewTextRenderer(world *engine.World, loader *asset.Loader, background tcell.Color) *TextRenderer {
	return &TextRenderer{world: world, loader: loader, background: background}
}

// Render draws every text component
func (r *TextRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	for _, e := range r.world.Components.Text.All() {
		text, ok := r.world.Components.Text.Get(e)
		if !ok {
			continue
		}
		font, err := r.loader.Font(text.Font)
		if err != nil {
			log.Printf("render: %v", err)
			continue
		}

		col, row := ctx.Camera.WindowToScreen(text.Left, text.Bottom)
		DrawString(screen, int(math.Floor(col)), int(math.Floor(row)), text.Content, font.Style.Background(r.background))
	}
}

// DrawString writes s from (x, y), advancing by rune display width, clipped to the screen
// Returns the column after the last rune
func DrawString(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	w, h := screen.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x >= 0 && x+rw <= w {
			screen.SetContent(x, y, r, nil, style)
		}
		x += rw
	}
	return x
}
