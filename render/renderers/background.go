package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blocksmash/render"
)

// BackgroundRenderer fills the letterboxed field with the clear color
type BackgroundRenderer struct {
	color tcell.Color
}

// NewBackgroundRenderer creates a background renderer
func NewBackgroundRenderer(color tcell.Color) *BackgroundRenderer {
	return &BackgroundRenderer{color: color}
}

// Render paints the field area, cells outside it keep the terminal default
func (r *BackgroundRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	style := tcell.StyleDefault.Background(r.color)
	x0, y0, x1, y1 := ctx.Camera.Clip(ctx.Camera.Field())
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}
