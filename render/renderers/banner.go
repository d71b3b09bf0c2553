package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/blocksmash/render"
)

// PauseBanner centers a label over the field while the game is paused
type PauseBanner struct {
	label string
	style tcell.Style
}

// NewPauseBanner creates a pause banner
func NewPauseBanner(label string) *PauseBanner {
	return &PauseBanner{
		label: " " + label + " ",
		style: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true),
	}
}

// Render draws the banner only when paused
func (b *PauseBanner) Render(ctx render.RenderContext, screen tcell.Screen) {
	if !ctx.IsPaused {
		return
	}
	col, row := ctx.Camera.ToScreen(0, 0)
	x := int(col) - runewidth.StringWidth(b.label)/2
	DrawString(screen, x, int(row), b.label, b.style)
}
