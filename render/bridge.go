package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// toColorful converts a tcell color, ColorDefault and invalid colors map to black
func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return colorful.Color{}
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Blend mixes src toward dst by t in [0, 1], interpolated in Lab space
func Blend(src, dst tcell.Color, t float64) tcell.Color {
	return toTcell(toColorful(src).BlendLab(toColorful(dst), t))
}

// DimFactor is how far colors fade toward the background while paused
const DimFactor = 0.6
