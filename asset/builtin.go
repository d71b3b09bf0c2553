package asset

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blocksmash/parameter"
)

// Built-in looks used when sprite files are absent
var builtinSprites = map[string]Sprite{
	parameter.SpritePaddle:             {Glyph: '█', Color: tcell.NewRGBColor(40, 80, 200)},
	parameter.SpriteBall:               {Glyph: '●', Color: tcell.NewRGBColor(220, 40, 40)},
	parameter.SpriteHorizontalBoundary: {Glyph: '▒', Color: tcell.NewRGBColor(90, 90, 90)},
	parameter.SpriteVerticalBoundary:   {Glyph: '▒', Color: tcell.NewRGBColor(90, 90, 90)},
	parameter.SpriteBrick:              {Glyph: '▓', Color: tcell.NewRGBColor(200, 120, 40)},
}

// Terminal text uses its own font; each known font maps to a style
var builtinFonts = map[string]tcell.Style{
	parameter.FontBlocks: tcell.StyleDefault.Foreground(tcell.ColorBlack).Bold(true),
}

// BackgroundColor is the playfield clear color
var BackgroundColor = tcell.NewRGBColor(230, 230, 230)
