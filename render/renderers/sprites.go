package renderers

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blocksmash/asset"
	"github.com/lixenwraith/blocksmash/core"
	"github.com/lixenwraith/blocksmash/engine"
	"github.com/lixenwraith/blocksmash/physics"
	"github.com/lixenwraith/blocksmash/render"
)

// SpriteRenderer draws every entity with a sprite and a physics body as a filled rectangle
type SpriteRenderer struct {
	world      *engine.World
	space      *physics.Space
	loader     *asset.Loader
	background tcell.Color

	// Entity set drawn by this renderer
	query func(*engine.World) []core.Entity
}

// NewSpriteRenderer draws the entities returned by query
func NewSpriteRenderer(world *engine.World, space *physics.Space, loader *asset.Loader, background tcell.Color, query func(*engine.World) []core.Entity) *SpriteRenderer {
	return &SpriteRenderer{
		world:      world,
		space:      space,
		loader:     loader,
		background: background,
		query:      query,
	}
}

// Walls selects boundary walls
func Walls(w *engine.World) []core.Entity { return w.Components.Wall.All() }

// Bodies selects bricks, then paddles, then balls so the ball draws on top
func Bodies(w *engine.World) []core.Entity {
	out := w.Components.Brick.All()
	out = append(out, w.Components.Paddle.All()...)
	return append(out, w.Components.Ball.All()...)
}

// Render draws the selected sprites
func (r *SpriteRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	for _, e := range r.query(r.world) {
		sc, ok := r.world.Components.Sprite.Get(e)
		if !ok {
			continue
		}
		body, ok := r.world.Components.Body.Get(e)
		if !ok {
			continue
		}
		x, y, ok := r.space.Position(body.Collider)
		if !ok {
			continue
		}
		sprite, err := r.loader.Sprite(sc.Path)
		if err != nil {
			log.Printf("render: %v", err)
			continue
		}

		fg := sprite.Color
		if ctx.IsPaused {
			fg = render.Blend(fg, r.background, render.DimFactor)
		}
		style := tcell.StyleDefault.Foreground(fg).Background(r.background)

		x0, y0, x1, y1 := ctx.Camera.Clip(ctx.Camera.Rect(x, y, sc.HalfWidth, sc.HalfHeight))
		for cy := y0; cy < y1; cy++ {
			for cx := x0; cx < x1; cx++ {
				screen.SetContent(cx, cy, sprite.Glyph, nil, style)
			}
		}
	}
}
