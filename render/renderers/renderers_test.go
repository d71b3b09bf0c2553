package renderers

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"

	"github.com/lixenwraith/blocksmash/asset"
	"github.com/lixenwraith/blocksmash/component"
	"github.com/lixenwraith/blocksmash/engine"
	"github.com/lixenwraith/blocksmash/parameter"
	"github.com/lixenwraith/blocksmash/physics"
	"github.com/lixenwraith/blocksmash/render"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	s.SetSize(80, 35)
	t.Cleanup(s.Fini)
	return s
}

func renderCtx(paused bool) render.RenderContext {
	return render.RenderContext{IsPaused: paused, Camera: render.NewCamera(800, 700, 80, 35)}
}

type scene struct {
	world  *engine.World
	space  *physics.Space
	loader *asset.Loader
}

func newScene() *scene {
	s := &scene{
		world:  engine.NewWorld(),
		space:  physics.NewSpace(0, 0, 1),
		loader: asset.NewLoader(nil, beep.SampleRate(8000)),
	}
	return s
}

func (s *scene) paddle(x, y float64) {
	e := s.world.CreateEntity()
	h := s.space.Add(
		physics.BodyDesc{Kind: physics.BodyKinematic, X: x, Y: y, LockRotation: true},
		physics.ColliderDesc{Shape: physics.ShapeBox, HalfWidth: 35, HalfHeight: 5},
	)
	s.world.Components.Body.Set(e, component.BodyComponent{Collider: h})
	s.world.Components.Sprite.Set(e, component.SpriteComponent{Path: parameter.SpritePaddle, HalfWidth: 35, HalfHeight: 5})
	s.world.Components.Paddle.Set(e, component.PaddleComponent{Step: 8})
}

func TestBackgroundFillsField(t *testing.T) {
	screen := newSimScreen(t)
	NewBackgroundRenderer(asset.BackgroundColor).Render(renderCtx(false), screen)

	for _, pt := range [][2]int{{0, 0}, {79, 34}, {40, 17}} {
		_, _, style, _ := screen.GetContent(pt[0], pt[1])
		_, bg, _ := style.Decompose()
		if bg != asset.BackgroundColor {
			t.Errorf("cell %v bg = %v, want background", pt, bg)
		}
	}
}

func TestSpriteRendererDrawsPaddle(t *testing.T) {
	screen := newSimScreen(t)
	sc := newScene()
	sc.paddle(0, -300)

	r := NewSpriteRenderer(sc.world, sc.space, sc.loader, asset.BackgroundColor, Bodies)
	r.Render(renderCtx(false), screen)

	sprite, _ := sc.loader.Sprite(parameter.SpritePaddle)
	for x := 36; x < 44; x++ {
		ch, _, style, _ := screen.GetContent(x, 32)
		fg, _, _ := style.Decompose()
		if ch != sprite.Glyph || fg != sprite.Color {
			t.Fatalf("cell (%d, 32) = %q fg %v, want paddle", x, ch, fg)
		}
	}
	if ch, _, _, _ := screen.GetContent(35, 32); ch == sprite.Glyph {
		t.Error("paddle drawn past its left edge")
	}
	if ch, _, _, _ := screen.GetContent(40, 31); ch == sprite.Glyph {
		t.Error("paddle drawn above its top edge")
	}
}

func TestSpriteRendererDimsWhilePaused(t *testing.T) {
	screen := newSimScreen(t)
	sc := newScene()
	sc.paddle(0, -300)

	NewSpriteRenderer(sc.world, sc.space, sc.loader, asset.BackgroundColor, Bodies).Render(renderCtx(true), screen)

	sprite, _ := sc.loader.Sprite(parameter.SpritePaddle)
	_, _, style, _ := screen.GetContent(40, 32)
	fg, _, _ := style.Decompose()
	if fg == sprite.Color {
		t.Error("paused sprite should be dimmed")
	}
}

func TestSpriteRendererSkipsRemovedBody(t *testing.T) {
	screen := newSimScreen(t)
	sc := newScene()
	sc.paddle(0, -300)
	for _, e := range sc.world.Components.Body.All() {
		b, _ := sc.world.Components.Body.Get(e)
		sc.space.Remove(b.Collider)
	}

	NewSpriteRenderer(sc.world, sc.space, sc.loader, asset.BackgroundColor, Bodies).Render(renderCtx(false), screen)
	sprite, _ := sc.loader.Sprite(parameter.SpritePaddle)
	if ch, _, _, _ := screen.GetContent(40, 32); ch == sprite.Glyph {
		t.Error("entity without a live body was drawn")
	}
}

func TestTextRendererDrawsScore(t *testing.T) {
	screen := newSimScreen(t)
	sc := newScene()
	e := sc.world.CreateEntity()
	sc.world.Components.Text.Set(e, component.TextComponent{
		Content: "Score: 7",
		Font:    parameter.FontBlocks,
		Left:    parameter.ScoreLeftOffset,
		Bottom:  parameter.GameHeight - parameter.ScoreBottomMargin,
	})

	NewTextRenderer(sc.world, sc.loader, asset.BackgroundColor).Render(renderCtx(false), screen)

	got := make([]rune, 0, 8)
	for x := 3; x < 11; x++ {
		ch, _, _, _ := screen.GetContent(x, 1)
		got = append(got, ch)
	}
	if string(got) != "Score: 7" {
		t.Errorf("row 1 = %q, want %q", string(got), "Score: 7")
	}
}

func TestDrawStringClips(t *testing.T) {
	screen := newSimScreen(t)
	end := DrawString(screen, 76, 0, "abcdef", tcell.StyleDefault)
	if end != 82 {
		t.Errorf("end column = %d, want 82", end)
	}
	if ch, _, _, _ := screen.GetContent(79, 0); ch != 'd' {
		t.Errorf("last visible cell = %q, want 'd'", ch)
	}
	// Off-screen rows are ignored
	if end := DrawString(screen, 0, 40, "x", tcell.StyleDefault); end != 0 {
		t.Errorf("off-screen row end = %d, want 0", end)
	}
}

func TestPauseBanner(t *testing.T) {
	screen := newSimScreen(t)
	b := NewPauseBanner(parameter.PausedBanner)

	b.Render(renderCtx(false), screen)
	if ch, _, _, _ := screen.GetContent(40, 17); ch == 'U' {
		t.Fatal("banner drawn while running")
	}

	b.Render(renderCtx(true), screen)
	// " PAUSED " is 8 wide, centered at column 40 it starts at 36
	got := make([]rune, 0, 6)
	for x := 37; x < 43; x++ {
		ch, _, _, _ := screen.GetContent(x, 17)
		got = append(got, ch)
	}
	if string(got) != "PAUSED" {
		t.Errorf("banner = %q, want PAUSED", string(got))
	}
}
