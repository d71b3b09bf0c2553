package system

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/blocksmash/component"
	"github.com/lixenwraith/blocksmash/config"
	"github.com/lixenwraith/blocksmash/parameter"
)

func TestSetupWorldPlacesEverything(t *testing.T) {
	w := newTestWorld(1)
	l := SetupWorld(w)

	if got := len(l.Bricks); got != 35 {
		t.Errorf("bricks = %d, want 35", got)
	}
	// paddle + ball + 3 walls + 35 bricks + score text
	if got := w.EntityCount(); got != 41 {
		t.Errorf("EntityCount = %d, want 41", got)
	}
	if got := spaceOf(w).Count(); got != 40 {
		t.Errorf("physics colliders = %d, want 40", got)
	}

	for _, e := range l.Bricks {
		b, ok := w.Components.Brick.Get(e)
		if !ok || b.HitPoints != 3 {
			t.Fatalf("brick %v = %+v, %v; want 3 hit-points", e, b, ok)
		}
	}

	x, y, ok := spaceOf(w).Position(colliderOf(w, l.Paddle))
	if !ok || x != 0 || y != -300 {
		t.Errorf("paddle at (%v, %v), want (0, -300)", x, y)
	}

	sides := map[component.WallSide]bool{}
	for _, e := range l.Walls {
		wall, ok := w.Components.Wall.Get(e)
		if !ok {
			t.Fatalf("wall %v missing component", e)
		}
		sides[wall.Side] = true
	}
	if len(sides) != 3 {
		t.Errorf("wall sides = %v, want top, left and right", sides)
	}

	text, ok := w.Components.Text.Get(l.Score)
	if !ok {
		t.Fatal("score text missing")
	}
	if text.Content != "Score: 0" || text.Left != 35 || text.Bottom != 680 {
		t.Errorf("score text = %+v", text)
	}
}

func TestSetupWorldBrickGrid(t *testing.T) {
	w := newTestWorld(1)
	l := SetupWorld(w)

	// Column-major from (-3, -2): first brick is bottom-left, last is top-right
	tests := []struct {
		idx  int
		x, y float64
	}{
		{0, -300, -80},
		{4, -300, 180},
		{17, 0, 50},
		{34, 300, 180},
	}
	for _, tt := range tests {
		x, y, ok := spaceOf(w).Position(colliderOf(w, l.Bricks[tt.idx]))
		if !ok || x != tt.x || y != tt.y {
			t.Errorf("brick %d at (%v, %v), want (%v, %v)", tt.idx, x, y, tt.x, tt.y)
		}
	}
}

func TestSetupWorldDeterministicForSeed(t *testing.T) {
	velocity := func(seed int64) (float64, float64) {
		w := newTestWorld(seed)
		l := SetupWorld(w)
		vx, vy, _ := spaceOf(w).Velocity(colliderOf(w, l.Ball))
		return vx, vy
	}

	ax, ay := velocity(42)
	bx, by := velocity(42)
	if ax != bx || ay != by {
		t.Errorf("same seed gave (%v, %v) and (%v, %v)", ax, ay, bx, by)
	}
}

func TestBallSpawnsBelowTopWall(t *testing.T) {
	w := newTestWorld(3)
	l := SetupWorld(w)

	_, y, _ := spaceOf(w).Position(colliderOf(w, l.Ball))
	limit := parameter.TopWallY - parameter.TopWallHalfHeight - parameter.BallRadius
	if y > limit {
		t.Errorf("ball y = %v overlaps top wall (limit %v)", y, limit)
	}
}

func TestBallVelocityRanges(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	cfg := config.Default().Ball

	seenX := map[float64]bool{}
	seenY := map[float64]bool{}
	for i := 0; i < 20000; i++ {
		vx, vy := BallVelocity(r, cfg)
		if vx < -100 || vx > 100 {
			t.Fatalf("vx = %v out of [-100, 100]", vx)
		}
		if vy < -30 || vy > -5 {
			t.Fatalf("vy = %v out of [-30, -5]", vy)
		}
		if vx != float64(int(vx)) || vy != float64(int(vy)) {
			t.Fatalf("non-integer velocity (%v, %v)", vx, vy)
		}
		seenX[vx] = true
		seenY[vy] = true
	}

	// Both ends are inclusive
	for _, v := range []float64{-100, 100} {
		if !seenX[v] {
			t.Errorf("vx bound %v never drawn", v)
		}
	}
	for _, v := range []float64{-30, -5} {
		if !seenY[v] {
			t.Errorf("vy bound %v never drawn", v)
		}
	}
}
