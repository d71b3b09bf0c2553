package system

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/blocksmash/component"
	"github.com/lixenwraith/blocksmash/config"
	"github.com/lixenwraith/blocksmash/core"
	"github.com/lixenwraith/blocksmash/engine"
	"github.com/lixenwraith/blocksmash/parameter"
	"github.com/lixenwraith/blocksmash/physics"
)

// Layout names the entities placed by SetupWorld
type Layout struct {
	Paddle core.Entity
	Ball   core.Entity
	Walls  [3]core.Entity // Top, left, right
	Bricks []core.Entity
	Score  core.Entity
}

// SetupWorld places the paddle, ball, boundary walls, brick grid and score text
// Requires the config, physics and rand resources; runs once per world
func SetupWorld(w *engine.World) Layout {
	res := engine.GetResourceStore(w)
	cfg := res.Config.Config
	space := res.Physics.Space

	var l Layout
	l.Paddle = spawnPaddle(w, space, cfg)
	l.Ball = spawnBall(w, space, cfg, res.Rand.Rand)
	l.Walls = spawnWalls(w, space)
	l.Bricks = spawnBricks(w, space, cfg)
	l.Score = spawnScore(w, cfg)
	return l
}

// spawnBody creates an entity owning one collider and its sprite
func spawnBody(w *engine.World, space *physics.Space, bd physics.BodyDesc, cd physics.ColliderDesc, sprite string) core.Entity {
	e := w.CreateEntity()
	h := space.Add(bd, cd)

	hw, hh := cd.HalfWidth, cd.HalfHeight
	if cd.Shape == physics.ShapeCircle {
		hw, hh = cd.Radius, cd.Radius
	}
	w.Components.Body.Set(e, component.BodyComponent{Collider: h})
	w.Components.Sprite.Set(e, component.SpriteComponent{Path: sprite, HalfWidth: hw, HalfHeight: hh})
	return e
}

func spawnPaddle(w *engine.World, space *physics.Space, cfg *config.Config) core.Entity {
	e := spawnBody(w, space,
		physics.BodyDesc{
			Kind:         physics.BodyKinematic,
			X:            parameter.PaddleX,
			Y:            cfg.Field.PaddleY,
			LockRotation: true,
		},
		physics.ColliderDesc{
			Shape:       physics.ShapeBox,
			HalfWidth:   cfg.Paddle.HalfWidth,
			HalfHeight:  cfg.Paddle.HalfHeight,
			Friction:    parameter.SurfaceFriction,
			Restitution: parameter.SurfaceElasticity,
		},
		parameter.SpritePaddle,
	)
	w.Components.Paddle.Set(e, component.PaddleComponent{Step: cfg.Paddle.Step})
	return e
}

// BallVelocity draws an initial velocity, each component an integer uniform over its inclusive range
func BallVelocity(r *rand.Rand, cfg config.BallConfig) (vx, vy float64) {
	vx = float64(cfg.VelXMin + r.Intn(cfg.VelXMax-cfg.VelXMin+1))
	vy = float64(cfg.VelYMin + r.Intn(cfg.VelYMax-cfg.VelYMin+1))
	return vx, vy
}

// ballSpawnY keeps the ball clear of the top wall's interior
func ballSpawnY(cfg config.BallConfig) float64 {
	return math.Min(cfg.StartY, parameter.TopWallY-parameter.TopWallHalfHeight-cfg.Radius)
}

func spawnBall(w *engine.World, space *physics.Space, cfg *config.Config, r *rand.Rand) core.Entity {
	vx, vy := BallVelocity(r, cfg.Ball)
	e := spawnBody(w, space,
		physics.BodyDesc{
			Kind:         physics.BodyDynamic,
			X:            cfg.Ball.StartX,
			Y:            ballSpawnY(cfg.Ball),
			VelX:         vx,
			VelY:         vy,
			Mass:         parameter.BallMass,
			GravityScale: cfg.Ball.GravityScale,
			MaxSpeed:     cfg.Ball.MaxSpeed,
		},
		physics.ColliderDesc{
			Shape:          physics.ShapeCircle,
			Radius:         cfg.Ball.Radius,
			Friction:       parameter.SurfaceFriction,
			Restitution:    cfg.Ball.Restitution,
			ReportContacts: true,
		},
		parameter.SpriteBall,
	)
	w.Components.Ball.Set(e, component.BallComponent{})
	return e
}

func spawnWalls(w *engine.World, space *physics.Space) [3]core.Entity {
	walls := [3]struct {
		side   component.WallSide
		x, y   float64
		hw, hh float64
		sprite string
	}{
		{component.WallTop, parameter.TopWallX, parameter.TopWallY,
			parameter.TopWallHalfWidth, parameter.TopWallHalfHeight, parameter.SpriteHorizontalBoundary},
		{component.WallLeft, -parameter.SideWallX, parameter.SideWallY,
			parameter.SideWallHalfWidth, parameter.SideWallHalfHeight, parameter.SpriteVerticalBoundary},
		{component.WallRight, parameter.SideWallX, parameter.SideWallY,
			parameter.SideWallHalfWidth, parameter.SideWallHalfHeight, parameter.SpriteVerticalBoundary},
	}

	var out [3]core.Entity
	for i, wd := range walls {
		e := spawnBody(w, space,
			physics.BodyDesc{Kind: physics.BodyStatic, X: wd.x, Y: wd.y},
			physics.ColliderDesc{
				Shape:       physics.ShapeBox,
				HalfWidth:   wd.hw,
				HalfHeight:  wd.hh,
				Friction:    parameter.SurfaceFriction,
				Restitution: parameter.SurfaceElasticity,
			},
			wd.sprite,
		)
		w.Components.Wall.Set(e, component.WallComponent{Side: wd.side})
		out[i] = e
	}
	return out
}

// spawnBricks lays the grid column-major, indices -Half..+Half on each axis
func spawnBricks(w *engine.World, space *physics.Space, cfg *config.Config) []core.Entity {
	b := cfg.Bricks
	bricks := make([]core.Entity, 0, (2*b.HalfColumns+1)*(2*b.HalfRows+1))

	for col := -b.HalfColumns; col <= b.HalfColumns; col++ {
		for row := -b.HalfRows; row <= b.HalfRows; row++ {
			e := spawnBody(w, space,
				physics.BodyDesc{
					Kind:         physics.BodyKinematic,
					X:            float64(col)*b.SpacingX + b.OriginX,
					Y:            float64(row)*b.SpacingY + b.OriginY,
					LockRotation: true,
				},
				physics.ColliderDesc{
					Shape:       physics.ShapeBox,
					HalfWidth:   b.HalfWidth,
					HalfHeight:  b.HalfHeight,
					Friction:    parameter.SurfaceFriction,
					Restitution: parameter.SurfaceElasticity,
				},
				parameter.SpriteBrick,
			)
			w.Components.Brick.Set(e, component.BrickComponent{HitPoints: b.HitPoints})
			bricks = append(bricks, e)
		}
	}
	return bricks
}

func spawnScore(w *engine.World, cfg *config.Config) core.Entity {
	e := w.CreateEntity()
	w.Components.Score.Set(e, component.ScoreComponent{})
	w.Components.Text.Set(e, component.TextComponent{
		Content: ScoreText(0),
		Font:    parameter.FontBlocks,
		Left:    parameter.ScoreLeftOffset,
		Bottom:  cfg.Window.Height - parameter.ScoreBottomMargin,
	})
	return e
}
