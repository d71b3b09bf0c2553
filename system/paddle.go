package system

import (
	"github.com/lixenwraith/blocksmash/engine"
	"github.com/lixenwraith/blocksmash/input"
	"github.com/lixenwraith/blocksmash/parameter"
)

// PaddleSystem moves paddles horizontally from held-key state
type PaddleSystem struct {
	engine.SystemBase
}

// NewPaddleSystem creates a paddle controller
func NewPaddleSystem(world *engine.World) engine.System {
	return &PaddleSystem{SystemBase: engine.NewSystemBase(world)}
}

// Priority returns the system's priority
func (s *PaddleSystem) Priority() int {
	return parameter.PriorityPaddle
}

// Update sets each paddle's next kinematic position one step toward the held direction
func (s *PaddleSystem) Update() {
	if s.Resource.Input == nil || s.Resource.Input.Keys == nil {
		return
	}
	dir := input.Direction(s.Resource.Input.Keys, s.Resource.Time.RealTime)
	if dir == 0 {
		return
	}

	field := s.Resource.Config.Config.Field
	space := s.Resource.Physics.Space

	for _, e := range s.Component.Paddle.All() {
		paddle, ok := s.Component.Paddle.Get(e)
		if !ok {
			continue
		}
		body, ok := s.Component.Body.Get(e)
		if !ok {
			continue
		}
		x, _, ok := space.Position(body.Collider)
		if !ok {
			continue
		}
		next := ClampPaddleX(x+float64(dir*paddle.Step), field.PaddleBound)
		space.SetNextKinematicPosition(body.Collider, next, field.PaddleY)
	}
}

// ClampPaddleX limits x to [-bound, bound]
func ClampPaddleX(x, bound float64) float64 {
	if x < -bound {
		return -bound
	}
	if x > bound {
		return bound
	}
	return x
}
