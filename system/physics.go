package system

import (
	"github.com/lixenwraith/blocksmash/engine"
	"github.com/lixenwraith/blocksmash/parameter"
)

// PhysicsSystem advances the physics space by the frame delta
type PhysicsSystem struct {
	engine.SystemBase
}

// NewPhysicsSystem creates the physics step system
func NewPhysicsSystem(world *engine.World) engine.System {
	return &PhysicsSystem{SystemBase: engine.NewSystemBase(world)}
}

// Priority returns the system's priority
func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

// Update steps the space, a zero delta is skipped
func (s *PhysicsSystem) Update() {
	dt := s.Resource.Time.DeltaTime.Seconds()
	if dt <= 0 {
		return
	}
	s.Resource.Physics.Space.Step(dt)
}
