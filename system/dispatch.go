package system

import (
	"github.com/lixenwraith/blocksmash/engine"
	"github.com/lixenwraith/blocksmash/event"
	"github.com/lixenwraith/blocksmash/parameter"
)

// DispatchSystem drains the event queue into its router once per frame
type DispatchSystem struct {
	world  *engine.World
	router *event.Router[*engine.World]
}

// NewDispatchSystem creates a dispatch phase for router
func NewDispatchSystem(world *engine.World, router *event.Router[*engine.World]) engine.System {
	return &DispatchSystem{world: world, router: router}
}

// Priority returns the system's priority
func (s *DispatchSystem) Priority() int {
	return parameter.PriorityDispatch
}

// Update broadcasts every pending event
func (s *DispatchSystem) Update() {
	s.router.DispatchAll(s.world)
}
