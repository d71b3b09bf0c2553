package system

import (
	"github.com/lixenwraith/blocksmash/component"
	"github.com/lixenwraith/blocksmash/core"
	"github.com/lixenwraith/blocksmash/engine"
	"github.com/lixenwraith/blocksmash/event"
	"github.com/lixenwraith/blocksmash/parameter"
	"github.com/lixenwraith/blocksmash/physics"
)

// CollisionSystem turns separated ball contacts into brick damage
// Bricks step Alive(n) -> Alive(n-1) per recognized contact and leave the world from Alive(1)
type CollisionSystem struct {
	engine.SystemBase

	// Reused per frame
	bricks map[physics.ColliderHandle]core.Entity
}

// NewCollisionSystem creates the collision resolver
func NewCollisionSystem(world *engine.World) engine.System {
	return &CollisionSystem{
		SystemBase: engine.NewSystemBase(world),
		bricks:     make(map[physics.ColliderHandle]core.Entity),
	}
}

// Priority returns the system's priority
func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

// Update drains the contact queue; every event is consumed whether or not it matches
func (s *CollisionSystem) Update() {
	contacts := s.Resource.Physics.Space.DrainContacts()
	if len(contacts) == 0 {
		return
	}

	clear(s.bricks)
	for _, e := range s.Component.Brick.All() {
		if body, ok := s.Component.Body.Get(e); ok {
			s.bricks[body.Collider] = e
		}
	}

	for _, c := range contacts {
		if c.Phase != physics.ContactStopped {
			continue
		}
		// Only the second collider is matched, a brick reported first is never damaged
		e, ok := s.bricks[c.B]
		if !ok {
			continue
		}
		s.hit(e, c.B)
	}
}

func (s *CollisionSystem) hit(e core.Entity, collider physics.ColliderHandle) {
	brick, ok := s.Component.Brick.Get(e)
	if !ok || !brick.Alive() {
		return
	}
	frame := s.Resource.Time.FrameNumber

	if brick.HitPoints == 1 {
		s.Resource.Physics.Space.Remove(collider)
		s.World.DestroyEntity(e)
		delete(s.bricks, collider)

		s.Resource.Event.Push(event.EventBallHit, &event.BallHitPayload{Destroyed: true}, frame)
		s.Resource.Event.Push(event.EventBrickDestroyed, &event.BrickDestroyedPayload{
			Entity:    e,
			Remaining: s.Component.Brick.Count(),
		}, frame)
		return
	}

	s.Component.Brick.Set(e, component.BrickComponent{HitPoints: brick.HitPoints - 1})
	s.Resource.Event.Push(event.EventBallHit, &event.BallHitPayload{Destroyed: false}, frame)
}
