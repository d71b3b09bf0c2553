package game

import (
	"log"

	"github.com/lixenwraith/blocksmash/engine"
	"github.com/lixenwraith/blocksmash/event"
)

// roundTracker logs brick removals and notes when the grid is empty
type roundTracker struct {
	destroyed int
	cleared   bool
}

func (r *roundTracker) EventTypes() []event.EventType {
	return []event.EventType{event.EventBrickDestroyed}
}

func (r *roundTracker) HandleEvent(_ *engine.World, ev event.GameEvent) {
	payload, ok := ev.Payload.(*event.BrickDestroyedPayload)
	if !ok {
		return
	}
	r.destroyed++
	log.Printf("game: brick %d destroyed at frame %d, %d remaining", payload.Entity.Index(), ev.Frame, payload.Remaining)
	if payload.Remaining == 0 && !r.cleared {
		r.cleared = true
		log.Printf("game: all bricks cleared")
	}
}
