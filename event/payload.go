package event

import (
	"github.com/lixenwraith/blocksmash/core"
)

// BallHitPayload reports one recognized brick contact
type BallHitPayload struct {
	Destroyed bool
}

// BrickDestroyedPayload names the brick that left the world
type BrickDestroyedPayload struct {
	Entity    core.Entity
	Remaining int // Bricks still standing after removal
}
