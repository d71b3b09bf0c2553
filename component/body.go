package component

import (
	"github.com/lixenwraith/blocksmash/physics"
)

// BodyComponent links an entity to its physics body and collider
// Every entity owns exactly one collider, so the collider handle names the body too
type BodyComponent struct {
	Collider physics.ColliderHandle
}
