package parameter

// System execution priorities, lower values run first
const (
	PriorityPaddle    = 10
	PriorityPhysics   = 20
	PriorityCollision = 30
	PriorityDispatch  = 40
	PriorityScore     = 50
)

// PriorityAudio runs last, audio playback is event-driven and has no per-frame work
const PriorityAudio = 60
