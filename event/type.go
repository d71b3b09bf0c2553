package event

// EventType represents the type of game event
type EventType int

const (
	// EventBallHit signals that the ball struck a tracked brick
	// Trigger: CollisionSystem on a recognized contact-stopped pair
	// Consumer: ScoreSystem, HitAudioSystem | Payload: *BallHitPayload
	EventBallHit EventType = iota + 1

	// EventBrickDestroyed signals that a brick reached zero hit-points and left the world
	// Trigger: CollisionSystem, after EventBallHit for the same contact
	// Consumer: Game (round bookkeeping, logging) | Payload: *BrickDestroyedPayload
	EventBrickDestroyed
)

// String returns the name of the event type for logs
func (t EventType) String() string {
	switch t {
	case EventBallHit:
		return "BallHit"
	case EventBrickDestroyed:
		return "BrickDestroyed"
	default:
		return "Unknown"
	}
}

// GameEvent is a single queued event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
