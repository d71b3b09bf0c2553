package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameRate is the default frames per second
	FrameRate = 60

	// FrameUpdateInterval is the default frame interval
	FrameUpdateInterval = time.Second / FrameRate

	// InputChannelSize is the buffer between the terminal poller and the frame loop
	InputChannelSize = 256
)

// ECS & Resources Limits
const (
	// EventQueueSize bounds the events pending between two dispatches
	EventQueueSize = 256

	// ContactQueueSize is the initial capacity of the per-frame physics contact queue
	ContactQueueSize = 64
)
