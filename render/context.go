package render

import (
	"time"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	GameTime    time.Time
	FrameNumber int64
	IsPaused    bool

	Camera Camera
}
