package parameter

import "time"

// Score text placement in logical window pixels, measured from the window's bottom-left
const (
	ScoreLeftOffset   = 35.0
	ScoreBottomMargin = 20.0
	ScoreFontSize     = 20.0
	ScorePrefix       = "Score: "
	PausedBanner      = "PAUSED"
	WindowTitle       = "BlockSmash"
)

// Input
const (
	// KeyHoldWindow is how long a key counts as held after its last terminal event
	KeyHoldWindow = 150 * time.Millisecond
)
