package component

// BallComponent marks the dynamic ball
type BallComponent struct{}
