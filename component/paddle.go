package component

// PaddleComponent marks the player paddle
type PaddleComponent struct {
	Step int // Horizontal distance moved per frame while a direction is held
}
