package component

// SpriteComponent names the sprite asset drawn over the entity's collider extents
type SpriteComponent struct {
	Path       string
	HalfWidth  float64
	HalfHeight float64
}
