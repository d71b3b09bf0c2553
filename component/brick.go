package component

// BrickComponent marks a destructible brick
// HitPoints only ever decreases; the brick leaves the world when it reaches zero
type BrickComponent struct {
	HitPoints int
}

// Alive reports whether the brick can still be matched by a contact
func (b BrickComponent) Alive() bool {
	return b.HitPoints > 0
}
