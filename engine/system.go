package engine

// System is a unit of per-frame game logic
type System interface {
	Update()
	Priority() int // Lower values run first
}
