package component

// WallSide identifies which boundary a wall encloses
type WallSide uint8

const (
	WallTop WallSide = iota
	WallLeft
	WallRight
)

// WallComponent marks a static playfield boundary
type WallComponent struct {
	Side WallSide
}
