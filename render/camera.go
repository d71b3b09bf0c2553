package render

import "math"

// CellAspect is how many times taller a terminal cell is than it is wide
const CellAspect = 2.0

// Camera projects the logical window (origin at center, y up) onto terminal cells
// The window is scaled uniformly to fit, then letterboxed and centered
type Camera struct {
	WorldWidth, WorldHeight float64
	ScreenWidth             int
	ScreenHeight            int

	scale      float64 // Columns per world unit
	offX, offY float64 // Field top-left in cells
}

// NewCamera fits a world of the given size into a screen of the given cell size
func NewCamera(worldWidth, worldHeight float64, screenWidth, screenHeight int) Camera {
	c := Camera{
		WorldWidth:   worldWidth,
		WorldHeight:  worldHeight,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
	if worldWidth <= 0 || worldHeight <= 0 || screenWidth <= 0 || screenHeight <= 0 {
		return c
	}

	c.scale = math.Min(float64(screenWidth)/worldWidth, float64(screenHeight)*CellAspect/worldHeight)
	c.offX = (float64(screenWidth) - worldWidth*c.scale) / 2
	c.offY = (float64(screenHeight) - worldHeight*c.scale/CellAspect) / 2
	return c
}

// Scale returns columns per world unit, zero for a degenerate screen
func (c Camera) Scale() float64 {
	return c.scale
}

// ToScreen maps a world point to fractional cell coordinates
func (c Camera) ToScreen(x, y float64) (col, row float64) {
	col = c.offX + (x+c.WorldWidth/2)*c.scale
	row = c.offY + (c.WorldHeight/2-y)*c.scale/CellAspect
	return col, row
}

// WindowToScreen maps a point measured from the window's bottom-left corner
func (c Camera) WindowToScreen(left, bottom float64) (col, row float64) {
	return c.ToScreen(left-c.WorldWidth/2, bottom-c.WorldHeight/2)
}

// Rect returns the half-open cell rectangle covering a world box, at least one cell in each axis
func (c Camera) Rect(x, y, halfWidth, halfHeight float64) (x0, y0, x1, y1 int) {
	l, t := c.ToScreen(x-halfWidth, y+halfHeight)
	r, b := c.ToScreen(x+halfWidth, y-halfHeight)

	x0, y0 = int(math.Floor(l)), int(math.Floor(t))
	x1, y1 = int(math.Ceil(r)), int(math.Ceil(b))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// Field returns the half-open cell rectangle of the whole logical window
func (c Camera) Field() (x0, y0, x1, y1 int) {
	return c.Rect(0, 0, c.WorldWidth/2, c.WorldHeight/2)
}

// Clip limits a rectangle to the screen
func (c Camera) Clip(x0, y0, x1, y1 int) (int, int, int, int) {
	return max(x0, 0), max(y0, 0), min(x1, c.ScreenWidth), min(y1, c.ScreenHeight)
}
