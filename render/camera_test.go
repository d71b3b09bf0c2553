package render

import "testing"

func TestCameraExactFit(t *testing.T) {
	// 80 columns, 35 rows of 2:1 cells is exactly 800x700 at 0.1 columns per unit
	c := NewCamera(800, 700, 80, 35)
	if c.Scale() != 0.1 {
		t.Fatalf("scale = %v, want 0.1", c.Scale())
	}

	tests := []struct {
		name     string
		x, y     float64
		col, row float64
	}{
		{"center", 0, 0, 40, 17.5},
		{"top-left", -400, 350, 0, 0},
		{"bottom-right", 400, -350, 80, 35},
	}
	for _, tt := range tests {
		col, row := c.ToScreen(tt.x, tt.y)
		if col != tt.col || row != tt.row {
			t.Errorf("%s: ToScreen = (%v, %v), want (%v, %v)", tt.name, col, row, tt.col, tt.row)
		}
	}

	x0, y0, x1, y1 := c.Field()
	if x0 != 0 || y0 != 0 || x1 != 80 || y1 != 35 {
		t.Errorf("Field = (%d,%d)-(%d,%d), want full screen", x0, y0, x1, y1)
	}
}

func TestCameraLetterbox(t *testing.T) {
	tests := []struct {
		name           string
		w, h           int
		wantX0, wantY0 int
		wantX1, wantY1 int
	}{
		// Wide terminal: height-bound, bars left and right
		{"pillarbox", 200, 35, 60, 0, 140, 35},
		// Tall terminal: width-bound, bars top and bottom
		{"letterbox", 80, 55, 0, 10, 80, 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(800, 700, tt.w, tt.h)
			x0, y0, x1, y1 := c.Field()
			if x0 != tt.wantX0 || y0 != tt.wantY0 || x1 != tt.wantX1 || y1 != tt.wantY1 {
				t.Errorf("Field = (%d,%d)-(%d,%d), want (%d,%d)-(%d,%d)",
					x0, y0, x1, y1, tt.wantX0, tt.wantY0, tt.wantX1, tt.wantY1)
			}
		})
	}
}

func TestCameraRectMinimumOneCell(t *testing.T) {
	c := NewCamera(800, 700, 80, 35)
	x0, y0, x1, y1 := c.Rect(0, -300, 35, 5)
	if x1-x0 < 1 || y1-y0 < 1 {
		t.Fatalf("empty rect (%d,%d)-(%d,%d)", x0, y0, x1, y1)
	}
	if x0 != 36 || x1 != 44 || y0 != 32 || y1 != 33 {
		t.Errorf("paddle rect = (%d,%d)-(%d,%d), want (36,32)-(44,33)", x0, y0, x1, y1)
	}
}

func TestCameraWindowToScreen(t *testing.T) {
	c := NewCamera(800, 700, 80, 35)
	col, row := c.WindowToScreen(35, 680)
	if col != 3.5 || row != 1 {
		t.Errorf("WindowToScreen = (%v, %v), want (3.5, 1)", col, row)
	}
}

func TestCameraDegenerateScreen(t *testing.T) {
	c := NewCamera(800, 700, 0, 0)
	if c.Scale() != 0 {
		t.Errorf("scale = %v, want 0", c.Scale())
	}
	x0, y0, x1, y1 := c.Clip(c.Field())
	if x1 > x0 && y1 > y0 {
		t.Error("degenerate screen should clip to nothing")
	}
}
