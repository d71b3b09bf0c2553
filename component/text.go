package component

// TextComponent is a UI text node
// Offsets are logical window pixels from the window's left and bottom edges
type TextComponent struct {
	Content string
	Font    string
	Left    float64
	Bottom  float64
}
