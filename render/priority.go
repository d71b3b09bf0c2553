package render

// RenderPriority orders renderers within a frame, lower first
type RenderPriority int

// Layers are spaced so a renderer can slot between two of them
const (
	PriorityBackground RenderPriority = 0
	PriorityWall       RenderPriority = 100
	PriorityEntities   RenderPriority = 200
	PriorityUI         RenderPriority = 300
	PriorityOverlay    RenderPriority = 400
)
