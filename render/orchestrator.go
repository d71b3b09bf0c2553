package render

import (
	"github.com/gdamore/tcell/v2"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen      tcell.Screen
	camera      Camera
	worldWidth  float64
	worldHeight float64
	renderers   []rendererEntry
	regCount    int
}

// NewRenderOrchestrator creates an orchestrator projecting a world of the given size onto screen
func NewRenderOrchestrator(screen tcell.Screen, worldWidth, worldHeight float64) *RenderOrchestrator {
	o := &RenderOrchestrator{
		screen:      screen,
		worldWidth:  worldWidth,
		worldHeight: worldHeight,
		renderers:   make([]rendererEntry, 0, 8),
	}
	o.Resize()
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize recomputes the projection from the current screen size
func (o *RenderOrchestrator) Resize() {
	w, h := o.screen.Size()
	o.camera = NewCamera(o.worldWidth, o.worldHeight, w, h)
}

// Sync repaints the whole terminal after a resize and refits the camera
func (o *RenderOrchestrator) Sync() {
	o.screen.Sync()
	o.Resize()
}

// Camera returns the current projection
func (o *RenderOrchestrator) Camera() Camera {
	return o.camera
}

// RenderFrame clears the screen, runs every visible renderer in order and shows the result
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	ctx.Camera = o.camera
	o.screen.Clear()

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.screen)
	}

	o.screen.Show()
}
