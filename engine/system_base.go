package engine

// SystemBase bundles what every system reads: the world, the resource
// snapshot taken at construction, and the component stores
type SystemBase struct {
	World     *World
	Resource  Resource
	Component ComponentStore
}

// NewSystemBase must run after the world's resources are registered,
// since Resource is resolved once here
func NewSystemBase(w *World) SystemBase {
	return SystemBase{World: w, Resource: GetResourceStore(w), Component: w.Components}
}
