package engine

import (
	"sync"

	"github.com/lixenwraith/blocksmash/core"
)

// World is the entity arena plus its component stores, resources and systems
// Entity slots are recycled; each reuse bumps the slot generation so stale handles never validate
type World struct {
	mu          sync.RWMutex
	generations []uint32 // Current generation per slot
	alive       []bool
	free        []uint32 // Recyclable slot indices
	liveCount   int

	Resources  *ResourceStore
	Components ComponentStore
	stores     []AnyStore

	systems []System
}

// NewWorld creates an empty world
func NewWorld() *World {
	w := &World{
		generations: make([]uint32, 0, 64),
		alive:       make([]bool, 0, 64),
		Resources:   NewResourceStore(),
		Components:  newComponentStore(),
		systems:     make([]System, 0),
	}
	w.stores = w.Components.all()
	return w
}

// CreateEntity issues a new live handle, reusing a free slot when one exists
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
		w.generations[idx]++
		w.alive[idx] = true
	} else {
		idx = uint32(len(w.generations))
		w.generations = append(w.generations, 1)
		w.alive = append(w.alive, true)
	}
	w.liveCount++
	return core.NewEntity(idx, w.generations[idx])
}

// IsAlive reports whether the handle names a live entity of the current slot generation
func (w *World) IsAlive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.isAliveLocked(e)
}

func (w *World) isAliveLocked(e core.Entity) bool {
	idx := e.Index()
	if e.IsNull() || int(idx) >= len(w.generations) {
		return false
	}
	return w.alive[idx] && w.generations[idx] == e.Generation()
}

// DestroyEntity removes all components of a live entity and frees its slot
// Returns false for stale or unknown handles, which are ignored
func (w *World) DestroyEntity(e core.Entity) bool {
	w.mu.Lock()
	if !w.isAliveLocked(e) {
		w.mu.Unlock()
		return false
	}
	idx := e.Index()
	w.alive[idx] = false
	w.free = append(w.free, idx)
	w.liveCount--
	w.mu.Unlock()

	for _, s := range w.stores {
		s.Remove(e)
	}
	return true
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.liveCount
}

// Clear removes all entities and components, slot generations survive so old handles stay stale
func (w *World) Clear() {
	w.mu.Lock()
	for i := range w.alive {
		if w.alive[i] {
			w.alive[i] = false
			w.free = append(w.free, uint32(i))
		}
	}
	w.liveCount = 0
	w.mu.Unlock()

	for _, s := range w.stores {
		s.Clear()
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N, stable for equal priorities)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially in priority order
func (w *World) Update() {
	for _, system := range w.Systems() {
		system.Update()
	}
}
