package engine

import (
	"fmt"
	"reflect"
	"sync"
)

// ResourceStore holds world-wide singletons keyed by their static type
// Register pointer types so systems that cached a resource see later in-place updates
type ResourceStore struct {
	mu    sync.RWMutex
	items map[reflect.Type]any
}

func NewResourceStore() *ResourceStore {
	return &ResourceStore{items: make(map[reflect.Type]any)}
}

// AddResource stores resource under T, replacing any previous value
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	rs.items[reflect.TypeFor[T]()] = resource
	rs.mu.Unlock()
}

// GetResource looks up the resource registered under T
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	v, ok := rs.items[reflect.TypeFor[T]()]
	rs.mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// MustGetResource is GetResource for resources the world cannot run without
func MustGetResource[T any](rs *ResourceStore) T {
	v, ok := GetResource[T](rs)
	if !ok {
		panic(fmt.Sprintf("Required resource not found: %v", reflect.TypeFor[T]()))
	}
	return v
}
