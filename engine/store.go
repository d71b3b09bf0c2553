package engine

import (
	"sync"

	"github.com/lixenwraith/blocksmash/core"
)

// Store holds one component type as a sparse set over entity slots
// Values are packed densely; slot lookups check the full handle so a stale generation never matches
type Store[T any] struct {
	mu     sync.RWMutex
	slot   map[uint32]int // Entity index -> position in dense
	owners []core.Entity
	dense  []T
}

// NewStore creates an empty store for T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		slot:   make(map[uint32]int),
		owners: make([]core.Entity, 0, 64),
		dense:  make([]T, 0, 64),
	}
}

func (s *Store[T]) find(e core.Entity) (int, bool) {
	i, ok := s.slot[e.Index()]
	if !ok || s.owners[i] != e {
		return 0, false
	}
	return i, true
}

// Set attaches or replaces e's component
// A live value left by an older generation of the same slot is overwritten
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.slot[e.Index()]; ok {
		s.owners[i] = e
		s.dense[i] = val
		return
	}
	s.slot[e.Index()] = len(s.dense)
	s.owners = append(s.owners, e)
	s.dense = append(s.dense, val)
}

func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.find(e)
	if !ok {
		var zero T
		return zero, false
	}
	return s.dense[i], true
}

// Remove detaches e's component by swapping the last value into its place
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.find(e)
	if !ok {
		return
	}
	last := len(s.dense) - 1
	if i != last {
		s.dense[i] = s.dense[last]
		s.owners[i] = s.owners[last]
		s.slot[s.owners[i].Index()] = i
	}
	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.owners = s.owners[:last]
	delete(s.slot, e.Index())
}

func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.find(e)
	return ok
}

// All returns a copy of the owning entities in storage order
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Entity, len(s.owners))
	copy(out, s.owners)
	return out
}

func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.dense)
}

// Clear drops every component, keeping capacity
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.slot)
	clear(s.dense)
	s.owners = s.owners[:0]
	s.dense = s.dense[:0]
}
