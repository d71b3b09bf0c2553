package core

// Entity is a generational handle into the world arena
// Low 32 bits: slot index, high 32 bits: slot generation
// Generations start at 1 so the zero value never names a live entity
type Entity uint64

// NullEntity is the zero handle, never alive
const NullEntity Entity = 0

// NewEntity packs a slot index and generation into a handle
func NewEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the arena slot of the handle
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot generation the handle was issued for
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// IsNull reports whether the handle is the zero handle
func (e Entity) IsNull() bool {
	return e == NullEntity
}
