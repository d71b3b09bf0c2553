package event

import (
	"sync"

	"github.com/lixenwraith/blocksmash/parameter"
)

// EventQueue is a bounded FIFO of events pushed during a frame and drained once by the router
// When full the oldest event is dropped and counted
type EventQueue struct {
	mu      sync.Mutex
	ring    [parameter.EventQueueSize]GameEvent
	start   int // Index of the oldest pending event
	count   int
	dropped uint64
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends ev, evicting the oldest pending event when the ring is full
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.count == len(eq.ring) {
		eq.start = (eq.start + 1) % len(eq.ring)
		eq.count--
		eq.dropped++
	}
	eq.ring[(eq.start+eq.count)%len(eq.ring)] = ev
	eq.count++
}

// Consume returns every pending event oldest first and empties the queue
// Returns nil when nothing is pending
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.count == 0 {
		return nil
	}
	out := make([]GameEvent, eq.count)
	for i := range out {
		out[i] = eq.ring[(eq.start+i)%len(eq.ring)]
		eq.ring[(eq.start+i)%len(eq.ring)] = GameEvent{}
	}
	eq.start, eq.count = 0, 0
	return out
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.count
}

// Dropped returns how many events were evicted by overflow since creation
func (eq *EventQueue) Dropped() uint64 {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.dropped
}
