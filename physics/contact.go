package physics

import (
	"github.com/jakecoffman/cp"
)

// ContactPhase tags a contact event
type ContactPhase uint8

const (
	ContactStarted ContactPhase = iota // Colliders began touching
	ContactStopped                     // Colliders that were touching separated
)

// ContactEvent is a transient contact record, consumed once
// A is the reporting collider, B the collider it touched
type ContactEvent struct {
	A, B  ColliderHandle
	Phase ContactPhase
}

func (s *Space) record(a, b *cp.Shape, phase ContactPhase) {
	ha, _ := a.UserData.(ColliderHandle)
	hb, _ := b.UserData.(ColliderHandle)
	s.contacts = append(s.contacts, ContactEvent{A: ha, B: hb, Phase: phase})
}

// PushContact queues a contact event as if the space had produced it
// Used by replays and tests that drive the pipeline without simulating
func (s *Space) PushContact(ev ContactEvent) {
	s.contacts = append(s.contacts, ev)
}

// DrainContacts returns every queued contact in FIFO order and empties the queue
func (s *Space) DrainContacts() []ContactEvent {
	if len(s.contacts) == 0 {
		return nil
	}
	out := s.contacts
	s.contacts = make([]ContactEvent, 0, cap(out))
	return out
}

// PendingContacts returns the number of queued contacts
func (s *Space) PendingContacts() int {
	return len(s.contacts)
}
