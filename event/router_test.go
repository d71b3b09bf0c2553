package event

import "testing"

type recordingHandler struct {
	types []EventType
	seen  []GameEvent
}

func (h *recordingHandler) HandleEvent(_ *int, ev GameEvent) {
	h.seen = append(h.seen, ev)
}

func (h *recordingHandler) EventTypes() []EventType {
	return h.types
}

func TestRouterBroadcastsToAllHandlers(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*int](q)

	score := &recordingHandler{types: []EventType{EventBallHit}}
	audio := &recordingHandler{types: []EventType{EventBallHit}}
	other := &recordingHandler{types: []EventType{EventBrickDestroyed}}
	r.Register(score)
	r.Register(audio)
	r.Register(other)

	if r.HandlerCount(EventBallHit) != 2 {
		t.Fatalf("Expected 2 BallHit handlers, got %d", r.HandlerCount(EventBallHit))
	}

	q.Push(GameEvent{Type: EventBallHit, Payload: &BallHitPayload{Destroyed: false}})
	q.Push(GameEvent{Type: EventBallHit, Payload: &BallHitPayload{Destroyed: true}})

	var ctx int
	if n := r.DispatchAll(&ctx); n != 2 {
		t.Errorf("Expected 2 events dispatched, got %d", n)
	}

	if len(score.seen) != 2 || len(audio.seen) != 2 {
		t.Errorf("Expected both BallHit handlers to see 2 events, got %d and %d", len(score.seen), len(audio.seen))
	}
	if len(other.seen) != 0 {
		t.Errorf("Expected BrickDestroyed handler to see nothing, got %d", len(other.seen))
	}

	p, ok := score.seen[1].Payload.(*BallHitPayload)
	if !ok || !p.Destroyed {
		t.Error("Expected second event payload to report destroyed")
	}
}

func TestRouterDropsUnhandled(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*int](q)

	q.Push(GameEvent{Type: EventBrickDestroyed})
	var ctx int
	if n := r.DispatchAll(&ctx); n != 1 {
		t.Errorf("Expected unhandled event to still be consumed, got %d", n)
	}
	if q.Len() != 0 {
		t.Errorf("Expected queue drained, got %d", q.Len())
	}
}

func TestEventTypeString(t *testing.T) {
	if EventBallHit.String() != "BallHit" {
		t.Errorf("Unexpected name %q", EventBallHit.String())
	}
	if EventType(999).String() != "Unknown" {
		t.Errorf("Unexpected name %q", EventType(999).String())
	}
}
