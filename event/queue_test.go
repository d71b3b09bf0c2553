package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/blocksmash/parameter"
)

func TestEventQueueFIFO(t *testing.T) {
	q := NewEventQueue()

	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventBallHit, Frame: int64(i)})
	}

	if q.Len() != 5 {
		t.Fatalf("Expected 5 pending events, got %d", q.Len())
	}

	events := q.Consume()
	if len(events) != 5 {
		t.Fatalf("Expected 5 events, got %d", len(events))
	}
	for i, ev := range events {
		if ev.Frame != int64(i) {
			t.Errorf("Event %d: expected frame %d, got %d", i, i, ev.Frame)
		}
	}

	if q.Len() != 0 {
		t.Errorf("Expected empty queue after consume, got %d", q.Len())
	}
	if again := q.Consume(); again != nil {
		t.Errorf("Expected nil from empty queue, got %d events", len(again))
	}
}

func TestEventQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10

	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventBallHit, Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events after overflow, got %d", parameter.EventQueueSize, len(events))
	}
	if events[0].Frame != 10 {
		t.Errorf("Expected oldest surviving frame 10, got %d", events[0].Frame)
	}
	if last := events[len(events)-1].Frame; last != int64(total-1) {
		t.Errorf("Expected newest frame %d, got %d", total-1, last)
	}
	if q.Dropped() != 10 {
		t.Errorf("Expected 10 dropped events, got %d", q.Dropped())
	}
}

func TestEventQueueReusableAfterConsume(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < parameter.EventQueueSize-1; i++ {
		q.Push(GameEvent{Type: EventBallHit})
	}
	q.Consume()

	q.Push(GameEvent{Type: EventBrickDestroyed, Frame: 1})
	q.Push(GameEvent{Type: EventBallHit, Frame: 2})
	events := q.Consume()
	if len(events) != 2 || events[0].Type != EventBrickDestroyed || events[1].Frame != 2 {
		t.Errorf("Unexpected events after wraparound: %+v", events)
	}
	if q.Dropped() != 0 {
		t.Errorf("Expected no drops, got %d", q.Dropped())
	}
}

func TestEventQueueConcurrentPush(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup

	producers, perProducer := 4, 50
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(GameEvent{Type: EventBallHit})
			}
		}()
	}
	wg.Wait()

	events := q.Consume()
	if len(events) != producers*perProducer {
		t.Errorf("Expected %d events, got %d", producers*perProducer, len(events))
	}
}
