package system

import (
	"testing"

	"github.com/lixenwraith/blocksmash/engine"
	"github.com/lixenwraith/blocksmash/event"
	"github.com/lixenwraith/blocksmash/physics"
)

func TestHitAudioOneClipPerNotification(t *testing.T) {
	p := newPipeline(t)
	brick := p.layout.Bricks[0]

	// Three hits in one frame: two plain, the third destroys
	for i := 0; i < 3; i++ {
		p.contact(p.layout.Ball, brick, physics.ContactStopped)
	}
	p.frame()

	if len(p.player.played) != 3 {
		t.Fatalf("played %d clips, want 3", len(p.player.played))
	}
	want := []string{"hit", "hit", "destroy"}
	for i, name := range want {
		if p.player.played[i].Name != name {
			t.Errorf("clip %d = %q, want %q", i, p.player.played[i].Name, name)
		}
	}
}

func TestHitAudioWithoutPlayerIsNoop(t *testing.T) {
	w := newTestWorld(1)
	sys := NewHitAudioSystem(w)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("HandleEvent panicked without audio: %v", r)
		}
	}()
	sys.HandleEvent(w, event.GameEvent{Type: event.EventBallHit, Payload: &event.BallHitPayload{}})
}

func TestHitAudioIgnoresForeignPayload(t *testing.T) {
	w := newTestWorld(1)
	player := &recordingPlayer{}
	withPlayback(w, player)
	sys := NewHitAudioSystem(w)

	sys.HandleEvent(w, event.GameEvent{Type: event.EventBallHit, Payload: "oops"})
	if len(player.played) != 0 {
		t.Errorf("played %d clips for a malformed payload", len(player.played))
	}
	var _ engine.AudioPlayer = player
}
