package system

import (
	"log"

	"github.com/lixenwraith/blocksmash/engine"
	"github.com/lixenwraith/blocksmash/event"
	"github.com/lixenwraith/blocksmash/parameter"
)

// HitAudioSystem plays one clip per ball hit notification
type HitAudioSystem struct {
	engine.SystemBase
}

// NewHitAudioSystem creates the hit audio system
// Audio and asset resources are optional, missing either makes playback a no-op
func NewHitAudioSystem(world *engine.World) *HitAudioSystem {
	return &HitAudioSystem{SystemBase: engine.NewSystemBase(world)}
}

// Priority returns the system's priority
func (s *HitAudioSystem) Priority() int {
	return parameter.PriorityAudio
}

// EventTypes returns the event types HitAudioSystem handles
func (s *HitAudioSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventBallHit}
}

// HandleEvent picks the destroy or hit clip by the payload flag
func (s *HitAudioSystem) HandleEvent(_ *engine.World, ev event.GameEvent) {
	payload, ok := ev.Payload.(*event.BallHitPayload)
	if !ok {
		return
	}
	if s.Resource.Audio == nil || s.Resource.Audio.Player == nil || s.Resource.Assets == nil {
		return
	}

	path := parameter.AudioHit
	if payload.Destroyed {
		path = parameter.AudioDestroy
	}
	clip, err := s.Resource.Assets.Loader.Sound(path)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}
	s.Resource.Audio.Player.Play(clip)
}

// Update implements System interface (no tick-based logic)
func (s *HitAudioSystem) Update() {}

var _ event.Handler[*engine.World] = (*HitAudioSystem)(nil)
