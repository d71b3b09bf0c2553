package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/blocksmash/asset"
	"github.com/lixenwraith/blocksmash/audio"
	"github.com/lixenwraith/blocksmash/config"
	"github.com/lixenwraith/blocksmash/event"
	"github.com/lixenwraith/blocksmash/input"
	"github.com/lixenwraith/blocksmash/physics"
)

// Resource holds cached pointers to singleton resources, fetched once per system
type Resource struct {
	Time    *TimeResource
	Config  *ConfigResource
	Event   *EventQueueResource
	Physics *PhysicsResource
	Rand    *RandResource

	// Optional, nil when not registered
	Input  *InputResource
	Audio  *AudioResource
	Assets *AssetResource
}

// GetResourceStore populates Resource from the world's store
// Core resources must be registered; optional ones stay nil when absent
func GetResourceStore(w *World) Resource {
	r := Resource{
		Time:    MustGetResource[*TimeResource](w.Resources),
		Config:  MustGetResource[*ConfigResource](w.Resources),
		Event:   MustGetResource[*EventQueueResource](w.Resources),
		Physics: MustGetResource[*PhysicsResource](w.Resources),
		Rand:    MustGetResource[*RandResource](w.Resources),
	}
	r.Input, _ = GetResource[*InputResource](w.Resources)
	r.Audio, _ = GetResource[*AudioResource](w.Resources)
	r.Assets, _ = GetResource[*AssetResource](w.Resources)
	return r
}

// TimeResource wraps time data for systems
// It is updated by the frame loop at the start of a frame
type TimeResource struct {
	// GameTime is the current time in the game world (affected by pause)
	GameTime time.Time

	// RealTime is the wall-clock time (unaffected by pause)
	RealTime time.Time

	// DeltaTime is the duration since the last update
	DeltaTime time.Duration

	// FrameNumber is the current frame count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place (zero allocation)
func (tr *TimeResource) Update(gameTime, realTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.GameTime = gameTime
	tr.RealTime = realTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// ConfigResource exposes the loaded game configuration
type ConfigResource struct {
	Config *config.Config
}

// EventQueueResource wraps the event queue for system access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// Push emits an event stamped with the frame number
func (r *EventQueueResource) Push(t event.EventType, payload any, frame int64) {
	r.Queue.Push(event.GameEvent{Type: t, Payload: payload, Frame: frame})
}

// PhysicsResource wraps the physics space
type PhysicsResource struct {
	Space *physics.Space
}

// RandResource carries the injected random source used for world setup
type RandResource struct {
	Rand *rand.Rand
}

// KeyReader reports polled held-key state
type KeyReader interface {
	Held(action input.Action, now time.Time) bool
}

// InputResource wraps the polled input state
type InputResource struct {
	Keys KeyReader
}

// AudioPlayer plays clips fire-and-forget
type AudioPlayer interface {
	Play(clip *audio.Clip)
}

// AudioResource wraps the audio player interface
type AudioResource struct {
	Player AudioPlayer
}

// AssetResource wraps the asset loader
type AssetResource struct {
	Loader *asset.Loader
}
