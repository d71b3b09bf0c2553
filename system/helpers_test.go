package system

import (
	"math/rand"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/blocksmash/asset"
	"github.com/lixenwraith/blocksmash/audio"
	"github.com/lixenwraith/blocksmash/config"
	"github.com/lixenwraith/blocksmash/core"
	"github.com/lixenwraith/blocksmash/engine"
	"github.com/lixenwraith/blocksmash/event"
	"github.com/lixenwraith/blocksmash/input"
	"github.com/lixenwraith/blocksmash/physics"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// heldKeys is a KeyReader with a fixed set of held actions
type heldKeys map[input.Action]bool

func (h heldKeys) Held(a input.Action, _ time.Time) bool { return h[a] }

// recordingPlayer records every played clip
type recordingPlayer struct {
	played []*audio.Clip
}

func (p *recordingPlayer) Play(c *audio.Clip) { p.played = append(p.played, c) }

// newTestWorld registers the core resources with a fixed seed
func newTestWorld(seed int64) *engine.World {
	w := engine.NewWorld()
	cfg := config.Default()

	engine.AddResource(w.Resources, &engine.TimeResource{
		GameTime:  testEpoch,
		RealTime:  testEpoch,
		DeltaTime: cfg.FrameInterval(),
	})
	engine.AddResource(w.Resources, &engine.ConfigResource{Config: cfg})
	engine.AddResource(w.Resources, &engine.EventQueueResource{Queue: event.NewEventQueue()})
	engine.AddResource(w.Resources, &engine.PhysicsResource{
		Space: physics.NewSpace(0, cfg.Physics.GravityY, cfg.Physics.Iterations),
	})
	engine.AddResource(w.Resources, &engine.RandResource{Rand: rand.New(rand.NewSource(seed))})
	return w
}

// withPlayback adds audio and asset resources backed by p
func withPlayback(w *engine.World, p engine.AudioPlayer) {
	engine.AddResource(w.Resources, &engine.AudioResource{Player: p})
	engine.AddResource(w.Resources, &engine.AssetResource{Loader: asset.NewLoader(nil, beep.SampleRate(8000))})
}

// advance moves the frame clock one tick
func advance(w *engine.World) {
	tr := engine.MustGetResource[*engine.TimeResource](w.Resources)
	next := tr.GameTime.Add(tr.DeltaTime)
	tr.Update(next, next, tr.DeltaTime, tr.FrameNumber+1)
}

func spaceOf(w *engine.World) *physics.Space {
	return engine.MustGetResource[*engine.PhysicsResource](w.Resources).Space
}

func colliderOf(w *engine.World, e core.Entity) physics.ColliderHandle {
	body, _ := w.Components.Body.Get(e)
	return body.Collider
}
