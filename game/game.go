// Package game wires the world, systems, event routing and rendering into a frame loop.
package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"

	"github.com/lixenwraith/blocksmash/asset"
	"github.com/lixenwraith/blocksmash/config"
	"github.com/lixenwraith/blocksmash/core"
	"github.com/lixenwraith/blocksmash/engine"
	"github.com/lixenwraith/blocksmash/event"
	"github.com/lixenwraith/blocksmash/input"
	"github.com/lixenwraith/blocksmash/parameter"
	"github.com/lixenwraith/blocksmash/physics"
	"github.com/lixenwraith/blocksmash/render"
	"github.com/lixenwraith/blocksmash/render/renderers"
	"github.com/lixenwraith/blocksmash/system"
)

// Options configures a new game
type Options struct {
	Config *config.Config
	Seed   int64

	// Loader may be nil for built-in sprites and synthesized sounds
	Loader *asset.Loader

	// Audio may be nil to run silent
	Audio engine.AudioPlayer

	// Clock may be nil for the system clock
	Clock engine.TimeProvider
}

// Game owns one world and drives it frame by frame
// All methods must be called from the frame loop goroutine
type Game struct {
	World  *engine.World
	Layout system.Layout

	cfg    *config.Config
	loader *asset.Loader
	clock  *engine.PausableClock
	keys   *input.KeyState
	router *event.Router[*engine.World]
	score  *system.ScoreSystem
	round  *roundTracker

	orchestrator *render.RenderOrchestrator
	timeRes      *engine.TimeResource
	frame        int64
}

// New builds the world and its systems; nothing is drawn until AttachScreen
func New(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	table, err := input.ParseBindings(cfg.Input.Bindings)
	if err != nil {
		return nil, err
	}

	loader := opts.Loader
	if loader == nil {
		loader = asset.NewLoader(nil, beep.SampleRate(cfg.Audio.SampleRate))
	}

	g := &Game{
		World:  engine.NewWorld(),
		cfg:    cfg,
		loader: loader,
		clock:  engine.NewPausableClock(opts.Clock),
		keys:   input.NewKeyState(table, cfg.Input.HoldWindow()),
	}

	now := g.clock.Now()
	g.timeRes = &engine.TimeResource{GameTime: now, RealTime: g.clock.RealTime(), DeltaTime: cfg.FrameInterval()}
	queue := event.NewEventQueue()

	res := g.World.Resources
	engine.AddResource(res, g.timeRes)
	engine.AddResource(res, &engine.ConfigResource{Config: cfg})
	engine.AddResource(res, &engine.EventQueueResource{Queue: queue})
	engine.AddResource(res, &engine.PhysicsResource{
		Space: physics.NewSpace(0, cfg.Physics.GravityY, cfg.Physics.Iterations),
	})
	engine.AddResource(res, &engine.RandResource{Rand: rand.New(rand.NewSource(opts.Seed))})
	engine.AddResource(res, &engine.InputResource{Keys: g.keys})
	engine.AddResource(res, &engine.AssetResource{Loader: loader})
	if opts.Audio != nil {
		engine.AddResource(res, &engine.AudioResource{Player: opts.Audio})
	}

	g.Layout = system.SetupWorld(g.World)

	g.router = event.NewRouter[*engine.World](queue)
	g.score = system.NewScoreSystem(g.World)
	hitAudio := system.NewHitAudioSystem(g.World)
	g.round = &roundTracker{}
	g.router.Register(g.score)
	g.router.Register(hitAudio)
	g.router.Register(g.round)

	g.World.AddSystem(system.NewPaddleSystem(g.World))
	g.World.AddSystem(system.NewPhysicsSystem(g.World))
	g.World.AddSystem(system.NewCollisionSystem(g.World))
	g.World.AddSystem(system.NewDispatchSystem(g.World, g.router))
	g.World.AddSystem(g.score)
	g.World.AddSystem(hitAudio)

	log.Printf("game: world ready, %d bricks, seed %d", len(g.Layout.Bricks), opts.Seed)
	return g, nil
}

// AttachScreen sets up the render pipeline on screen
func (g *Game) AttachScreen(screen tcell.Screen) {
	loader := g.loader
	space := engine.MustGetResource[*engine.PhysicsResource](g.World.Resources).Space
	bg := asset.BackgroundColor

	o := render.NewRenderOrchestrator(screen, g.cfg.Window.Width, g.cfg.Window.Height)
	o.Register(renderers.NewBackgroundRenderer(bg), render.PriorityBackground)
	o.Register(renderers.NewSpriteRenderer(g.World, space, loader, bg, renderers.Walls), render.PriorityWall)
	o.Register(renderers.NewSpriteRenderer(g.World, space, loader, bg, renderers.Bodies), render.PriorityEntities)
	o.Register(renderers.NewTextRenderer(g.World, loader, bg), render.PriorityUI)
	o.Register(renderers.NewPauseBanner(parameter.PausedBanner), render.PriorityOverlay)
	g.orchestrator = o
}

// HandleEvent applies one terminal event, returns false when the game should quit
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch g.keys.HandleKey(ev, g.clock.RealTime()) {
		case input.ActionQuit:
			return false
		case input.ActionPause:
			g.TogglePause()
		}
	case *tcell.EventResize:
		if g.orchestrator != nil {
			g.orchestrator.Sync()
		}
	}
	return true
}

// TogglePause flips the pause state; held keys are dropped on both edges
func (g *Game) TogglePause() {
	paused := g.clock.Toggle()
	g.keys.Release()
	log.Printf("game: paused=%v at frame %d", paused, g.frame)
}

// Paused reports the pause state
func (g *Game) Paused() bool {
	return g.clock.IsPaused()
}

// Frame runs one tick: systems when running, then render
func (g *Game) Frame() {
	if !g.clock.IsPaused() {
		g.frame++
		g.timeRes.Update(g.clock.Now(), g.clock.RealTime(), g.cfg.FrameInterval(), g.frame)
		g.World.Update()
	}

	if g.orchestrator != nil {
		g.orchestrator.RenderFrame(render.RenderContext{
			GameTime:    g.timeRes.GameTime,
			FrameNumber: g.frame,
			IsPaused:    g.clock.IsPaused(),
		})
	}
}

// FrameNumber returns the number of simulated frames
func (g *Game) FrameNumber() int64 {
	return g.frame
}

// Score returns the current score
func (g *Game) Score() int {
	return g.score.Value()
}

// Cleared reports whether every brick has been destroyed
func (g *Game) Cleared() bool {
	return g.round.cleared
}

// Run drives frames from a ticker and events from a poller until quit
// The caller owns the screen and must Fini it after Run returns
func (g *Game) Run(screen tcell.Screen) {
	events := make(chan tcell.Event, parameter.InputChannelSize)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(g.cfg.FrameInterval())
	defer ticker.Stop()

	g.Frame()
	for {
		select {
		case ev := <-events:
			if !g.HandleEvent(ev) {
				log.Printf("game: quit at frame %d, score %d", g.frame, g.Score())
				return
			}
		case <-ticker.C:
			g.Frame()
		}
	}
}
