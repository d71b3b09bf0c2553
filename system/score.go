package system

import (
	"strconv"

	"github.com/lixenwraith/blocksmash/engine"
	"github.com/lixenwraith/blocksmash/event"
	"github.com/lixenwraith/blocksmash/parameter"
)

// ScoreSystem adds one point per frame in which any ball hit was reported
type ScoreSystem struct {
	engine.SystemBase

	pending bool
}

// NewScoreSystem creates the score presenter
func NewScoreSystem(world *engine.World) *ScoreSystem {
	return &ScoreSystem{SystemBase: engine.NewSystemBase(world)}
}

// Priority returns the system's priority
func (s *ScoreSystem) Priority() int {
	return parameter.PriorityScore
}

// EventTypes returns the event types ScoreSystem handles
func (s *ScoreSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventBallHit}
}

// HandleEvent latches a hit, the destroyed flag does not matter
func (s *ScoreSystem) HandleEvent(_ *engine.World, ev event.GameEvent) {
	if ev.Type == event.EventBallHit {
		s.pending = true
	}
}

// Update applies at most one increment per frame
func (s *ScoreSystem) Update() {
	if !s.pending {
		return
	}
	s.pending = false

	for _, e := range s.Component.Score.All() {
		score, ok := s.Component.Score.Get(e)
		if !ok {
			continue
		}
		score.Value++
		s.Component.Score.Set(e, score)

		if text, ok := s.Component.Text.Get(e); ok {
			text.Content = ScoreText(score.Value)
			s.Component.Text.Set(e, text)
		}
	}
}

// Value returns the first score entity's value, 0 when none exists
func (s *ScoreSystem) Value() int {
	for _, e := range s.Component.Score.All() {
		if score, ok := s.Component.Score.Get(e); ok {
			return score.Value
		}
	}
	return 0
}

// ScoreText formats the score overlay
func ScoreText(v int) string {
	return parameter.ScorePrefix + strconv.Itoa(v)
}

var _ event.Handler[*engine.World] = (*ScoreSystem)(nil)
