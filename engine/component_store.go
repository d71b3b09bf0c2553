package engine

import (
	"github.com/lixenwraith/blocksmash/component"
)

// ComponentStore holds the typed component stores of a world
// Pointers are fixed at world creation and remain valid for the world's lifetime
type ComponentStore struct {
	// Gameplay
	Brick  *Store[component.BrickComponent]
	Paddle *Store[component.PaddleComponent]
	Ball   *Store[component.BallComponent]
	Wall   *Store[component.WallComponent]

	// Physics link
	Body *Store[component.BodyComponent]

	// Presentation
	Sprite *Store[component.SpriteComponent]
	Text   *Store[component.TextComponent]
	Score  *Store[component.ScoreComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Brick:  NewStore[component.BrickComponent](),
		Paddle: NewStore[component.PaddleComponent](),
		Ball:   NewStore[component.BallComponent](),
		Wall:   NewStore[component.WallComponent](),
		Body:   NewStore[component.BodyComponent](),
		Sprite: NewStore[component.SpriteComponent](),
		Text:   NewStore[component.TextComponent](),
		Score:  NewStore[component.ScoreComponent](),
	}
}

// all returns every store for uniform lifecycle operations
func (cs *ComponentStore) all() []AnyStore {
	return []AnyStore{
		cs.Brick,
		cs.Paddle,
		cs.Ball,
		cs.Wall,
		cs.Body,
		cs.Sprite,
		cs.Text,
		cs.Score,
	}
}
