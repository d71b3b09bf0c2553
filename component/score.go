package component

// ScoreComponent holds the running score shown by a text node
type ScoreComponent struct {
	Value int
}
