package audio

import "errors"

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrEmptyClip      = errors.New("audio clip is empty")
)
