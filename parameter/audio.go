package parameter

import "time"

// Audio defaults
const (
	AudioSampleRate   = 44100
	AudioMasterVolume = 0.5
	AudioBufferTime   = 100 * time.Millisecond
)

// Fallback clip shaping, used when an mp3 asset is missing
const (
	HitSoundDuration = 120 * time.Millisecond
	HitSoundAttack   = 2 * time.Millisecond
	HitSoundRelease  = 90 * time.Millisecond
	HitSoundFreq     = 880.0

	DestroySoundDuration = 300 * time.Millisecond
	DestroySoundAttack   = 5 * time.Millisecond
	DestroySoundRelease  = 220 * time.Millisecond
	DestroyRumbleFreq    = 80.0
)
