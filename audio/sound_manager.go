package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/blocksmash/parameter"
)

// SoundManager owns the speaker and a mixer that one-shot clips are added to
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	bufferSize  int
	volume      float64
	muted       bool
	initialized bool
}

// NewSoundManager creates a sound manager; nothing plays until Initialize succeeds
func NewSoundManager(rate beep.SampleRate, volume float64) *SoundManager {
	return &SoundManager{
		mixer:      &beep.Mixer{},
		rate:       rate,
		bufferSize: rate.N(parameter.AudioBufferTime),
		volume:     volume,
	}
}

// Initialize opens the speaker, safe to call more than once
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.bufferSize); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// SampleRate returns the mixer rate clips must be buffered at
func (sm *SoundManager) SampleRate() beep.SampleRate {
	return sm.rate
}

// SetMuted silences subsequent plays without closing the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// IsMuted reports the mute flag
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play starts clip on the mixer, a no-op when not initialized or muted
func (sm *SoundManager) Play(clip *Clip) {
	_ = sm.TryPlay(clip)
}

// TryPlay is Play reporting why nothing was queued
func (sm *SoundManager) TryPlay(clip *Clip) error {
	if clip.Len() == 0 {
		return ErrEmptyClip
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	if sm.muted {
		return nil
	}

	s := newVolume(clip.Streamer(), sm.volume)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// Active returns the number of clips still playing
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}

// Cleanup stops all sounds, later plays are rejected until Initialize
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}
