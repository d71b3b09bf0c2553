package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/blocksmash/parameter"
)

// Wave maps a phase in [0, 1) to a sample in [-1, 1]
type Wave func(phase float64, noise *rand.Rand) float64

var (
	Sine   Wave = func(p float64, _ *rand.Rand) float64 { return math.Sin(2 * math.Pi * p) }
	Square Wave = func(p float64, _ *rand.Rand) float64 {
		if p < 0.5 {
			return 1
		}
		return -1
	}
	Saw   Wave = func(p float64, _ *rand.Rand) float64 { return 2 * (p - 0.5) }
	Noise Wave = func(_ float64, r *rand.Rand) float64 { return r.Float64()*2 - 1 }
)

// Tone describes one enveloped voice of a synthesized clip
// Attack ramps up from silence; Release fades to silence at Duration
type Tone struct {
	Freq     float64
	Wave     Wave
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Gain     float64
}

// toneStream renders a Tone sample by sample
type toneStream struct {
	tone    Tone
	step    float64 // Phase advance per sample
	phase   float64
	pos     int
	total   int
	attack  int
	release int
	noise   *rand.Rand
}

// Streamer renders t at rate; noise waves draw from a source seeded with seed
func (t Tone) Streamer(rate beep.SampleRate, seed int64) beep.Streamer {
	return &toneStream{
		tone:    t,
		step:    t.Freq / float64(rate),
		total:   rate.N(t.Duration),
		attack:  rate.N(t.Attack),
		release: rate.N(t.Release),
		noise:   rand.New(rand.NewSource(seed)),
	}
}

func (s *toneStream) level() float64 {
	v := 1.0
	if s.pos < s.attack {
		v = float64(s.pos) / float64(s.attack)
	}
	if left := s.total - s.pos; s.release > 0 && left <= s.release {
		v = math.Min(v, float64(left)/float64(s.release))
	}
	return v
}

func (s *toneStream) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= s.total {
		return 0, false
	}
	n := 0
	for ; n < len(samples) && s.pos < s.total; n++ {
		v := s.tone.Wave(s.phase, s.noise) * s.level() * s.tone.Gain
		samples[n] = [2]float64{v, v}
		s.phase += s.step
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return n, true
}

func (s *toneStream) Err() error { return nil }

// Synthesize mixes tones into a buffered clip as long as the longest tone
func Synthesize(name string, rate beep.SampleRate, tones ...Tone) *Clip {
	var longest time.Duration
	voices := make([]beep.Streamer, len(tones))
	for i, t := range tones {
		voices[i] = t.Streamer(rate, int64(i+1))
		longest = max(longest, t.Duration)
	}
	return NewClip(name, clipFormat(rate), beep.Take(rate.N(longest), beep.Mix(voices...)))
}

// newVolume scales s linearly; math.Log2(0) is -Inf so zero volume is silenced
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func clipFormat(rate beep.SampleRate) beep.Format {
	return beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
}

// CreateHitSound synthesizes a short bell, used when the hit clip is unavailable
func CreateHitSound(rate beep.SampleRate) *Clip {
	d := parameter.HitSoundDuration
	return Synthesize("hit", rate,
		Tone{Freq: parameter.HitSoundFreq, Wave: Sine, Duration: d,
			Attack: parameter.HitSoundAttack, Release: parameter.HitSoundRelease, Gain: 0.7},
		Tone{Freq: parameter.HitSoundFreq * 2, Wave: Sine, Duration: d,
			Attack: parameter.HitSoundAttack, Release: parameter.HitSoundRelease / 2, Gain: 0.3},
	)
}

// CreateDestroySound synthesizes a noise crackle over a low rumble
func CreateDestroySound(rate beep.SampleRate) *Clip {
	d := parameter.DestroySoundDuration
	return Synthesize("destroy", rate,
		Tone{Wave: Noise, Duration: d,
			Attack: parameter.DestroySoundAttack, Release: parameter.DestroySoundRelease, Gain: 0.25},
		Tone{Freq: parameter.DestroyRumbleFreq, Wave: Sine, Duration: d,
			Attack: parameter.DestroySoundAttack, Release: parameter.DestroySoundRelease, Gain: 0.5},
	)
}
