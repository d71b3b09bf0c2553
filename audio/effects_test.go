package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/blocksmash/parameter"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestToneWaveRanges(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		name string
		wave Wave
	}{
		{"sine", Sine},
		{"square", Square},
		{"saw", Saw},
		{"noise", Noise},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tone := Tone{Freq: 440, Wave: tt.wave, Duration: 10 * time.Millisecond, Gain: 1}
			samples := drain(tone.Streamer(rate, 1))
			if len(samples) != rate.N(10*time.Millisecond) {
				t.Fatalf("streamed %d samples, want %d", len(samples), rate.N(10*time.Millisecond))
			}
			for i, s := range samples {
				if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
					t.Fatalf("sample %d invalid: %v", i, s)
				}
			}
		})
	}
}

func TestToneEnvelopeRampsAndReleases(t *testing.T) {
	rate := beep.SampleRate(1000)
	// Square at zero frequency stays at phase 0, a constant 1.0
	tone := Tone{Wave: Square, Duration: 100 * time.Millisecond, Attack: 10 * time.Millisecond, Release: 20 * time.Millisecond, Gain: 1}
	samples := drain(tone.Streamer(rate, 1))

	if len(samples) != 100 {
		t.Fatalf("len = %d, want 100", len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("sustain should be full volume, got %f", samples[50][0])
	}
	if last := samples[99][0]; last <= 0 || last > 0.1 {
		t.Errorf("release tail = %f, want small positive", last)
	}
}

func TestFallbackClipsHaveExpectedLength(t *testing.T) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	tests := []struct {
		name string
		clip *Clip
		want time.Duration
	}{
		{"hit", CreateHitSound(rate), parameter.HitSoundDuration},
		{"destroy", CreateDestroySound(rate), parameter.DestroySoundDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.clip.Len() != rate.N(tt.want) {
				t.Errorf("Len = %d, want %d", tt.clip.Len(), rate.N(tt.want))
			}
			if tt.clip.SampleRate() != rate {
				t.Errorf("SampleRate = %v, want %v", tt.clip.SampleRate(), rate)
			}
			var peak float64
			for _, s := range drain(tt.clip.Streamer()) {
				peak = math.Max(peak, math.Abs(s[0]))
			}
			if peak == 0 {
				t.Error("clip is silent")
			}
		})
	}
}

func TestClipStreamerIsReplayable(t *testing.T) {
	clip := CreateHitSound(beep.SampleRate(8000))
	first := drain(clip.Streamer())
	second := drain(clip.Streamer())
	if len(first) != len(second) || len(first) == 0 {
		t.Fatalf("replay lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("sample %d differs between plays", i)
		}
	}
}

func TestNewVolumeZeroIsSilent(t *testing.T) {
	rate := beep.SampleRate(1000)
	tone := Tone{Wave: Square, Duration: 10 * time.Millisecond, Gain: 1}
	samples := drain(newVolume(tone.Streamer(rate, 1), 0))
	for i, s := range samples {
		if s[0] != 0 {
			t.Fatalf("sample %d = %f, want 0", i, s[0])
		}
	}
}

func TestNoiseToneIsDeterministicPerSeed(t *testing.T) {
	rate := beep.SampleRate(8000)
	tone := Tone{Wave: Noise, Duration: 5 * time.Millisecond, Gain: 1}
	a := drain(tone.Streamer(rate, 42))
	b := drain(tone.Streamer(rate, 42))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs for the same seed", i)
		}
	}
}
