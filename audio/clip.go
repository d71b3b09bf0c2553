package audio

import (
	"fmt"
	"io"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
)

// Clip is a decoded sound held in memory, replayable any number of times
type Clip struct {
	Name   string
	buffer *beep.Buffer
}

// NewClip drains s into a buffer at the given format
func NewClip(name string, format beep.Format, s beep.Streamer) *Clip {
	buf := beep.NewBuffer(format)
	buf.Append(s)
	return &Clip{Name: name, buffer: buf}
}

// Len returns the clip length in samples
func (c *Clip) Len() int {
	if c == nil || c.buffer == nil {
		return 0
	}
	return c.buffer.Len()
}

// Duration returns the clip playback length
func (c *Clip) Duration() time.Duration {
	if c.Len() == 0 {
		return 0
	}
	return c.buffer.Format().SampleRate.D(c.Len())
}

// SampleRate returns the rate the clip was buffered at
func (c *Clip) SampleRate() beep.SampleRate {
	if c == nil || c.buffer == nil {
		return 0
	}
	return c.buffer.Format().SampleRate
}

// Streamer returns a fresh streamer over the whole clip
func (c *Clip) Streamer() beep.StreamSeeker {
	return c.buffer.Streamer(0, c.buffer.Len())
}

// LoadClip decodes an mp3 stream and resamples it to rate
// The reader is closed once decoded
func LoadClip(name string, r io.ReadCloser, rate beep.SampleRate) (*Clip, error) {
	streamer, format, err := mp3.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != rate {
		s = beep.Resample(4, format.SampleRate, rate, streamer)
	}

	clip := NewClip(name, beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}, s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	if clip.Len() == 0 {
		return nil, fmt.Errorf("decode %s: %w", name, ErrEmptyClip)
	}
	return clip, nil
}
