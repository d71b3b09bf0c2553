// Package asset resolves sprite, font and sound paths to cached handles.
// Files under the asset root refine the built-in looks; absent files are never fatal.
package asset

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"

	"github.com/lixenwraith/blocksmash/audio"
	"github.com/lixenwraith/blocksmash/parameter"
)

// ErrUnknownAsset is returned for paths with no built-in fallback
var ErrUnknownAsset = errors.New("unknown asset")

// Sprite is a drawable glyph and color
type Sprite struct {
	Path  string
	Glyph rune
	Color tcell.Color
}

// Style returns the cell style for the sprite over bg
func (s *Sprite) Style(bg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(s.Color).Background(bg)
}

// Font is a resolved text style
type Font struct {
	Path  string
	Style tcell.Style
}

// Loader caches resolved assets by path
type Loader struct {
	mu      sync.Mutex
	files   fs.FS
	rate    beep.SampleRate
	sprites map[string]*Sprite
	fonts   map[string]*Font
	sounds  map[string]*audio.Clip
}

// NewLoader creates a loader reading from files; files may be nil for built-ins only
func NewLoader(files fs.FS, rate beep.SampleRate) *Loader {
	return &Loader{
		files:   files,
		rate:    rate,
		sprites: make(map[string]*Sprite),
		fonts:   make(map[string]*Font),
		sounds:  make(map[string]*audio.Clip),
	}
}

// Sprite resolves a sprite path
func (l *Loader) Sprite(path string) (*Sprite, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if s, ok := l.sprites[path]; ok {
		return s, nil
	}

	base, ok := builtinSprites[path]
	if !ok {
		return nil, fmt.Errorf("sprite %q: %w", path, ErrUnknownAsset)
	}
	s := &Sprite{Path: path, Glyph: base.Glyph, Color: base.Color}

	if c, err := l.averageColor(path); err == nil {
		s.Color = c
	} else if !errors.Is(err, fs.ErrNotExist) {
		log.Printf("asset: sprite %s: %v, using built-in", path, err)
	}

	l.sprites[path] = s
	return s, nil
}

// averageColor decodes a PNG and averages its opaque pixels
func (l *Loader) averageColor(path string) (tcell.Color, error) {
	if l.files == nil {
		return tcell.ColorDefault, fs.ErrNotExist
	}
	f, err := l.files.Open(path)
	if err != nil {
		return tcell.ColorDefault, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return tcell.ColorDefault, err
	}

	var r, g, b, n uint64
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pr, pg, pb, pa := img.At(x, y).RGBA()
			if pa < 0x8000 {
				continue
			}
			// Un-premultiply to 8-bit
			r += uint64(pr * 0xff / pa)
			g += uint64(pg * 0xff / pa)
			b += uint64(pb * 0xff / pa)
			n++
		}
	}
	if n == 0 {
		return tcell.ColorDefault, fmt.Errorf("no opaque pixels")
	}
	return tcell.NewRGBColor(int32(r/n), int32(g/n), int32(b/n)), nil
}

// Font resolves a font path to a text style
func (l *Loader) Font(path string) (*Font, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if f, ok := l.fonts[path]; ok {
		return f, nil
	}
	style, ok := builtinFonts[path]
	if !ok {
		return nil, fmt.Errorf("font %q: %w", path, ErrUnknownAsset)
	}
	f := &Font{Path: path, Style: style}
	l.fonts[path] = f
	return f, nil
}

// Sound resolves an audio path to a clip at the loader's rate
// A missing or undecodable file falls back to a synthesized clip, logged once per path
func (l *Loader) Sound(path string) (*audio.Clip, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if c, ok := l.sounds[path]; ok {
		return c, nil
	}

	var fallback func(beep.SampleRate) *audio.Clip
	switch path {
	case parameter.AudioHit:
		fallback = audio.CreateHitSound
	case parameter.AudioDestroy:
		fallback = audio.CreateDestroySound
	default:
		return nil, fmt.Errorf("sound %q: %w", path, ErrUnknownAsset)
	}

	clip, err := l.decodeSound(path)
	if err != nil {
		log.Printf("asset: sound %s: %v, using synthesized clip", path, err)
		clip = fallback(l.rate)
	}
	l.sounds[path] = clip
	return clip, nil
}

func (l *Loader) decodeSound(path string) (*audio.Clip, error) {
	if l.files == nil {
		return nil, fs.ErrNotExist
	}
	f, err := l.files.Open(path)
	if err != nil {
		return nil, err
	}
	// LoadClip closes the file
	return audio.LoadClip(strings.TrimSuffix(path, ".mp3"), f, l.rate)
}

// Preload resolves every known asset so the first frame does no file I/O
func (l *Loader) Preload() error {
	for path := range builtinSprites {
		if _, err := l.Sprite(path); err != nil {
			return err
		}
	}
	for path := range builtinFonts {
		if _, err := l.Font(path); err != nil {
			return err
		}
	}
	for _, path := range []string{parameter.AudioHit, parameter.AudioDestroy} {
		if _, err := l.Sound(path); err != nil {
			return err
		}
	}
	return nil
}
