// Package config loads game settings from TOML with environment overrides.
// Defaults reproduce the tuned gameplay constants in parameter.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/blocksmash/input"
	"github.com/lixenwraith/blocksmash/parameter"
)

// DefaultPath is read when no -config flag is given; its absence is not an error
const DefaultPath = "blocksmash.toml"

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full game configuration
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Field   FieldConfig   `toml:"field"`
	Paddle  PaddleConfig  `toml:"paddle"`
	Ball    BallConfig    `toml:"ball"`
	Bricks  BricksConfig  `toml:"bricks"`
	Physics PhysicsConfig `toml:"physics"`
	Audio   AudioConfig   `toml:"audio"`
	Input   InputConfig   `toml:"input"`
	Assets  AssetsConfig  `toml:"assets"`
}

type WindowConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	FPS    int     `toml:"fps"`
}

type FieldConfig struct {
	PaddleBound float64 `toml:"paddle_bound"`
	PaddleY     float64 `toml:"paddle_y"`
}

type PaddleConfig struct {
	Step       int     `toml:"step"`
	HalfWidth  float64 `toml:"half_width"`
	HalfHeight float64 `toml:"half_height"`
}

type BallConfig struct {
	Radius       float64 `toml:"radius"`
	StartX       float64 `toml:"start_x"`
	StartY       float64 `toml:"start_y"`
	Restitution  float64 `toml:"restitution"`
	GravityScale float64 `toml:"gravity_scale"`
	VelXMin      int     `toml:"vel_x_min"`
	VelXMax      int     `toml:"vel_x_max"`
	VelYMin      int     `toml:"vel_y_min"`
	VelYMax      int     `toml:"vel_y_max"`
	MaxSpeed     float64 `toml:"max_speed"`
}

type BricksConfig struct {
	HalfColumns int     `toml:"half_columns"`
	HalfRows    int     `toml:"half_rows"`
	SpacingX    float64 `toml:"spacing_x"`
	SpacingY    float64 `toml:"spacing_y"`
	OriginX     float64 `toml:"origin_x"`
	OriginY     float64 `toml:"origin_y"`
	HalfWidth   float64 `toml:"half_width"`
	HalfHeight  float64 `toml:"half_height"`
	HitPoints   int     `toml:"hit_points"`
}

type PhysicsConfig struct {
	GravityY   float64 `toml:"gravity_y"`
	Iterations int     `toml:"iterations"`
}

type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
	SampleRate   int     `toml:"sample_rate"`
}

type InputConfig struct {
	HoldWindowMS int                 `toml:"hold_window_ms"`
	Bindings     map[string][]string `toml:"bindings"`
}

// HoldWindow returns the hold window as a duration
func (c InputConfig) HoldWindow() time.Duration {
	return time.Duration(c.HoldWindowMS) * time.Millisecond
}

type AssetsConfig struct {
	Root string `toml:"root"`
}

// FrameInterval returns the tick period for the configured frame rate
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Window.FPS)
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  parameter.GameWidth,
			Height: parameter.GameHeight,
			FPS:    parameter.FrameRate,
		},
		Field: FieldConfig{
			PaddleBound: parameter.PaddleBound,
			PaddleY:     parameter.PaddleY,
		},
		Paddle: PaddleConfig{
			Step:       parameter.PaddleStep,
			HalfWidth:  parameter.PaddleHalfWidth,
			HalfHeight: parameter.PaddleHalfHeight,
		},
		Ball: BallConfig{
			Radius:       parameter.BallRadius,
			StartX:       parameter.BallStartX,
			StartY:       parameter.BallStartY,
			Restitution:  parameter.BallRestitution,
			GravityScale: parameter.BallGravityScale,
			VelXMin:      parameter.BallVelXMin,
			VelXMax:      parameter.BallVelXMax,
			VelYMin:      parameter.BallVelYMin,
			VelYMax:      parameter.BallVelYMax,
			MaxSpeed:     parameter.BallMaxSpeed,
		},
		Bricks: BricksConfig{
			HalfColumns: parameter.BrickHalfColumns,
			HalfRows:    parameter.BrickHalfRows,
			SpacingX:    parameter.BrickSpacingX,
			SpacingY:    parameter.BrickSpacingY,
			OriginX:     parameter.BrickOriginX,
			OriginY:     parameter.BrickOriginY,
			HalfWidth:   parameter.BrickHalfWidth,
			HalfHeight:  parameter.BrickHalfHeight,
			HitPoints:   parameter.BrickHitPoints,
		},
		Physics: PhysicsConfig{
			GravityY:   parameter.WorldGravityY,
			Iterations: parameter.PhysicsIterations,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: parameter.AudioMasterVolume,
			SampleRate:   parameter.AudioSampleRate,
		},
		Input: InputConfig{
			HoldWindowMS: int(parameter.KeyHoldWindow / time.Millisecond),
			Bindings:     input.DefaultBindings(),
		},
		Assets: AssetsConfig{
			Root: parameter.DefaultAssetRoot,
		},
	}
}

// Load reads path over the defaults, applies environment overrides and validates
// A missing file is an error only when explicit is set
func Load(path string, explicit bool) (*Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, cfg)
	switch {
	case err == nil:
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			log.Printf("config: %s: ignoring unknown keys: %s", path, strings.Join(keys, ", "))
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// Defaults only
	default:
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	ApplyEnv(cfg, os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Write encodes cfg as TOML
func Write(w io.Writer, cfg *Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Validate rejects values the game cannot run with
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %vx%v", c.Window.Width, c.Window.Height)
	check(c.Window.FPS > 0, "window.fps %d", c.Window.FPS)
	check(c.Paddle.Step > 0, "paddle.step %d", c.Paddle.Step)
	check(c.Paddle.HalfWidth > 0 && c.Paddle.HalfHeight > 0, "paddle half extents")
	check(c.Field.PaddleBound >= 0, "field.paddle_bound %v", c.Field.PaddleBound)
	check(c.Ball.Radius > 0, "ball.radius %v", c.Ball.Radius)
	check(c.Ball.VelXMin <= c.Ball.VelXMax, "ball.vel_x range [%d, %d]", c.Ball.VelXMin, c.Ball.VelXMax)
	check(c.Ball.VelYMin <= c.Ball.VelYMax, "ball.vel_y range [%d, %d]", c.Ball.VelYMin, c.Ball.VelYMax)
	check(c.Ball.MaxSpeed >= 0, "ball.max_speed %v", c.Ball.MaxSpeed)
	check(c.Bricks.HalfColumns >= 0 && c.Bricks.HalfRows >= 0, "bricks grid")
	check(c.Bricks.HalfWidth > 0 && c.Bricks.HalfHeight > 0, "bricks half extents")
	check(c.Bricks.HitPoints >= 1, "bricks.hit_points %d", c.Bricks.HitPoints)
	check(c.Physics.Iterations > 0, "physics.iterations %d", c.Physics.Iterations)
	check(c.Audio.MasterVolume >= 0 && c.Audio.MasterVolume <= 1, "audio.master_volume %v", c.Audio.MasterVolume)
	check(c.Audio.SampleRate > 0, "audio.sample_rate %d", c.Audio.SampleRate)
	check(c.Input.HoldWindowMS > 0, "input.hold_window_ms %d", c.Input.HoldWindowMS)
	if _, err := input.ParseBindings(c.Input.Bindings); err != nil {
		errs = append(errs, fmt.Errorf("%w: input.bindings: %v", ErrInvalid, err))
	}

	return errors.Join(errs...)
}
