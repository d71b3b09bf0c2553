package config

import "strconv"

// Environment variable names
const (
	EnvAudioEnabled = "BLOCKSMASH_AUDIO_ENABLED"
	EnvMasterVolume = "BLOCKSMASH_MASTER_VOLUME"
	EnvSampleRate   = "BLOCKSMASH_SAMPLE_RATE"
	EnvAssets       = "BLOCKSMASH_ASSETS"
)

// ApplyEnv overrides cfg from lookup, unparsable values are ignored
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAudioEnabled); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Audio.Enabled = b
		}
	}

	// Master volume is 0-100, clamped and converted to 0.0-1.0
	if v, ok := lookup(EnvMasterVolume); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			vol := float64(n) / 100.0
			if vol < 0 {
				vol = 0
			}
			if vol > 1 {
				vol = 1
			}
			cfg.Audio.MasterVolume = vol
		}
	}

	if v, ok := lookup(EnvSampleRate); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Audio.SampleRate = n
		}
	}

	if v, ok := lookup(EnvAssets); ok && v != "" {
		cfg.Assets.Root = v
	}
}
