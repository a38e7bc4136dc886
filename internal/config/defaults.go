package config

import "github.com/tessro/cadenza/internal/core"

// Default returns a Config populated with the sample track and playback.
func Default() *Config {
	return &Config{
		Track:    core.SampleTrack(),
		Playback: core.SamplePlayback(),
		TUI: TUIConfig{
			Theme: "auto",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
// Playback numbers are only defaulted when the whole section is empty,
// since 0 is a meaningful position and volume.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Track
	if c.Track == (core.Track{}) {
		c.Track = d.Track
	}

	// Playback
	if c.Playback == (core.PlaybackState{}) {
		c.Playback = d.Playback
	}

	// TUI
	if c.TUI.Theme == "" {
		c.TUI.Theme = d.TUI.Theme
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}
