package config

import "github.com/tessro/cadenza/internal/core"

// Config is the root configuration structure.
type Config struct {
	Track    core.Track         `toml:"track" json:"track"`
	Playback core.PlaybackState `toml:"playback" json:"playback"`
	TUI      TUIConfig          `toml:"tui" json:"tui"`
	Log      LogConfig          `toml:"log" json:"log"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme  string `toml:"theme" json:"theme"`
	Width  int    `toml:"width" json:"width"`
	Height int    `toml:"height" json:"height"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level" json:"level"`
	File  string `toml:"file" json:"file"`
}
