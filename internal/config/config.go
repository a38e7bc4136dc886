package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// FileName is the config file looked up in the home directory.
const FileName = ".cadenzarc"

// Load reads configuration from standard locations with environment overrides.
// Search order: ~/.cadenzarc, $XDG_CONFIG_HOME/cadenza/config.toml, ~/.config/cadenza/config.toml
func Load() (*Config, error) {
	cfg := &Config{}

	// Try loading from file
	path := findConfigFile()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	// Apply defaults, then environment variable overrides
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultPath returns where a new config file is written.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// findConfigFile returns the first existing config file path.
func findConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	paths := []string{
		filepath.Join(home, FileName),
	}

	// XDG_CONFIG_HOME or default
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	paths = append(paths, filepath.Join(xdgConfig, "cadenza", "config.toml"))

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// Track
	if v := os.Getenv("CADENZA_TRACK_TITLE"); v != "" {
		cfg.Track.Title = v
	}
	if v := os.Getenv("CADENZA_TRACK_ARTIST"); v != "" {
		cfg.Track.Artist = v
	}
	if v := os.Getenv("CADENZA_TRACK_WRITER"); v != "" {
		cfg.Track.Writer = v
	}

	// Playback
	if v := os.Getenv("CADENZA_PLAYBACK_POSITION"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Playback.Position = f
		}
	}
	if v := os.Getenv("CADENZA_PLAYBACK_DURATION"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Playback.Duration = f
		}
	}
	if v := os.Getenv("CADENZA_PLAYBACK_VOLUME"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Playback.Volume = f
		}
	}
	if v := os.Getenv("CADENZA_PLAYBACK_PLAYING"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Playback.IsPlaying = b
		}
	}

	// TUI
	if v := os.Getenv("CADENZA_TUI_THEME"); v != "" {
		cfg.TUI.Theme = v
	}

	// Log
	if v := os.Getenv("CADENZA_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("CADENZA_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}
