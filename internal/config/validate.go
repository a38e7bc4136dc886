package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/tessro/cadenza/internal/tui/styles"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := validateTrack(c.Track.ArtworkURL); err != nil {
		errs = append(errs, fmt.Errorf("track: %w", err))
	}
	if err := c.TUI.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("tui: %w", err))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	return errors.Join(errs...)
}

// Playback values are deliberately not range checked: the player clamps them.
func validateTrack(artworkURL string) error {
	if artworkURL != "" {
		if _, err := url.Parse(artworkURL); err != nil {
			return fmt.Errorf("invalid artwork_url: %w", err)
		}
	}
	return nil
}

// Validate checks TUIConfig for errors.
func (c *TUIConfig) Validate() error {
	if _, err := styles.ParseTheme(c.Theme); err != nil {
		return err
	}
	if c.Width < 0 || c.Height < 0 {
		return errors.New("width and height must be non-negative")
	}
	return nil
}

// Validate checks LogConfig for errors.
func (c *LogConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Level)
	}
	return nil
}
