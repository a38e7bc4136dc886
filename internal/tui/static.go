package tui

import (
	"github.com/tessro/cadenza/internal/tui/components"
	"github.com/tessro/cadenza/internal/tui/styles"
)

// Render draws the player window once, without starting an event loop.
func Render(opts Options) string {
	width, height := components.Size(opts.Width, opts.Height)
	player := components.NewPlayer(opts.Track, opts.Playback, opts.OnClose)
	return player.Render(styles.New(opts.Theme), width, height)
}
