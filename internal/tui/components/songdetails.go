package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/tessro/cadenza/internal/core"
	"github.com/tessro/cadenza/internal/tui/styles"
)

// SongDetails shows the title, artist and writer, centered.
type SongDetails struct{}

// NewSongDetails creates a new SongDetails component
func NewSongDetails() *SongDetails {
	return &SongDetails{}
}

// Render renders the three detail lines.
func (d *SongDetails) Render(s *styles.Styles, track core.Track, width int) string {
	line := func(style lipgloss.Style, text string) string {
		text = runewidth.Truncate(text, width, "…")
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(text))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		line(s.Title, track.Title),
		line(s.Subtitle, track.Artist),
		line(s.Caption, "Written by "+track.Writer),
	)
}
