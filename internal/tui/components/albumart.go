package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/tessro/cadenza/internal/tui/styles"
)

// AlbumArt draws a framed placeholder where the cover image would be.
// The image at Src is never fetched.
type AlbumArt struct {
	Src string
	Alt string
}

// NewAlbumArt creates an album art placeholder.
func NewAlbumArt(src, alt string) *AlbumArt {
	return &AlbumArt{Src: src, Alt: alt}
}

// Render renders the placeholder filling width x height cells, frame included.
func (a *AlbumArt) Render(s *styles.Styles, width, height int) string {
	innerW := width - 2
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	shades := styles.Gradient(s.Palette.Top, s.Palette.Bottom, innerH)
	label := runewidth.Truncate(a.Alt, innerW, "…")
	labelRow := innerH / 2

	rows := make([]string, innerH)
	for i := range rows {
		shade := lipgloss.NewStyle().Foreground(shades[i])
		if i == labelRow && label != "" {
			pad := innerW - lipgloss.Width(label)
			left := pad / 2
			rows[i] = shade.Render(strings.Repeat("░", left)) +
				s.Caption.Render(label) +
				shade.Render(strings.Repeat("░", pad-left))
			continue
		}
		rows[i] = shade.Render(strings.Repeat("░", innerW))
	}

	return s.Art.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
