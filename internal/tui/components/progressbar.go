package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/cadenza/internal/core"
	"github.com/tessro/cadenza/internal/tui/styles"
)

const timeLabelWidth = 6

// ProgressBar shows elapsed time, a seek bar, and the time remaining.
type ProgressBar struct{}

// NewProgressBar creates a new ProgressBar component
func NewProgressBar() *ProgressBar {
	return &ProgressBar{}
}

// Render renders the progress row at the given width.
func (p *ProgressBar) Render(s *styles.Styles, g core.Geometry, width int) string {
	// Columns grow for labels past 99:59 so they never wrap.
	elapsedLabel := g.Elapsed
	remainingLabel := "-" + g.RemainingLabel
	elapsedWidth := max(timeLabelWidth, lipgloss.Width(elapsedLabel))
	remainingWidth := max(timeLabelWidth, lipgloss.Width(remainingLabel))

	elapsed := s.Time.Width(elapsedWidth).Render(elapsedLabel)
	remaining := s.Time.Width(remainingWidth).
		Align(lipgloss.Right).
		Render(remainingLabel)

	barWidth := width - elapsedWidth - remainingWidth
	if barWidth < 4 {
		barWidth = 4
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		elapsed,
		s.Seek(g.ProgressPercent, barWidth),
		remaining,
	)
}
