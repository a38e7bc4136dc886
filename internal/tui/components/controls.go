package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/cadenza/internal/tui/styles"
)

// PrimaryControls holds previous, play/pause and next.
type PrimaryControls struct {
	Previous *IconButton
	Toggle   *IconButton
	Next     *IconButton
}

// NewPrimaryControls creates the transport buttons for the given play state.
func NewPrimaryControls(isPlaying bool) *PrimaryControls {
	toggle := NewIconButton("Play", "▶")
	if isPlaying {
		toggle = NewIconButton("Pause", "⏸")
	}
	toggle.Variant = styles.VariantSolid
	toggle.Size = styles.SizeLarge
	toggle.Rounded = styles.RoundedFull

	prev := NewIconButton("Previous track", "⏮")
	prev.Rounded = styles.RoundedFull
	next := NewIconButton("Next track", "⏭")
	next.Rounded = styles.RoundedFull

	return &PrimaryControls{Previous: prev, Toggle: toggle, Next: next}
}

// Buttons returns the buttons in display order.
func (c *PrimaryControls) Buttons() []*IconButton {
	return []*IconButton{c.Previous, c.Toggle, c.Next}
}

// Render renders the buttons centered in width.
func (c *PrimaryControls) Render(s *styles.Styles, width int) string {
	row := lipgloss.JoinHorizontal(lipgloss.Center,
		c.Previous.Render(s),
		"  ",
		c.Toggle.Render(s),
		"  ",
		c.Next.Render(s),
	)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
}

// SecondaryControls holds stop, shuffle, repeat and the queue toggle.
type SecondaryControls struct {
	buttons []*IconButton
}

// NewSecondaryControls creates the secondary button row.
func NewSecondaryControls() *SecondaryControls {
	return &SecondaryControls{
		buttons: []*IconButton{
			NewIconButton("Stop", "■"),
			NewIconButton("Shuffle", "⇄"),
			NewIconButton("Repeat", "↻"),
			NewIconButton("Open queue", "≡"),
		},
	}
}

// Buttons returns the buttons in display order.
func (c *SecondaryControls) Buttons() []*IconButton {
	return c.buttons
}

// Render spreads the buttons evenly across width.
func (c *SecondaryControls) Render(s *styles.Styles, width int) string {
	cell := width / len(c.buttons)
	cells := make([]string, len(c.buttons))
	for i, b := range c.buttons {
		w := cell
		if i == len(c.buttons)-1 {
			w = width - cell*(len(c.buttons)-1)
		}
		cells[i] = lipgloss.PlaceHorizontal(w, lipgloss.Center, b.Render(s))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// VolumeControl shows the volume level between quiet and loud glyphs.
type VolumeControl struct{}

// NewVolumeControl creates a new VolumeControl component
func NewVolumeControl() *VolumeControl {
	return &VolumeControl{}
}

// Render renders the volume row at the given width.
func (v *VolumeControl) Render(s *styles.Styles, volumePercent float64, width int) string {
	low := s.Dim.Render("🔈")
	high := s.Dim.Render("🔊")

	barWidth := width - lipgloss.Width(low) - lipgloss.Width(high) - 4
	if barWidth < 4 {
		barWidth = 4
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		low+"  "+s.Bar(volumePercent, barWidth)+"  "+high)
}
