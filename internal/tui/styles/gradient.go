package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Gradient returns steps colors blended from one hex color to another.
// Unparseable colors fall back to repeating from.
func Gradient(from, to lipgloss.Color, steps int) []lipgloss.Color {
	if steps <= 0 {
		return nil
	}
	start, err := colorful.Hex(string(from))
	if err != nil {
		return repeatColor(from, steps)
	}
	end, err := colorful.Hex(string(to))
	if err != nil {
		return repeatColor(from, steps)
	}

	out := make([]lipgloss.Color, steps)
	out[0] = from
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		out[i] = lipgloss.Color(start.BlendLab(end, t).Clamped().Hex())
	}
	if steps > 1 {
		out[steps-1] = to
	}
	return out
}

func repeatColor(c lipgloss.Color, n int) []lipgloss.Color {
	out := make([]lipgloss.Color, n)
	for i := range out {
		out[i] = c
	}
	return out
}
