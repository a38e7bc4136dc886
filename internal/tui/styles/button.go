package styles

import "github.com/charmbracelet/lipgloss"

// Variant is the fill style of an icon button.
type Variant int

const (
	VariantGhost Variant = iota
	VariantSolid
)

// Size is the padding of an icon button.
type Size int

const (
	SizeMedium Size = iota
	SizeLarge
)

// Rounded is the corner style of an icon button.
type Rounded int

const (
	RoundedLarge Rounded = iota
	RoundedFull
)

// Button returns the style for an icon button.
func (s *Styles) Button(v Variant, size Size, r Rounded) lipgloss.Style {
	style := lipgloss.NewStyle()

	switch v {
	case VariantGhost:
		style = style.Foreground(s.Palette.Muted).
			Border(lipgloss.HiddenBorder())
	case VariantSolid:
		style = style.Bold(true).
			Foreground(s.Palette.Text).
			Border(border(r)).
			BorderForeground(s.Palette.Surface)
	}

	switch size {
	case SizeMedium:
		style = style.Padding(0, 1)
	case SizeLarge:
		style = style.Padding(0, 2)
	}

	return style
}

func border(r Rounded) lipgloss.Border {
	switch r {
	case RoundedFull:
		return lipgloss.RoundedBorder()
	case RoundedLarge:
		return lipgloss.NormalBorder()
	}
	return lipgloss.NormalBorder()
}
