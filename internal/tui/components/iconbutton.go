package components

import "github.com/tessro/cadenza/internal/tui/styles"

// IconButton is a glyph with a static accessible label.
type IconButton struct {
	Label   string
	Glyph   string
	Variant styles.Variant
	Size    styles.Size
	Rounded styles.Rounded
}

// NewIconButton creates a ghost, medium, large-cornered button.
func NewIconButton(label, glyph string) *IconButton {
	return &IconButton{
		Label:   label,
		Glyph:   glyph,
		Variant: styles.VariantGhost,
		Size:    styles.SizeMedium,
		Rounded: styles.RoundedLarge,
	}
}

// Render renders the button.
func (b *IconButton) Render(s *styles.Styles) string {
	return s.Button(b.Variant, b.Size, b.Rounded).Render(b.Glyph)
}
