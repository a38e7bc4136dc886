package styles

import (
	"strings"

	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colors a theme resolves to.
type Palette struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Dim     lipgloss.Color
	Track   lipgloss.Color
	Fill    lipgloss.Color
	Surface lipgloss.Color
	Accent  lipgloss.Color

	// Window background runs from Top to Bottom.
	Top    lipgloss.Color
	Bottom lipgloss.Color
}

// PaletteFor returns the palette for a resolved (non-auto) theme.
func PaletteFor(theme Theme) Palette {
	switch theme.Resolve() {
	case ThemeLight:
		f := catppuccin.Latte
		return Palette{
			Text:    lipgloss.Color(f.Text().Hex),
			Muted:   lipgloss.Color(f.Subtext0().Hex),
			Dim:     lipgloss.Color(f.Overlay0().Hex),
			Track:   lipgloss.Color(f.Surface1().Hex),
			Fill:    lipgloss.Color(f.Text().Hex),
			Surface: lipgloss.Color(f.Surface0().Hex),
			Accent:  lipgloss.Color(f.Mauve().Hex),
			Top:     lipgloss.Color(f.Base().Hex),
			Bottom:  lipgloss.Color(f.Mantle().Hex),
		}
	default:
		f := catppuccin.Mocha
		return Palette{
			Text:    lipgloss.Color("#FFFFFF"),
			Muted:   lipgloss.Color(f.Subtext1().Hex),
			Dim:     lipgloss.Color(f.Overlay1().Hex),
			Track:   lipgloss.Color(f.Surface2().Hex),
			Fill:    lipgloss.Color("#FFFFFF"),
			Surface: lipgloss.Color(f.Surface1().Hex),
			Accent:  lipgloss.Color(f.Mauve().Hex),
			Top:     lipgloss.Color("#4A3E4C"),
			Bottom:  lipgloss.Color("#3B323D"),
		}
	}
}

// Styles holds every style the player window uses.
type Styles struct {
	Palette Palette

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Caption  lipgloss.Style
	Time     lipgloss.Style
	Muted    lipgloss.Style
	Dim      lipgloss.Style
	Window   lipgloss.Style
	Art      lipgloss.Style
	Close    lipgloss.Style
}

// New builds the styles for a theme.
func New(theme Theme) *Styles {
	p := PaletteFor(theme)
	mid := Gradient(p.Top, p.Bottom, 3)[1]

	return &Styles{
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),

		Subtitle: lipgloss.NewStyle().
			Foreground(p.Muted),

		Caption: lipgloss.NewStyle().
			Foreground(p.Dim),

		Time: lipgloss.NewStyle().
			Foreground(p.Muted),

		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),

		Dim: lipgloss.NewStyle().
			Foreground(p.Dim),

		Window: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderTopForeground(p.Top).
			BorderLeftForeground(mid).
			BorderRightForeground(mid).
			BorderBottomForeground(p.Bottom).
			Padding(0, 2),

		Art: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Surface),

		Close: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),
	}
}

// Bar draws a horizontal bar of width cells with percent of them filled.
func (s *Styles) Bar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := Filled(percent, width)

	fill := lipgloss.NewStyle().Foreground(s.Palette.Fill)
	track := lipgloss.NewStyle().Foreground(s.Palette.Track)

	return fill.Render(strings.Repeat("━", filled)) +
		track.Render(strings.Repeat("─", width-filled))
}

// Seek draws a progress bar with a thumb marking the current position.
func (s *Styles) Seek(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	thumb := Marker(percent, width)

	fill := lipgloss.NewStyle().Foreground(s.Palette.Fill)
	track := lipgloss.NewStyle().Foreground(s.Palette.Track)

	return fill.Render(strings.Repeat("━", thumb)) +
		fill.Bold(true).Render("┃") +
		track.Render(strings.Repeat("─", width-thumb-1))
}

// Filled returns how many of width cells percent covers.
func Filled(percent float64, width int) int {
	if width <= 0 || !(percent > 0) {
		return 0
	}
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	return filled
}

// Marker returns the cell index of a thumb at percent along width cells.
func Marker(percent float64, width int) int {
	if width <= 0 {
		return 0
	}
	pos := Filled(percent, width)
	if pos >= width {
		pos = width - 1
	}
	return pos
}
