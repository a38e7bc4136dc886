package styles

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestFilled(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		width   int
		want    int
	}{
		{"empty", 0, 20, 0},
		{"half", 50, 20, 10},
		{"full", 100, 20, 20},
		{"over", 150, 20, 20},
		{"negative", -5, 20, 0},
		{"nan", math.NaN(), 20, 0},
		{"zero width", 50, 0, 0},
		{"rounds down", 7.755, 40, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filled(tt.percent, tt.width); got != tt.want {
				t.Errorf("Filled(%v, %d) = %d, want %d", tt.percent, tt.width, got, tt.want)
			}
		})
	}
}

func TestMarker(t *testing.T) {
	if got := Marker(100, 10); got != 9 {
		t.Errorf("Marker(100, 10) = %d, want 9", got)
	}
	if got := Marker(0, 10); got != 0 {
		t.Errorf("Marker(0, 10) = %d, want 0", got)
	}
	if got := Marker(50, 0); got != 0 {
		t.Errorf("Marker(50, 0) = %d, want 0", got)
	}
}

func TestBarWidth(t *testing.T) {
	s := New(ThemeDark)
	for _, pct := range []float64{0, 7.755, 50, 100, 250, -1} {
		bar := ansi.Strip(s.Bar(pct, 24))
		if got := lipgloss.Width(bar); got != 24 {
			t.Errorf("Bar(%v, 24) width = %d, want 24", pct, got)
		}
		seek := ansi.Strip(s.Seek(pct, 24))
		if got := lipgloss.Width(seek); got != 24 {
			t.Errorf("Seek(%v, 24) width = %d, want 24", pct, got)
		}
		if strings.Count(seek, "┃") != 1 {
			t.Errorf("Seek(%v, 24) = %q, want exactly one thumb", pct, seek)
		}
	}

	if got := s.Bar(50, 0); got != "" {
		t.Errorf("Bar with zero width = %q, want empty", got)
	}
}

func TestBarFill(t *testing.T) {
	s := New(ThemeDark)
	bar := ansi.Strip(s.Bar(70, 10))
	if want := strings.Repeat("━", 7) + strings.Repeat("─", 3); bar != want {
		t.Errorf("Bar(70, 10) = %q, want %q", bar, want)
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"", ThemeAuto, false},
		{"auto", ThemeAuto, false},
		{"dark", ThemeDark, false},
		{"light", ThemeLight, false},
		{"neon", ThemeAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTheme(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTheme(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseTheme(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	for _, name := range Themes {
		th, err := ParseTheme(name)
		if err != nil {
			t.Errorf("ParseTheme(%q) rejected a listed theme: %v", name, err)
		}
		if th.String() != name {
			t.Errorf("Theme(%q).String() = %q", name, th.String())
		}
	}
}

func TestResolve(t *testing.T) {
	if got := ThemeLight.Resolve(); got != ThemeLight {
		t.Errorf("ThemeLight.Resolve() = %v", got)
	}
	if got := ThemeDark.Resolve(); got != ThemeDark {
		t.Errorf("ThemeDark.Resolve() = %v", got)
	}
	if got := ThemeAuto.Resolve(); got == ThemeAuto {
		t.Error("ThemeAuto.Resolve() returned ThemeAuto")
	}
}

func TestGradient(t *testing.T) {
	colors := Gradient("#4a3e4c", "#3b323d", 5)
	if len(colors) != 5 {
		t.Fatalf("len = %d, want 5", len(colors))
	}
	if !strings.EqualFold(string(colors[0]), "#4a3e4c") {
		t.Errorf("first = %s, want #4a3e4c", colors[0])
	}
	if !strings.EqualFold(string(colors[4]), "#3b323d") {
		t.Errorf("last = %s, want #3b323d", colors[4])
	}

	if got := Gradient("#000000", "#ffffff", 0); got != nil {
		t.Errorf("zero steps = %v, want nil", got)
	}

	bad := Gradient("plum", "#ffffff", 3)
	for _, c := range bad {
		if c != "plum" {
			t.Errorf("unparseable gradient = %v, want repeated from color", bad)
			break
		}
	}
}

func TestButtonVariants(t *testing.T) {
	s := New(ThemeDark)
	variants := []Variant{VariantGhost, VariantSolid}
	sizes := []Size{SizeMedium, SizeLarge}
	corners := []Rounded{RoundedLarge, RoundedFull}

	for _, v := range variants {
		for _, sz := range sizes {
			for _, r := range corners {
				out := ansi.Strip(s.Button(v, sz, r).Render("▶"))
				if lipgloss.Height(out) != 3 {
					t.Errorf("Button(%d,%d,%d) height = %d, want 3", v, sz, r, lipgloss.Height(out))
				}
				if !strings.Contains(out, "▶") {
					t.Errorf("Button(%d,%d,%d) lost its glyph: %q", v, sz, r, out)
				}
			}
		}
	}

	large := lipgloss.Width(s.Button(VariantSolid, SizeLarge, RoundedFull).Render("▶"))
	medium := lipgloss.Width(s.Button(VariantSolid, SizeMedium, RoundedFull).Render("▶"))
	if large <= medium {
		t.Errorf("large button width %d should exceed medium %d", large, medium)
	}

	solid := ansi.Strip(s.Button(VariantSolid, SizeLarge, RoundedFull).Render("▶"))
	if !strings.Contains(solid, "╭") {
		t.Errorf("rounded solid button missing rounded corner: %q", solid)
	}
}
