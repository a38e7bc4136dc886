package wizard

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/tessro/cadenza/internal/tui/styles"
	"golang.org/x/term"
)

// IsTerminal returns true if stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsColorTerminal returns true if stdout is a terminal that takes escape codes.
// Cygwin and MSYS ptys count.
func IsColorTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// TerminalSize returns the size of the terminal on stdout.
func TerminalSize() (width, height int, ok bool) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, false
	}
	return w, h, true
}

// ThemeOptions returns the picker options for each theme, current first marked.
func ThemeOptions(current string) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(styles.Themes))
	for _, name := range styles.Themes {
		label := name
		if name == current {
			label += " [current]"
		}
		options = append(options, huh.NewOption(label, name))
	}
	return options
}

// PickTheme shows a picker for the window theme and returns the choice.
func PickTheme(current string) (string, error) {
	selected := current
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select player theme").
				Description("auto follows the terminal background").
				Options(ThemeOptions(current)...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}
	return selected, nil
}
