package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/tessro/cadenza/internal/tui"
	"github.com/tessro/cadenza/internal/tui/components"
	"github.com/tessro/cadenza/internal/tui/styles"
	"github.com/tessro/cadenza/internal/wizard"
	"go.uber.org/zap"
)

const defaultShowWidth = 40

var (
	showWidth  int
	showHeight int
	showTheme  string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the player window once",
	Long: `Print the player window to stdout and exit.

Colors are dropped when stdout is not a terminal.`,
	RunE: runShow,
}

func addShowFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&showWidth, "width", 0, "window width in cells (default: config or 40)")
	cmd.Flags().IntVar(&showHeight, "height", 0, "window height in cells (default: config or minimum)")
	cmd.Flags().StringVar(&showTheme, "theme", "", "theme: auto, dark, or light (default: config)")
}

func init() {
	addShowFlags(showCmd)
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	opts, err := playerOptions(showWidth, showHeight, showTheme)
	if err != nil {
		return err
	}
	if opts.Width == 0 {
		opts.Width = defaultShowWidth
		if w, _, ok := wizard.TerminalSize(); ok && w < opts.Width {
			opts.Width = max(w, components.MinWidth)
		}
	}

	if !wizard.IsColorTerminal() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logger.Debug("rendering player",
		zap.Int("width", opts.Width),
		zap.Int("height", opts.Height),
		zap.Stringer("theme", opts.Theme))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.Render(opts))
	return err
}

// playerOptions merges flags over the loaded config.
func playerOptions(width, height int, theme string) (tui.Options, error) {
	if theme == "" {
		theme = cfg.TUI.Theme
	}
	th, err := styles.ParseTheme(theme)
	if err != nil {
		return tui.Options{}, err
	}
	if width == 0 {
		width = cfg.TUI.Width
	}
	if height == 0 {
		height = cfg.TUI.Height
	}

	return tui.Options{
		Track:    cfg.Track,
		Playback: cfg.Playback,
		Theme:    th,
		Width:    width,
		Height:   height,
		Logger:   logger,
	}, nil
}
