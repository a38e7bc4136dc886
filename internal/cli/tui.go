package cli

import (
	"github.com/spf13/cobra"
	"github.com/tessro/cadenza/internal/core"
	cerrors "github.com/tessro/cadenza/internal/errors"
	"github.com/tessro/cadenza/internal/tui"
	"github.com/tessro/cadenza/internal/wizard"
	"go.uber.org/zap"
)

var (
	uiWidth  int
	uiHeight int
	uiTheme  string
)

var tuiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"tui", "open"},
	Short:   "Open the player window",
	Long: `Open the player window full screen.

The window is a static mockup; the only action is closing it.

Keyboard shortcuts:
  q, x, Esc, Ctrl+C    Close
  ?                    Toggle help`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().IntVar(&uiWidth, "width", 0, "fixed window width (default: fill terminal)")
	tuiCmd.Flags().IntVar(&uiHeight, "height", 0, "fixed window height (default: fill terminal)")
	tuiCmd.Flags().StringVar(&uiTheme, "theme", "", "theme: auto, dark, or light (default: config)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !wizard.IsTerminal() {
		return cerrors.WithSuggestion(cerrors.ErrNotTerminal,
			"The player window needs a terminal. Run 'cadenza show' to print it instead")
	}

	opts, err := playerOptions(uiWidth, uiHeight, uiTheme)
	if err != nil {
		return err
	}
	opts.OnClose = core.CloseFunc(func() error {
		logger.Info("player window closed", zap.String("track", opts.Track.Title))
		return nil
	})

	return tui.Run(opts)
}
