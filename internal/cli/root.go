package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/tessro/cadenza/internal/config"
	cerrors "github.com/tessro/cadenza/internal/errors"
	"github.com/tessro/cadenza/internal/logging"
	"go.uber.org/zap"
)

var (
	cfgFile string
	jsonOut bool
	verbose bool

	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "cadenza",
	Short: "Draw a music player window in the terminal",
	Long: `Cadenza renders a static mockup of a desktop music player: album art,
progress, track details, and playback and volume controls.

Run without a subcommand to print the player once.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE:          runShow,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.cadenzarc)")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	addShowFlags(rootCmd)
}

func initConfig() error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", cerrors.ErrConfigNotFound, cfgFile)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", cerrors.ErrInvalidConfig, err)
	}

	logger, err = logging.New(cfg.Log.Level, cfg.Log.File, verbose)
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded",
		zap.String("config", cfgFile),
		zap.String("theme", cfg.TUI.Theme),
		zap.String("track", cfg.Track.Title))

	return nil
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, cerrors.Format(err))
		os.Exit(1)
	}
}

// JSONOutput returns true if JSON output is requested.
func JSONOutput() bool {
	return jsonOut
}

// Verbose returns true if verbose output is requested.
func Verbose() bool {
	return verbose
}
