package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/tessro/cadenza/internal/config"
	cerrors "github.com/tessro/cadenza/internal/errors"
	"github.com/tessro/cadenza/internal/tui/styles"
	"github.com/tessro/cadenza/internal/wizard"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Commands for viewing and editing cadenza configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration values.`,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long:  `Create a new configuration file with the sample track and default values.`,
	// the file may not exist yet, so skip loading it
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE:              runConfigInit,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Supported keys:
  track.title                Track title
  track.artist               Artist name
  track.writer               Songwriter
  track.artwork_url          Album art URL (shown as a placeholder)
  playback.position_seconds  Elapsed time in seconds
  playback.duration_seconds  Track length in seconds
  playback.volume            Volume level, 0 to 1
  playback.is_playing        Play state (true/false)
  tui.theme                  auto, dark, or light
  tui.width                  Window width in cells
  tui.height                 Window height in cells
  log.level                  debug, info, warn, or error
  log.file                   Log file path

Examples:
  cadenza config set track.title "Albireo"
  cadenza config set playback.volume 0.7`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configThemeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Interactively select the player theme",
	Long:  `Shows a picker to select the player theme.`,
	RunE:  runConfigTheme,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configThemeCmd)
	rootCmd.AddCommand(configCmd)
}

// value kinds for settable keys
type keyKind int

const (
	kindString keyKind = iota
	kindFloat
	kindInt
	kindBool
)

var settableKeys = map[string]keyKind{
	"track.title":               kindString,
	"track.artist":              kindString,
	"track.writer":              kindString,
	"track.artwork_url":         kindString,
	"playback.position_seconds": kindFloat,
	"playback.duration_seconds": kindFloat,
	"playback.volume":           kindFloat,
	"playback.is_playing":       kindBool,
	"tui.theme":                 kindString,
	"tui.width":                 kindInt,
	"tui.height":                kindInt,
	"log.level":                 kindString,
	"log.file":                  kindString,
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if JSONOutput() {
		return json.NewEncoder(out).Encode(cfg)
	}

	// Pretty print as TOML
	encoder := toml.NewEncoder(out)
	encoder.Indent = "  "
	return encoder.Encode(cfg)
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), getConfigPath())
	return err
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath := getConfigPath()

	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%w at %s", cerrors.ErrConfigExists, configPath)
	}

	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := writeConfigFile(configPath, config.Default()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if JSONOutput() {
		return json.NewEncoder(out).Encode(map[string]string{
			"status": "created",
			"path":   configPath,
		})
	}

	fmt.Fprintf(out, "Created config file: %s\n", configPath)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "  1. Edit [track] and [playback] to change what the player shows")
	fmt.Fprintln(out, "  2. Run 'cadenza ui' to open the player window")
	return nil
}

func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultPath()
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	kind, ok := settableKeys[key]
	if !ok {
		return fmt.Errorf("%w: %s", cerrors.ErrUnknownKey, key)
	}

	typed, err := parseValue(kind, value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	if key == "tui.theme" {
		if _, err := styles.ParseTheme(value); err != nil {
			return err
		}
	}

	if err := setConfigValue(getConfigPath(), key, typed); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if JSONOutput() {
		return json.NewEncoder(out).Encode(map[string]string{
			"status": "updated",
			"key":    key,
			"value":  value,
		})
	}
	fmt.Fprintf(out, "Set %s = %s\n", key, value)
	return nil
}

func runConfigTheme(cmd *cobra.Command, args []string) error {
	if !wizard.IsTerminal() {
		return cerrors.WithSuggestion(cerrors.ErrNotTerminal,
			"Run 'cadenza config set tui.theme <auto|dark|light>' instead")
	}

	theme, err := wizard.PickTheme(cfg.TUI.Theme)
	if err != nil {
		return err
	}

	return runConfigSet(cmd, []string{"tui.theme", theme})
}

func parseValue(kind keyKind, value string) (interface{}, error) {
	switch kind {
	case kindFloat:
		return strconv.ParseFloat(value, 64)
	case kindInt:
		return strconv.Atoi(value)
	case kindBool:
		return strconv.ParseBool(value)
	case kindString:
		return value, nil
	}
	return nil, fmt.Errorf("unsupported key kind %d", kind)
}

// setConfigValue rewrites one "section.field" key in the TOML file at path,
// keeping the rest of the file's values.
func setConfigValue(path, key string, value interface{}) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("%w at %s", cerrors.ErrConfigNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	var rawConfig map[string]interface{}
	if _, err := toml.Decode(string(data), &rawConfig); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if rawConfig == nil {
		rawConfig = make(map[string]interface{})
	}

	section, field, _ := strings.Cut(key, ".")

	sectionMap, ok := rawConfig[section].(map[string]interface{})
	if !ok {
		sectionMap = make(map[string]interface{})
		rawConfig[section] = sectionMap
	}
	sectionMap[field] = value

	return writeConfigFile(path, rawConfig)
}

func writeConfigFile(path string, v interface{}) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close config: %w", cerr)
		}
	}()

	_, _ = fmt.Fprintln(f, "# Cadenza Configuration")
	_, _ = fmt.Fprintln(f, "")

	encoder := toml.NewEncoder(f)
	encoder.Indent = "  "
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
