package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	cerrors "github.com/tessro/cadenza/internal/errors"
	"github.com/tessro/cadenza/internal/wizard"
)

// run executes the root command with fresh flag state and an empty home.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	cfgFile, jsonOut, verbose = "", false, false
	showWidth, showHeight, showTheme = 0, 0, ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestStatusTable(t *testing.T) {
	out, err := run(t, "status")
	if err != nil {
		t.Fatalf("status error = %v", err)
	}

	for _, want := range []string{"Albireo", "paused", "0:19", "-3:46", "4:05", "7.8%", "70%"} {
		if !strings.Contains(out, want) {
			t.Errorf("status output missing %q:\n%s", want, out)
		}
	}
}

func TestStatusJSON(t *testing.T) {
	out, err := run(t, "status", "--json")
	if err != nil {
		t.Fatalf("status error = %v", err)
	}

	var got statusResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if got.Geometry.Remaining != 226 || got.Geometry.Position != 19 {
		t.Errorf("geometry = %+v", got.Geometry)
	}
	if got.Geometry.RemainingLabel != "3:46" {
		t.Errorf("remaining label = %q, want 3:46", got.Geometry.RemainingLabel)
	}
}

func TestConfigInitSetAndStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cadenza.toml")

	if _, err := run(t, "--config", path, "config", "init"); err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	if _, err := run(t, "--config", path, "config", "init"); !errors.Is(err, cerrors.ErrConfigExists) {
		t.Errorf("second init error = %v, want ErrConfigExists", err)
	}

	if _, err := run(t, "--config", path, "config", "set", "playback.volume", "1.5"); err != nil {
		t.Fatalf("config set error = %v", err)
	}
	if _, err := run(t, "--config", path, "config", "set", "playback.position_seconds", "999"); err != nil {
		t.Fatalf("config set error = %v", err)
	}

	out, err := run(t, "--config", path, "status", "--json")
	if err != nil {
		t.Fatalf("status error = %v", err)
	}
	var got statusResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if got.Geometry.VolumePercent != 100 {
		t.Errorf("volume percent = %v, want 100", got.Geometry.VolumePercent)
	}
	if got.Geometry.ProgressPercent != 100 || got.Geometry.Remaining != 0 {
		t.Errorf("overshot position should clamp to the end, got %+v", got.Geometry)
	}
}

func TestConfigSetErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cadenza.toml")
	if _, err := run(t, "--config", path, "config", "init"); err != nil {
		t.Fatalf("config init error = %v", err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{"unknown key", []string{"tui.color", "red"}},
		{"bad float", []string{"playback.volume", "loud"}},
		{"bad bool", []string{"playback.is_playing", "sometimes"}},
		{"bad theme", []string{"tui.theme", "neon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--config", path, "config", "set"}, tt.args...)
			if _, err := run(t, args...); err == nil {
				t.Error("expected error")
			}
		})
	}

	_, err := run(t, "--config", path, "config", "set", "tui.color", "red")
	if !errors.Is(err, cerrors.ErrUnknownKey) {
		t.Errorf("error = %v, want ErrUnknownKey", err)
	}
}

func TestMissingConfigFile(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "status")
	if !errors.Is(err, cerrors.ErrConfigNotFound) {
		t.Errorf("error = %v, want ErrConfigNotFound", err)
	}
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[tui]\ntheme = \"neon\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := run(t, "--config", path, "status")
	if !errors.Is(err, cerrors.ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
}

func TestShow(t *testing.T) {
	out, err := run(t, "show", "--width", "34", "--theme", "dark")
	if err != nil {
		t.Fatalf("show error = %v", err)
	}

	plain := ansi.Strip(strings.TrimSuffix(out, "\n"))
	lines := strings.Split(plain, "\n")
	if got := lipgloss.Width(lines[0]); got != 34 {
		t.Errorf("window width = %d, want 34", got)
	}
	if len(lines) != 24 {
		t.Errorf("window height = %d, want 24", len(lines))
	}
	for _, want := range []string{"0:19", "-3:46", "Albireo"} {
		if !strings.Contains(plain, want) {
			t.Errorf("show output missing %q", want)
		}
	}
}

func TestShowIsDefault(t *testing.T) {
	out, err := run(t, "--theme", "light")
	if err != nil {
		t.Fatalf("root error = %v", err)
	}
	if !strings.Contains(ansi.Strip(out), "Written by") {
		t.Errorf("root command should render the player:\n%s", out)
	}
}

func TestShowBadTheme(t *testing.T) {
	if _, err := run(t, "show", "--theme", "neon"); err == nil {
		t.Error("expected error for invalid theme")
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "cadenza dev") {
		t.Errorf("version = %q", out)
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0%"},
		{70.00000000000001, "70%"},
		{7.755, "7.8%"},
		{100, "100%"},
	}
	for _, tt := range tests {
		if got := FormatPercent(tt.in); got != tt.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestShowDefaultWidth(t *testing.T) {
	if wizard.IsTerminal() {
		t.Skip("stdout is a terminal; width follows it")
	}
	out, err := run(t, "show")
	if err != nil {
		t.Fatalf("show error = %v", err)
	}
	lines := strings.Split(ansi.Strip(strings.TrimSuffix(out, "\n")), "\n")
	if got := lipgloss.Width(lines[0]); got != defaultShowWidth {
		t.Errorf("window width = %d, want %d", got, defaultShowWidth)
	}
}

func TestUINeedsTerminal(t *testing.T) {
	if wizard.IsTerminal() {
		t.Skip("stdout is a terminal")
	}
	_, err := run(t, "ui")
	if !errors.Is(err, cerrors.ErrNotTerminal) {
		t.Fatalf("ui error = %v, want ErrNotTerminal", err)
	}
	if got := cerrors.GetSuggestion(err); !strings.Contains(got, "cadenza show") {
		t.Errorf("suggestion = %q, want it to point at 'cadenza show'", got)
	}
	var cErr *cerrors.CadenzaError
	if !errors.As(err, &cErr) {
		t.Errorf("ui error should carry an explicit suggestion, got %T", err)
	}
}

func TestWriteConfigFileReportsErrors(t *testing.T) {
	if err := writeConfigFile(filepath.Join(t.TempDir(), "missing", "cadenza.toml"), map[string]string{}); err == nil {
		t.Error("expected error creating config in a missing directory")
	}

	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	if err := writeConfigFile("/dev/full", map[string]interface{}{"tui": map[string]interface{}{"theme": "dark"}}); err == nil {
		t.Error("expected error writing config to a full device")
	}
}
