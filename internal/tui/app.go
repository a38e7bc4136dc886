package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/cadenza/internal/core"
	"github.com/tessro/cadenza/internal/tui/components"
	"github.com/tessro/cadenza/internal/tui/styles"
	"go.uber.org/zap"
)

// Options configures the player window.
type Options struct {
	Track    core.Track
	Playback core.PlaybackState
	Theme    styles.Theme

	// Fixed window size; zero means fill the terminal.
	Width  int
	Height int

	// OnClose runs when the window is closed. May be nil.
	OnClose core.CloseAction

	Logger *zap.Logger
}

// Model is the main TUI model
type Model struct {
	player *components.Player
	styles *styles.Styles
	help   help.Model
	log    *zap.Logger

	width  int
	height int
	fixed  bool

	showHelp bool
	closeErr error
	quitting bool
}

// NewModel creates a new TUI model
func NewModel(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		player: components.NewPlayer(opts.Track, opts.Playback, opts.OnClose),
		styles: styles.New(opts.Theme),
		help:   h,
		log:    log,
	}
	if opts.Width > 0 || opts.Height > 0 {
		m.width, m.height = components.Size(opts.Width, opts.Height)
		m.fixed = true
	}
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		if !m.fixed {
			m.width = msg.Width
			m.height = msg.Height
		}
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Close):
		m.log.Debug("closing player window", zap.String("key", msg.String()))
		if err := m.player.Close(); err != nil {
			m.log.Error("close action failed", zap.Error(err))
			m.closeErr = err
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	return m, nil
}

// Err returns the error from the close action, if it failed.
func (m Model) Err() error {
	return m.closeErr
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 {
		return "Loading..."
	}

	helpView := m.styles.Dim.Render(m.help.View(keys))

	height := m.height
	if !m.fixed {
		// leave room for the help rows, which grow when ? is toggled
		height -= lipgloss.Height(helpView)
	}
	window := m.player.Render(m.styles, m.width, height)

	return lipgloss.JoinVertical(lipgloss.Center, window, helpView)
}

// Run starts the TUI application
func Run(opts Options) error {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	model := NewModel(opts)
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("player window: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fmt.Errorf("close action: %w", fm.Err())
	}
	return nil
}
