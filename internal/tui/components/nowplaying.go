package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/cadenza/internal/core"
	"github.com/tessro/cadenza/internal/tui/styles"
)

// Minimum window size in terminal cells.
const (
	MinWidth  = 30
	MinHeight = 24
)

// rows taken by everything except the album art
const fixedRows = 16

// Player composes the whole player window.
type Player struct {
	track    core.Track
	playback core.PlaybackState

	closeButton *CloseButton
	albumArt    *AlbumArt
	progress    *ProgressBar
	details     *SongDetails
	primary     *PrimaryControls
	volume      *VolumeControl
	secondary   *SecondaryControls
}

// NewPlayer creates the player window for a track and playback state.
// onClose may be nil.
func NewPlayer(track core.Track, playback core.PlaybackState, onClose core.CloseAction) *Player {
	return &Player{
		track:       track,
		playback:    playback,
		closeButton: NewCloseButton(onClose),
		albumArt:    NewAlbumArt(track.ArtworkURL, track.AltText()),
		progress:    NewProgressBar(),
		details:     NewSongDetails(),
		primary:     NewPrimaryControls(playback.IsPlaying),
		volume:      NewVolumeControl(),
		secondary:   NewSecondaryControls(),
	}
}

// Close presses the window's close button.
func (p *Player) Close() error {
	return p.closeButton.Press()
}

// Labels returns the accessible labels of every control, in display order.
func (p *Player) Labels() []string {
	labels := []string{p.closeButton.Label}
	for _, b := range p.primary.Buttons() {
		labels = append(labels, b.Label)
	}
	for _, b := range p.secondary.Buttons() {
		labels = append(labels, b.Label)
	}
	return labels
}

// Size clamps a requested window size to the minimum.
func Size(width, height int) (int, int) {
	return max(width, MinWidth), max(height, MinHeight)
}

// Render renders the window at width x height cells, border included.
func (p *Player) Render(s *styles.Styles, width, height int) string {
	width, height = Size(width, height)

	// border and horizontal padding
	inner := width - 6
	artHeight := height - 2 - fixedRows

	g := p.playback.Geometry()

	titleBar := lipgloss.PlaceHorizontal(inner, lipgloss.Right, p.closeButton.Render(s))

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleBar,
		p.albumArt.Render(s, inner, artHeight),
		"",
		p.progress.Render(s, g, inner),
		"",
		p.details.Render(s, p.track, inner),
		"",
		p.primary.Render(s, inner),
		"",
		p.volume.Render(s, g.VolumePercent, inner),
		p.secondary.Render(s, inner),
	)

	return s.Window.
		Width(width - 2).
		Height(height - 2).
		Render(body)
}
