package core

// PlaybackState holds the raw playback numbers the window displays.
// Position and Duration are in seconds, Volume is a 0-1 level.
// Values are not validated; Geometry normalizes them.
type PlaybackState struct {
	Position  float64 `json:"position_seconds" toml:"position_seconds"`
	Duration  float64 `json:"duration_seconds" toml:"duration_seconds"`
	IsPlaying bool    `json:"is_playing" toml:"is_playing"`
	Volume    float64 `json:"volume" toml:"volume"`
}

// Geometry returns the clamped values and labels for this state.
// A nil state measures as empty playback.
func (s *PlaybackState) Geometry() Geometry {
	if s == nil {
		return Measure(0, 0, 0)
	}
	return Measure(s.Position, s.Duration, s.Volume)
}

// ProgressPercent returns playback progress as a percentage (0-100).
func (s *PlaybackState) ProgressPercent() float64 {
	return s.Geometry().ProgressPercent
}
