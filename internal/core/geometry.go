package core

import "math"

// Geometry holds the derived values the player view needs to size its
// progress and volume indicators.
type Geometry struct {
	Position        float64 `json:"position"`
	Duration        float64 `json:"duration"`
	Remaining       float64 `json:"remaining"`
	ProgressPercent float64 `json:"progress_percent"`
	VolumePercent   float64 `json:"volume_percent"`
	Elapsed         string  `json:"elapsed_label"`
	RemainingLabel  string  `json:"remaining_label"`
}

// Measure derives a Geometry from raw, possibly malformed playback values.
func Measure(position, duration, volume float64) Geometry {
	clamped := ClampPosition(position, duration)
	remaining := RemainingSeconds(clamped, duration)

	return Geometry{
		Position:        clamped,
		Duration:        math.Max(0, finite(duration)),
		Remaining:       remaining,
		ProgressPercent: ProgressPercent(clamped, duration),
		VolumePercent:   VolumePercent(volume),
		Elapsed:         FormatTime(clamped),
		RemainingLabel:  FormatTime(remaining),
	}
}

// ClampPosition returns max(0, min(position, duration)).
// NaN and a non-finite duration are treated as 0.
func ClampPosition(position, duration float64) float64 {
	if math.IsNaN(position) {
		position = 0
	}
	return math.Max(0, math.Min(position, finite(duration)))
}

// ProgressPercent returns the elapsed fraction of duration as 0-100.
// A non-positive duration always yields 0.
func ProgressPercent(clampedPosition, duration float64) float64 {
	duration = finite(duration)
	if duration <= 0 {
		return 0
	}
	if math.IsNaN(clampedPosition) {
		clampedPosition = 0
	}
	return clamp(clampedPosition/duration*100, 0, 100)
}

// RemainingSeconds returns max(0, floor(duration - clampedPosition)).
// A NaN position counts as 0, as in ProgressPercent.
func RemainingSeconds(clampedPosition, duration float64) float64 {
	if math.IsNaN(clampedPosition) {
		clampedPosition = 0
	}
	remaining := math.Floor(finite(duration) - clampedPosition)
	if math.IsNaN(remaining) || math.IsInf(remaining, 0) {
		return 0
	}
	return math.Max(0, remaining)
}

// VolumePercent converts a 0-1 volume level to 0-100.
func VolumePercent(volume float64) float64 {
	if math.IsNaN(volume) {
		return 0
	}
	return clamp(volume, 0, 1) * 100
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// finite maps NaN and ±Inf to 0.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
