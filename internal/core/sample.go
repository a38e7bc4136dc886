package core

// SampleTrack returns the track the mockup displays by default.
func SampleTrack() Track {
	return Track{
		Title:      "Albireo",
		Artist:     "Rokudenashi",
		Writer:     "ナユタン星人",
		ArtworkURL: "https://i.scdn.co/image/ab67616d00001e02f6ccb29fbda0541861558a94",
	}
}

// SamplePlayback returns the playback state the mockup displays by default.
func SamplePlayback() PlaybackState {
	return PlaybackState{
		Position:  19,
		Duration:  245,
		IsPlaying: false,
		Volume:    0.7,
	}
}
