package core

// Track describes the song shown in the player window.
type Track struct {
	Title      string `json:"title" toml:"title"`
	Artist     string `json:"artist" toml:"artist"`
	Writer     string `json:"writer" toml:"writer"`
	ArtworkURL string `json:"artwork_url" toml:"artwork_url"`
}

// AltText returns the label used in place of the album art image.
func (t *Track) AltText() string {
	if t == nil || t.Title == "" {
		return "album art"
	}
	return t.Title + " album art"
}
