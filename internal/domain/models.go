package domain

// PlayerStatus represents the current state of the media player
type PlayerStatus string

const (
	// StatusPlaying indicates the media is currently playing
	StatusPlaying PlayerStatus = "Playing"
	// StatusPaused indicates the media is paused
	StatusPaused PlayerStatus = "Paused"
	// StatusStopped indicates the media is stopped
	StatusStopped PlayerStatus = "Stopped"
)

// TrackInfo identifies the currently playing track as reported by the player.
// Title, artist and album are opaque strings; they are never normalized here.
type TrackInfo struct {
	// Title of the currently playing track
	Title string
	// Artist name
	Artist string
	// Album name
	Album string
	// Status is the current playback status
	Status PlayerStatus
}

// AlbumInfo is the enriched album context for a track.
// ReleaseYear and Genre come from the catalog lookup and may be empty
// independently; Context and NotableFact come from the generative service.
type AlbumInfo struct {
	ReleaseYear string `json:"release_year"`
	Genre       string `json:"genre"`
	Context     string `json:"context"`
	NotableFact string `json:"notable_fact"`
}

// LyricsAnalysis holds the generated interpretation of a track's lyrics.
type LyricsAnalysis struct {
	Interpretation string `json:"interpretation"`
}

// NowPlaying is the full enriched snapshot for the current track.
// Any of the enrichment fields may be absent; the track itself is always set.
type NowPlaying struct {
	Track          TrackInfo
	ArtworkDataURL string
	Album          *AlbumInfo
	Lyrics         *LyricsAnalysis
}
