package domain

import "context"

// Monitor defines the interface for monitoring media playback events
// Implementations should handle D-Bus/MPRIS communication
type Monitor interface {
	// Start begins monitoring for media events
	// It should block until context is cancelled or an error occurs
	Start(ctx context.Context) error

	// Stop gracefully stops the monitor
	Stop(ctx context.Context) error

	// Events returns a read-only channel that emits TrackInfo
	// when media playback state changes
	Events() <-chan TrackInfo
}

// Enricher turns a bare track identity into structured context.
// Both operations return nil when enrichment is impossible (missing
// credentials, failed generative call, malformed response); a nil result
// is a normal outcome, not an error.
type Enricher interface {
	// AlbumInfo gathers catalog metadata and generated album context
	AlbumInfo(ctx context.Context, album, artist string) *AlbumInfo

	// LyricsAnalysis gathers lyrics and a generated interpretation
	LyricsAnalysis(ctx context.Context, title, artist string) *LyricsAnalysis
}

// ArtworkProvider resolves album artwork for a track.
type ArtworkProvider interface {
	// Fetch returns the artwork as a base64 data URL, or an error when
	// no artwork could be located or downloaded
	Fetch(ctx context.Context, title, artist string) (string, error)
}

// Config defines the interface for application configuration
type Config interface {
	// GeniusToken returns the Genius API bearer token, empty when unset
	GeniusToken() string

	// AnthropicKey returns the Anthropic API key, empty when unset
	AnthropicKey() string

	// HasKeys reports whether both credentials are present
	HasKeys() bool
}
