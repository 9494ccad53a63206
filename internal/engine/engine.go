package engine

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pcantera/muse/internal/domain"
)

// debounceDuration is how long the engine waits for the player to settle
// before enriching. Rapid track skipping emits a burst of events; only
// the last one is worth three API round-trips.
const debounceDuration = 500 * time.Millisecond

// Engine drives the enrichment pipeline. It listens to media events,
// fetches artwork and enriched context for the settled track, and keeps
// the latest snapshot available for the shell.
type Engine struct {
	logger   *zap.Logger
	monitor  domain.Monitor
	enricher domain.Enricher
	artwork  domain.ArtworkProvider

	mu      sync.RWMutex
	current *domain.NowPlaying
}

// NewEngine creates a new orchestration engine
func NewEngine(
	logger *zap.Logger,
	mon domain.Monitor,
	enricher domain.Enricher,
	artwork domain.ArtworkProvider,
) *Engine {
	return &Engine{
		logger:   logger,
		monitor:  mon,
		enricher: enricher,
		artwork:  artwork,
	}
}

// Start launches the engine's event processing loop in a goroutine.
// It returns immediately (non-blocking).
func (e *Engine) Start(ctx context.Context) error {
	e.logger.Info("Engine starting")
	go e.runLoop(ctx)
	return nil
}

// Stop stops the engine. The loop itself terminates with the context.
func (e *Engine) Stop(ctx context.Context) error {
	e.logger.Info("Engine stopping")
	return nil
}

// Current returns the latest enriched snapshot, or nil before the first
// track has been processed.
func (e *Engine) Current() *domain.NowPlaying {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.current == nil {
		return nil
	}
	snapshot := *e.current
	return &snapshot
}

// runLoop is the main event processing loop with debouncing.
func (e *Engine) runLoop(ctx context.Context) {
	events := e.monitor.Events()

	timer := time.NewTimer(debounceDuration)
	timer.Stop() // armed on the first event

	var pending *domain.TrackInfo

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("Engine loop stopped")
			return

		case track, ok := <-events:
			if !ok {
				e.logger.Info("Monitor events channel closed")
				return
			}
			e.logger.Debug("Event received, debouncing",
				zap.String("title", track.Title),
				zap.String("artist", track.Artist))
			pending = &track
			timer.Reset(debounceDuration)

		case <-timer.C:
			if pending != nil {
				e.processTrack(ctx, *pending)
				pending = nil
			}
		}
	}
}

// processTrack runs the full enrichment for a settled track.
func (e *Engine) processTrack(ctx context.Context, track domain.TrackInfo) {
	if track.Status != domain.StatusPlaying {
		e.logger.Info("Playback not active, skipping enrichment",
			zap.String("status", string(track.Status)))
		return
	}
	if track.Title == "" || track.Artist == "" {
		e.logger.Warn("Track has no usable identity, skipping enrichment",
			zap.String("title", track.Title),
			zap.String("artist", track.Artist))
		return
	}

	e.logger.Info("Enriching track",
		zap.String("title", track.Title),
		zap.String("artist", track.Artist),
		zap.String("album", track.Album))

	snapshot := domain.NowPlaying{Track: track}

	if art, err := e.artwork.Fetch(ctx, track.Title, track.Artist); err != nil {
		e.logger.Warn("Artwork unavailable", zap.Error(err))
	} else {
		snapshot.ArtworkDataURL = art
	}

	// Each enrichment is independently optional: a nil result only means
	// that facet stays empty in the snapshot.
	if track.Album != "" {
		snapshot.Album = e.enricher.AlbumInfo(ctx, track.Album, track.Artist)
	}
	snapshot.Lyrics = e.enricher.LyricsAnalysis(ctx, track.Title, track.Artist)

	e.mu.Lock()
	e.current = &snapshot
	e.mu.Unlock()

	e.logger.Info("Track enriched",
		zap.String("title", track.Title),
		zap.Bool("artwork", snapshot.ArtworkDataURL != ""),
		zap.Bool("albumInfo", snapshot.Album != nil),
		zap.Bool("lyrics", snapshot.Lyrics != nil))
}
