// Package enrich sequences the metadata-enrichment pipeline: catalog
// lookup, description/lyrics fetch, prompt construction, the generative
// call and structured-result extraction. Every stage fails closed: the
// service's contract is a single optional result per request, never a
// partially populated one, and no error type crosses its boundary.
package enrich

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/pcantera/muse/internal/domain"
	"github.com/pcantera/muse/internal/itunes"
	"github.com/pcantera/muse/internal/prompt"
	"github.com/pcantera/muse/internal/textutil"
)

const (
	albumMaxTokens  = 400
	lyricsMaxTokens = 450
)

// CatalogSource looks up release year and genre for an album.
//
//go:generate mockgen -destination=mocks/sources_mock.go -package=mocks github.com/pcantera/muse/internal/enrich CatalogSource,DescriptionSource,LyricsSource,Completer
type CatalogSource interface {
	AlbumMetadata(ctx context.Context, artist, album string) (itunes.AlbumMetadata, error)
}

// DescriptionSource resolves a human-written album description.
type DescriptionSource interface {
	AlbumDescription(ctx context.Context, artist, album string) (string, error)
}

// LyricsSource locates a track's lyrics page and scrapes its text.
type LyricsSource interface {
	SongURL(ctx context.Context, artist, title string) (string, error)
	FetchLyrics(ctx context.Context, pageURL string) (string, error)
}

// Completer sends a prompt to the generative service and returns the
// raw text of its reply.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Service implements domain.Enricher over the three external sources.
type Service struct {
	logger       *zap.Logger
	cfg          domain.Config
	catalog      CatalogSource
	descriptions DescriptionSource
	lyrics       LyricsSource
	completer    Completer
}

// NewService creates the enrichment service.
func NewService(
	logger *zap.Logger,
	cfg domain.Config,
	catalog CatalogSource,
	descriptions DescriptionSource,
	lyrics LyricsSource,
	completer Completer,
) *Service {
	return &Service{
		logger:       logger,
		cfg:          cfg,
		catalog:      catalog,
		descriptions: descriptions,
		lyrics:       lyrics,
		completer:    completer,
	}
}

var _ domain.Enricher = (*Service)(nil)

// AlbumInfo enriches an album with catalog metadata and generated
// context. Catalog and description fetches are independently optional;
// only the generative call is mandatory. Returns nil when enrichment is
// impossible.
func (s *Service) AlbumInfo(ctx context.Context, album, artist string) *domain.AlbumInfo {
	if !s.cfg.HasKeys() {
		s.logger.Warn("API keys missing, skipping enrichment",
			zap.String("stage", "album_info"))
		return nil
	}

	meta, err := s.catalog.AlbumMetadata(ctx, artist, album)
	if err != nil {
		s.logger.Warn("Catalog lookup failed, continuing without metadata",
			zap.String("album", album),
			zap.String("artist", artist),
			zap.Error(err))
		meta = itunes.AlbumMetadata{}
	}

	description, err := s.descriptions.AlbumDescription(ctx, artist, album)
	if err != nil {
		s.logger.Warn("Album description fetch failed, continuing without it",
			zap.String("album", album),
			zap.String("artist", artist),
			zap.Error(err))
		description = ""
	}

	p := prompt.AlbumContext(album, artist, meta.ReleaseYear, meta.Genre, description)

	var payload struct {
		Context     string `json:"context"`
		NotableFact string `json:"notable_fact"`
	}
	if !s.complete(ctx, "album_info", p, albumMaxTokens, &payload) {
		return nil
	}

	return &domain.AlbumInfo{
		ReleaseYear: meta.ReleaseYear,
		Genre:       meta.Genre,
		Context:     payload.Context,
		NotableFact: payload.NotableFact,
	}
}

// LyricsAnalysis enriches a track with a generated interpretation of its
// lyrics. A failed song search or scrape degrades to a knowledge-only
// prompt; only the generative call is mandatory.
func (s *Service) LyricsAnalysis(ctx context.Context, title, artist string) *domain.LyricsAnalysis {
	if !s.cfg.HasKeys() {
		s.logger.Warn("API keys missing, skipping enrichment",
			zap.String("stage", "lyrics_analysis"))
		return nil
	}

	var lyricsText string
	pageURL, err := s.lyrics.SongURL(ctx, artist, title)
	switch {
	case err != nil:
		s.logger.Warn("Song search failed, continuing without lyrics",
			zap.String("title", title),
			zap.String("artist", artist),
			zap.Error(err))
	case pageURL == "":
		s.logger.Info("No song page found, continuing without lyrics",
			zap.String("title", title),
			zap.String("artist", artist))
	default:
		lyricsText, err = s.lyrics.FetchLyrics(ctx, pageURL)
		if err != nil {
			s.logger.Warn("Lyrics scrape failed, continuing without lyrics",
				zap.String("url", pageURL),
				zap.Error(err))
			lyricsText = ""
		}
	}

	p := prompt.LyricsInterpretation(title, artist, lyricsText)

	var payload struct {
		Interpretation string `json:"interpretation"`
	}
	if !s.complete(ctx, "lyrics_analysis", p, lyricsMaxTokens, &payload) {
		return nil
	}

	return &domain.LyricsAnalysis{Interpretation: payload.Interpretation}
}

// complete runs the mandatory generative stage: call, sanitize, parse.
// Returns false when the stage produced nothing usable; out keeps its
// zero values for any keys the response omitted.
func (s *Service) complete(ctx context.Context, stage, p string, maxTokens int, out any) bool {
	raw, err := s.completer.Complete(ctx, p, maxTokens)
	if err != nil {
		s.logger.Error("Generative call failed",
			zap.String("stage", stage),
			zap.Error(err))
		return false
	}

	clean := textutil.StripCodeFences(raw)
	if err := json.Unmarshal([]byte(clean), out); err != nil {
		s.logger.Error("Generative response is not the expected JSON object",
			zap.String("stage", stage),
			zap.String("raw", clean),
			zap.Error(err))
		return false
	}
	return true
}
