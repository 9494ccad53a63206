package enrich

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/pcantera/muse/internal/domain"
	"github.com/pcantera/muse/internal/enrich/mocks"
	"github.com/pcantera/muse/internal/itunes"
)

// staticConfig is a trivial domain.Config for tests.
type staticConfig struct {
	genius    string
	anthropic string
}

func (c staticConfig) GeniusToken() string  { return c.genius }
func (c staticConfig) AnthropicKey() string { return c.anthropic }
func (c staticConfig) HasKeys() bool        { return c.genius != "" && c.anthropic != "" }

type serviceMocks struct {
	catalog      *mocks.MockCatalogSource
	descriptions *mocks.MockDescriptionSource
	lyrics       *mocks.MockLyricsSource
	completer    *mocks.MockCompleter
}

func newService(t *testing.T, cfg domain.Config) (*Service, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		catalog:      mocks.NewMockCatalogSource(ctrl),
		descriptions: mocks.NewMockDescriptionSource(ctrl),
		lyrics:       mocks.NewMockLyricsSource(ctrl),
		completer:    mocks.NewMockCompleter(ctrl),
	}
	svc := NewService(zap.NewNop(), cfg, m.catalog, m.descriptions, m.lyrics, m.completer)
	return svc, m
}

func TestAlbumInfo(t *testing.T) {
	withKeys := staticConfig{genius: "g", anthropic: "a"}

	tests := []struct {
		name      string
		setupMock func(m serviceMocks)
		expected  *domain.AlbumInfo
	}{
		{
			name: "Success - fenced response with full metadata",
			setupMock: func(m serviceMocks) {
				m.catalog.EXPECT().AlbumMetadata(gomock.Any(), "Daft Punk", "Discovery").
					Return(itunes.AlbumMetadata{ReleaseYear: "2001", Genre: "Dance"}, nil)
				m.descriptions.EXPECT().AlbumDescription(gomock.Any(), "Daft Punk", "Discovery").
					Return("A landmark record.", nil)
				m.completer.EXPECT().Complete(gomock.Any(), gomock.Any(), albumMaxTokens).
					Return("```json\n{\"context\":\"Second studio album.\",\"notable_fact\":\"Sampled everywhere.\"}\n```", nil)
			},
			expected: &domain.AlbumInfo{
				ReleaseYear: "2001",
				Genre:       "Dance",
				Context:     "Second studio album.",
				NotableFact: "Sampled everywhere.",
			},
		},
		{
			name: "Catalog and description failures degrade, not abort",
			setupMock: func(m serviceMocks) {
				m.catalog.EXPECT().AlbumMetadata(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(itunes.AlbumMetadata{}, errors.New("timeout"))
				m.descriptions.EXPECT().AlbumDescription(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("no hits"))
				m.completer.EXPECT().Complete(gomock.Any(), gomock.Any(), albumMaxTokens).
					Return(`{"context":"From memory.","notable_fact":"Still works."}`, nil)
			},
			expected: &domain.AlbumInfo{Context: "From memory.", NotableFact: "Still works."},
		},
		{
			name: "Missing response keys default to empty strings",
			setupMock: func(m serviceMocks) {
				m.catalog.EXPECT().AlbumMetadata(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(itunes.AlbumMetadata{ReleaseYear: "2001", Genre: "Dance"}, nil)
				m.descriptions.EXPECT().AlbumDescription(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", nil)
				m.completer.EXPECT().Complete(gomock.Any(), gomock.Any(), albumMaxTokens).
					Return(`{"context":"Only context."}`, nil)
			},
			expected: &domain.AlbumInfo{ReleaseYear: "2001", Genre: "Dance", Context: "Only context."},
		},
		{
			name: "Generative failure aborts",
			setupMock: func(m serviceMocks) {
				m.catalog.EXPECT().AlbumMetadata(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(itunes.AlbumMetadata{}, nil)
				m.descriptions.EXPECT().AlbumDescription(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", nil)
				m.completer.EXPECT().Complete(gomock.Any(), gomock.Any(), albumMaxTokens).
					Return("", errors.New("api down"))
			},
			expected: nil,
		},
		{
			name: "Malformed JSON after sanitization aborts",
			setupMock: func(m serviceMocks) {
				m.catalog.EXPECT().AlbumMetadata(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(itunes.AlbumMetadata{ReleaseYear: "2001"}, nil)
				m.descriptions.EXPECT().AlbumDescription(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", nil)
				m.completer.EXPECT().Complete(gomock.Any(), gomock.Any(), albumMaxTokens).
					Return("```json\nSorry, I cannot answer that.\n```", nil)
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t, withKeys)
			tt.setupMock(m)

			got := svc.AlbumInfo(context.Background(), "Discovery", "Daft Punk")

			if tt.expected == nil {
				if got != nil {
					t.Fatalf("expected nil result, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected a result, got nil")
			}
			if *got != *tt.expected {
				t.Errorf("result mismatch:\nwant %+v\ngot  %+v", *tt.expected, *got)
			}
		})
	}
}

func TestAlbumInfoMissingCredentials(t *testing.T) {
	// No EXPECT calls registered: gomock fails the test on any network
	// stage being invoked, which is exactly the zero-calls contract.
	svc, _ := newService(t, staticConfig{genius: "", anthropic: "a"})

	if got := svc.AlbumInfo(context.Background(), "Discovery", "Daft Punk"); got != nil {
		t.Errorf("expected nil with missing credentials, got %+v", got)
	}
}

func TestLyricsAnalysis(t *testing.T) {
	withKeys := staticConfig{genius: "g", anthropic: "a"}

	t.Run("Success with scraped lyrics", func(t *testing.T) {
		svc, m := newService(t, withKeys)

		var sentPrompt string
		m.lyrics.EXPECT().SongURL(gomock.Any(), "Daft Punk", "One More Time").
			Return("https://genius.com/x", nil)
		m.lyrics.EXPECT().FetchLyrics(gomock.Any(), "https://genius.com/x").
			Return("One more time\nWe're gonna celebrate", nil)
		m.completer.EXPECT().Complete(gomock.Any(), gomock.Any(), lyricsMaxTokens).
			DoAndReturn(func(_ context.Context, p string, _ int) (string, error) {
				sentPrompt = p
				return `{"interpretation":"A celebration of dance music itself."}`, nil
			})

		got := svc.LyricsAnalysis(context.Background(), "One More Time", "Daft Punk")
		if got == nil {
			t.Fatal("expected a result, got nil")
		}
		if got.Interpretation != "A celebration of dance music itself." {
			t.Errorf("unexpected interpretation: %q", got.Interpretation)
		}
		if !strings.Contains(sentPrompt, "We're gonna celebrate") {
			t.Error("prompt should embed the scraped lyrics")
		}
	})

	t.Run("No song page degrades to knowledge-only prompt", func(t *testing.T) {
		svc, m := newService(t, withKeys)

		var sentPrompt string
		m.lyrics.EXPECT().SongURL(gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil)
		m.completer.EXPECT().Complete(gomock.Any(), gomock.Any(), lyricsMaxTokens).
			DoAndReturn(func(_ context.Context, p string, _ int) (string, error) {
				sentPrompt = p
				return `{"interpretation":"From general knowledge."}`, nil
			})

		got := svc.LyricsAnalysis(context.Background(), "Obscure B-Side", "Nobody")
		if got == nil {
			t.Fatal("expected a result, got nil")
		}
		if strings.Contains(sentPrompt, "voici les paroles") {
			t.Error("prompt must not reference lyrics when none were found")
		}
	})

	t.Run("Scrape failure degrades, search error degrades", func(t *testing.T) {
		svc, m := newService(t, withKeys)

		m.lyrics.EXPECT().SongURL(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("search down"))
		m.completer.EXPECT().Complete(gomock.Any(), gomock.Any(), lyricsMaxTokens).
			Return(`{"interpretation":"Still produced."}`, nil)

		if got := svc.LyricsAnalysis(context.Background(), "t", "a"); got == nil {
			t.Fatal("search failure must not abort the pipeline")
		}
	})

	t.Run("Generative failure aborts", func(t *testing.T) {
		svc, m := newService(t, withKeys)

		m.lyrics.EXPECT().SongURL(gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil)
		m.completer.EXPECT().Complete(gomock.Any(), gomock.Any(), lyricsMaxTokens).
			Return("", errors.New("api down"))

		if got := svc.LyricsAnalysis(context.Background(), "t", "a"); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("Missing credentials short-circuits with zero calls", func(t *testing.T) {
		svc, _ := newService(t, staticConfig{})
		if got := svc.LyricsAnalysis(context.Background(), "t", "a"); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})
}
