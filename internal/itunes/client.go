// Package itunes queries the iTunes Search API for album metadata and
// track artwork. No credentials are required; absence of a usable match
// is a normal outcome.
package itunes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pcantera/muse/internal/textutil"
)

const (
	defaultBaseURL     = "https://itunes.apple.com"
	defaultHTTPTimeout = 20 * time.Second
	searchLimit        = 10
)

// Client wraps the iTunes Search API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes the iTunes client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the default API base (useful for tests/mocks).
func WithBaseURL(base string) Option {
	return func(c *Client) {
		base = strings.TrimSpace(base)
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// NewClient constructs an iTunes Search API client.
func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// AlbumMetadata carries the catalog fields for a matched album.
// Either field may be empty independently.
type AlbumMetadata struct {
	ReleaseYear string
	Genre       string
}

type searchResult struct {
	ArtistName       string `json:"artistName"`
	CollectionName   string `json:"collectionName"`
	PrimaryGenreName string `json:"primaryGenreName"`
	ReleaseDate      string `json:"releaseDate"`
	ArtworkURL100    string `json:"artworkUrl100"`
}

type searchResponse struct {
	ResultCount int            `json:"resultCount"`
	Results     []searchResult `json:"results"`
}

// AlbumMetadata searches for "artist album" and returns release year and
// genre from the first candidate whose collection name contains the album
// and whose artist name contains the artist, case-insensitively. Catalog
// naming variants like "(Deluxe Edition)" therefore still match. A search
// with no usable candidate returns the zero value and no error.
func (c *Client) AlbumMetadata(ctx context.Context, artist, album string) (AlbumMetadata, error) {
	var payload searchResponse
	if err := c.search(ctx, artist+" "+album, "album", searchLimit, &payload); err != nil {
		return AlbumMetadata{}, err
	}

	albumLC := strings.ToLower(album)
	artistLC := strings.ToLower(artist)

	for _, r := range payload.Results {
		if !strings.Contains(strings.ToLower(r.CollectionName), albumLC) {
			continue
		}
		if !strings.Contains(strings.ToLower(r.ArtistName), artistLC) {
			continue
		}

		var meta AlbumMetadata
		if len(r.ReleaseDate) >= 4 {
			meta.ReleaseYear = r.ReleaseDate[:4]
		}
		meta.Genre = r.PrimaryGenreName
		return meta, nil
	}

	return AlbumMetadata{}, nil
}

// SongArtworkURL searches for "artist title" as a song and returns the
// first result's artwork URL upgraded from the 100x100 thumbnail to the
// 600x600 rendition. Returns "" when the search has no artwork.
func (c *Client) SongArtworkURL(ctx context.Context, artist, title string) (string, error) {
	var payload searchResponse
	if err := c.search(ctx, artist+" "+title, "song", 1, &payload); err != nil {
		return "", err
	}
	if len(payload.Results) == 0 || payload.Results[0].ArtworkURL100 == "" {
		return "", nil
	}
	return strings.Replace(payload.Results[0].ArtworkURL100, "100x100bb", "600x600bb", 1), nil
}

// search performs a GET against /search. The term is encoded with the
// legacy form encoding the endpoint expects (space as '+'), so the URL is
// assembled by hand rather than through url.Values.
func (c *Client) search(ctx context.Context, term, entity string, limit int, out *searchResponse) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return errors.New("itunes search: term must not be empty")
	}

	endpoint := fmt.Sprintf("%s/search?term=%s&media=music&entity=%s&limit=%d",
		c.baseURL, textutil.QueryEscape(term), entity, limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("itunes search: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("itunes search: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("itunes search: http %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("itunes search: decode response: %w", err)
	}
	return nil
}
