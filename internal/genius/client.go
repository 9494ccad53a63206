// Package genius talks to the Genius API and scrapes lyrics from Genius
// song pages. Every lookup treats a missing hit or field as a normal
// absence; only transport-level failures surface as errors so the caller
// can log them.
package genius

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pcantera/muse/internal/textutil"
)

const (
	defaultBaseURL     = "https://api.genius.com"
	defaultHTTPTimeout = 20 * time.Second
	maxPageSize        = 4 * 1024 * 1024 // lyrics pages are well under this

	// Genius serves lyrics pages to browsers only; API tokens are not
	// accepted there, so the scrape masquerades as one.
	browserUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Client wraps the Genius API and song-page scraping.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// Option customizes the Genius client.
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

// NewClient constructs a Genius API client.
func NewClient(token string, opts ...Option) *Client {
	client := &Client{
		token:      strings.TrimSpace(token),
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

type searchResponse struct {
	Response struct {
		Hits []struct {
			Result struct {
				ID  int64  `json:"id"`
				URL string `json:"url"`
			} `json:"result"`
		} `json:"hits"`
	} `json:"response"`
}

type songResponse struct {
	Response struct {
		Song struct {
			Album *struct {
				ID int64 `json:"id"`
			} `json:"album"`
		} `json:"song"`
	} `json:"response"`
}

type albumResponse struct {
	Response struct {
		Album struct {
			DescriptionPreview string `json:"description_preview"`
		} `json:"album"`
	} `json:"response"`
}

// AlbumDescription resolves an album description through three sequential
// hops: search "artist album" -> first hit's song -> the song's album ->
// description preview. Any hop without a usable value yields "", nil; the
// hops never produce a partial result.
func (c *Client) AlbumDescription(ctx context.Context, artist, album string) (string, error) {
	var search searchResponse
	if err := c.get(ctx, "/search?q="+textutil.QueryEscape(artist+" "+album), &search); err != nil {
		return "", err
	}
	if len(search.Response.Hits) == 0 {
		return "", nil
	}
	songID := search.Response.Hits[0].Result.ID
	if songID == 0 {
		return "", nil
	}

	var song songResponse
	if err := c.get(ctx, fmt.Sprintf("/songs/%d", songID), &song); err != nil {
		return "", err
	}
	if song.Response.Song.Album == nil || song.Response.Song.Album.ID == 0 {
		return "", nil
	}

	var albumPayload albumResponse
	if err := c.get(ctx, fmt.Sprintf("/albums/%d", song.Response.Song.Album.ID), &albumPayload); err != nil {
		return "", err
	}

	description := albumPayload.Response.Album.DescriptionPreview
	// Genius uses a lone "?" as a placeholder for albums with no write-up
	if description == "" || description == "?" {
		return "", nil
	}
	return description, nil
}

// SongURL searches for "artist title" and returns the first hit's lyrics
// page URL, or "" when the search has no hits.
func (c *Client) SongURL(ctx context.Context, artist, title string) (string, error) {
	var search searchResponse
	if err := c.get(ctx, "/search?q="+textutil.QueryEscape(artist+" "+title), &search); err != nil {
		return "", err
	}
	if len(search.Response.Hits) == 0 {
		return "", nil
	}
	return search.Response.Hits[0].Result.URL, nil
}

// FetchLyrics downloads a Genius song page and extracts the lyrics text.
// Returns "" when the page holds no lyrics containers.
func (c *Client) FetchLyrics(ctx context.Context, pageURL string) (string, error) {
	pageURL = strings.TrimSpace(pageURL)
	if pageURL == "" {
		return "", errors.New("genius lyrics: page url required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("genius lyrics: build request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("genius lyrics: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("genius lyrics: http %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return "", fmt.Errorf("genius lyrics: read body: %w", err)
	}

	return ExtractLyrics(string(body)), nil
}

// get performs an authenticated GET against the Genius API.
func (c *Client) get(ctx context.Context, path string, out any) error {
	if c.token == "" {
		return errors.New("genius: token required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("genius: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("genius: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("genius: http %d for %s", resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("genius: decode response: %w", err)
	}
	return nil
}
