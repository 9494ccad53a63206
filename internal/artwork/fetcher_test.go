package artwork

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// stubLocator returns a fixed URL or error.
type stubLocator struct {
	url string
	err error
}

func (s stubLocator) SongArtworkURL(_ context.Context, _, _ string) (string, error) {
	return s.url, s.err
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func decodeDataURL(t *testing.T, dataURL string) []byte {
	t.Helper()
	const prefix = "data:image/jpeg;base64,"
	if !strings.HasPrefix(dataURL, prefix) {
		t.Fatalf("missing data URL prefix: %.40s", dataURL)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, prefix))
	if err != nil {
		t.Fatalf("data URL payload is not base64: %v", err)
	}
	return raw
}

func TestFetch(t *testing.T) {
	tests := []struct {
		name          string
		imageBytes    []byte
		contentType   string
		statusCode    int
		expectError   string
		expectResized bool
	}{
		{
			name:        "Small image passed through",
			imageBytes:  encodePNG(t, 100, 100),
			contentType: "image/png",
			statusCode:  http.StatusOK,
		},
		{
			name:          "Large image downscaled",
			imageBytes:    encodePNG(t, 900, 900),
			contentType:   "image/png",
			statusCode:    http.StatusOK,
			expectResized: true,
		},
		{
			name:        "Non-image content type rejected",
			imageBytes:  []byte("<html>nope</html>"),
			contentType: "text/html",
			statusCode:  http.StatusOK,
			expectError: "url is not an image",
		},
		{
			name:        "HTTP error rejected",
			imageBytes:  nil,
			contentType: "image/jpeg",
			statusCode:  http.StatusNotFound,
			expectError: "unexpected status code: 404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write(tt.imageBytes)
			}))
			defer server.Close()

			fetcher := NewFetcher(zap.NewNop(), stubLocator{url: server.URL})
			got, err := fetcher.Fetch(context.Background(), "One More Time", "Daft Punk")

			if tt.expectError != "" {
				if err == nil || !strings.Contains(err.Error(), tt.expectError) {
					t.Fatalf("expected error containing %q, got %v", tt.expectError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			raw := decodeDataURL(t, got)
			if tt.expectResized {
				img, err := jpeg.Decode(bytes.NewReader(raw))
				if err != nil {
					t.Fatalf("resized artwork is not JPEG: %v", err)
				}
				bounds := img.Bounds()
				if bounds.Dx() > 600 || bounds.Dy() > 600 {
					t.Errorf("expected downscale to 600px, got %dx%d", bounds.Dx(), bounds.Dy())
				}
			} else {
				if !bytes.Equal(raw, tt.imageBytes) {
					t.Error("small image should pass through unmodified")
				}
			}
		})
	}
}

// countingTransport records how many requests pass through it.
type countingTransport struct {
	calls int
}

func (c *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.calls++
	return http.DefaultTransport.RoundTrip(req)
}

// TestWithHTTPClient verifies downloads go through an injected client, so
// the daemon can share one HTTP client across all fetchers.
func TestWithHTTPClient(t *testing.T) {
	imageBytes := encodePNG(t, 100, 100)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(imageBytes)
	}))
	defer server.Close()

	transport := &countingTransport{}
	fetcher := NewFetcher(zap.NewNop(), stubLocator{url: server.URL}).
		WithHTTPClient(&http.Client{Transport: transport})

	if _, err := fetcher.Fetch(context.Background(), "One More Time", "Daft Punk"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if transport.calls != 1 {
		t.Errorf("expected 1 request through the injected client, got %d", transport.calls)
	}

	// A nil client keeps the default instead of breaking the fetcher
	if NewFetcher(zap.NewNop(), stubLocator{}).WithHTTPClient(nil).client == nil {
		t.Error("nil client must not clear the default")
	}
}

func TestFetchNoArtwork(t *testing.T) {
	fetcher := NewFetcher(zap.NewNop(), stubLocator{url: ""})
	if _, err := fetcher.Fetch(context.Background(), "t", "a"); err == nil {
		t.Fatal("expected error when no artwork URL exists")
	}

	fetcher = NewFetcher(zap.NewNop(), stubLocator{err: errors.New("search down")})
	if _, err := fetcher.Fetch(context.Background(), "t", "a"); err == nil {
		t.Fatal("expected error when the locator fails")
	}
}
