// Package artwork resolves HD album artwork for the current track and
// hands it to the shell as a base64 data URL, so the front end never
// touches the network itself.
package artwork

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG format support
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

const (
	_maxImageSize = 10 * 1024 * 1024 // 10 MB
	_maxDimension = 600
	_jpegQuality  = 90
)

// Locator resolves the artwork URL for a track.
type Locator interface {
	// SongArtworkURL returns the HD artwork URL or "" when none exists
	SongArtworkURL(ctx context.Context, artist, title string) (string, error)
}

// Fetcher downloads track artwork and encodes it for the shell.
type Fetcher struct {
	logger  *zap.Logger
	locator Locator
	client  *http.Client
}

// NewFetcher creates an artwork fetcher backed by the given locator.
func NewFetcher(logger *zap.Logger, locator Locator) *Fetcher {
	return &Fetcher{
		logger:  logger,
		locator: locator,
		client: &http.Client{
			Timeout: 10 * time.Second, // Essential to prevent blocking the daemon
		},
	}
}

// WithHTTPClient overrides the download client (useful for tests).
func (f *Fetcher) WithHTTPClient(client *http.Client) *Fetcher {
	if client != nil {
		f.client = client
	}
	return f
}

// Fetch locates, downloads and encodes artwork for a track. Images larger
// than 600px on either side are downscaled before encoding; everything is
// delivered as a JPEG data URL.
func (f *Fetcher) Fetch(ctx context.Context, title, artist string) (string, error) {
	artURL, err := f.locator.SongArtworkURL(ctx, artist, title)
	if err != nil {
		return "", fmt.Errorf("locate artwork: %w", err)
	}
	if artURL == "" {
		return "", errors.New("no artwork found")
	}

	data, err := f.download(ctx, artURL)
	if err != nil {
		return "", err
	}

	data = f.downscale(data)

	f.logger.Debug("Artwork fetched successfully",
		zap.Int("bytes", len(data)),
		zap.String("url", artURL))
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data), nil
}

// download retrieves the raw image bytes, enforcing a size cap and an
// image content type.
func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "museDaemon/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "image/") {
		return nil, fmt.Errorf("url is not an image: %s", resp.Header.Get("Content-Type"))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, _maxImageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("empty image body")
	}
	return data, nil
}

// downscale re-encodes images that exceed the target dimension. Bytes
// that fail to decode pass through untouched; the shell can still try to
// render them.
func (f *Fetcher) downscale(data []byte) []byte {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		f.logger.Debug("Artwork not decodable, passing raw bytes through", zap.Error(err))
		return data
	}

	bounds := img.Bounds()
	if bounds.Dx() <= _maxDimension && bounds.Dy() <= _maxDimension {
		return data
	}

	resized := imaging.Fit(img, _maxDimension, _maxDimension, imaging.Lanczos)
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, resized, &jpeg.Options{Quality: _jpegQuality}); err != nil {
		f.logger.Debug("Artwork re-encode failed, passing raw bytes through", zap.Error(err))
		return data
	}

	f.logger.Debug("Artwork downscaled",
		zap.Int("fromW", bounds.Dx()),
		zap.Int("fromH", bounds.Dy()),
		zap.Int("bytes", buf.Len()))
	return buf.Bytes()
}
