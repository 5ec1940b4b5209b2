package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytpick/ytpick/internal/model"
)

// DefaultFetchTimeout bounds a metadata-only extraction.
const DefaultFetchTimeout = 60 * time.Second

// Fetcher obtains the metadata of one media item without downloading it.
type Fetcher struct {
	cookiesFile string
	timeout     time.Duration
}

// NewFetcher creates a metadata fetcher. cookiesFile may be empty.
func NewFetcher(cookiesFile string) *Fetcher {
	return &Fetcher{
		cookiesFile: cookiesFile,
		timeout:     DefaultFetchTimeout,
	}
}

// SetTimeout sets the timeout for metadata extraction.
func (f *Fetcher) SetTimeout(timeout time.Duration) {
	f.timeout = timeout
}

// FetchVideoInfo runs a metadata-only yt-dlp extraction for url and decodes
// the resulting JSON document.
func (f *Fetcher) FetchVideoInfo(ctx context.Context, url string) (*model.VideoInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	dl := ytdlp.New().
		SkipDownload().
		DumpSingleJSON().
		NoPlaylist().
		Quiet()

	if f.cookiesFile != "" {
		dl = dl.Cookies(f.cookiesFile)
	}

	result, err := dl.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to extract metadata for %s: %w", url, err)
	}

	return decodeVideoInfo([]byte(result.Stdout))
}

// decodeVideoInfo parses a yt-dlp --dump-single-json document.
func decodeVideoInfo(data []byte) (*model.VideoInfo, error) {
	var info model.VideoInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to parse yt-dlp metadata: %w", err)
	}
	return &info, nil
}

// EnsureYTDLP makes sure a usable yt-dlp binary is available, downloading one
// if the system has none.
func EnsureYTDLP(ctx context.Context) error {
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		return fmt.Errorf("yt-dlp is not available: %w", err)
	}
	return nil
}
