package download

import "fmt"

// DownloadError reports that yt-dlp could not complete the requested fetch,
// either because the invocation itself failed or because it finished with a
// non-zero status.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("yt-dlp failed to download %s", e.URL)
	}
	return fmt.Sprintf("yt-dlp failed to download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}
