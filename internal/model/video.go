package model

// VideoInfo is the metadata record for one media item, as returned by a
// metadata-only yt-dlp extraction (--dump-single-json).
type VideoInfo struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Duration   float64  `json:"duration"`
	WebpageURL string   `json:"webpage_url"`
	Formats    []Format `json:"formats"`
}
