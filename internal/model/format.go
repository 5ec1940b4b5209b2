package model

import "fmt"

// AudioOnlyCodec is the vcodec marker yt-dlp uses for audio-only formats.
const AudioOnlyCodec = "none"

// Format is a single encoding variant of a media item as reported by yt-dlp
// metadata extraction. Fields mirror the yt-dlp JSON output and are treated
// as read-only input.
type Format struct {
	FormatID       string `json:"format_id"`
	Ext            string `json:"ext"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	VCodec         string `json:"vcodec"`
	ACodec         string `json:"acodec"`
	Filesize       int64  `json:"filesize"`
	FilesizeApprox int64  `json:"filesize_approx"`
	FormatNote     string `json:"format_note"`
}

// HasVideo returns true unless the format carries the explicit audio-only
// marker. Extractors may omit the vcodec field entirely; such records are
// kept.
func (f Format) HasVideo() bool {
	return f.VCodec != AudioOnlyCodec
}

// SizeEstimate returns the best known size estimate in bytes: the exact
// filesize when reported, the approximate one otherwise, 0 when unknown.
func (f Format) SizeEstimate() int64 {
	if f.Filesize > 0 {
		return f.Filesize
	}
	return f.FilesizeApprox
}

// Label returns the display label for the format's resolution (e.g. "720p").
func (f Format) Label() string {
	if f.Height == 0 {
		return ""
	}
	return fmt.Sprintf("%dp", f.Height)
}
