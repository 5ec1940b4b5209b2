package download

import "fmt"

// FormatExpression returns the yt-dlp format selector targeting height, with
// a three-tier fallback: separate mp4 video at the exact height merged with
// m4a audio, then the same height in any container, then the best combined
// stream at that height.
func FormatExpression(height int) string {
	return fmt.Sprintf(
		"bestvideo[height=%d][ext=mp4]+bestaudio[ext=m4a]/bestvideo[height=%d]+bestaudio/best[height=%d]",
		height, height, height,
	)
}
