package download

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/lrstanley/go-ytdlp"
)

// OutputTemplate names the downloaded file after the video title and the
// chosen height.
const OutputTemplate = "%(title)s [%(height)sp].%(ext)s"

// MergeContainer normalizes the output container when video and audio are
// fetched as separate streams.
const MergeContainer = "mp4"

// progressInterval throttles console progress updates.
const progressInterval = 500 * time.Millisecond

// Service invokes yt-dlp to fetch a media item at a chosen height into the
// configured output directory.
type Service struct {
	outputDir   string
	cookiesFile string
	progressOut io.Writer

	// progressMutex guards progressShown, written from the go-ytdlp
	// progress goroutine and read after Run returns.
	progressMutex sync.Mutex
	progressShown bool
}

// NewService creates a download service writing into outputDir. cookiesFile
// may be empty.
func NewService(outputDir, cookiesFile string) *Service {
	return &Service{
		outputDir:   outputDir,
		cookiesFile: cookiesFile,
		progressOut: os.Stdout,
	}
}

// Download fetches url at height and returns the path of the downloaded file
// when yt-dlp reports it. A failed invocation or a non-zero completion status
// yields a *DownloadError.
func (s *Service) Download(ctx context.Context, url string, height int) (string, error) {
	dl := ytdlp.New().
		Format(FormatExpression(height)).
		Output(filepath.Join(s.outputDir, OutputTemplate)).
		MergeOutputFormat(MergeContainer).
		NoPlaylist()

	if s.cookiesFile != "" {
		dl = dl.Cookies(s.cookiesFile)
	}

	dl.ProgressFunc(progressInterval, s.reportProgress)

	result, err := dl.Run(ctx, url)

	s.finishProgress()

	if err != nil {
		return "", &DownloadError{URL: url, Err: err}
	}
	if result.ExitCode != 0 {
		return "", &DownloadError{URL: url}
	}

	return outputPath(result), nil
}

// reportProgress renders a single console progress line, rewritten in place.
func (s *Service) reportProgress(update ytdlp.ProgressUpdate) {
	if update.TotalBytes == 0 {
		return
	}

	percent := float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100

	speed := ""
	if !update.Started.IsZero() {
		elapsed := time.Since(update.Started)
		if elapsed.Seconds() > 0 {
			bytesPerSecond := float64(update.DownloadedBytes) / elapsed.Seconds()
			speed = " at " + humanize.Bytes(uint64(bytesPerSecond)) + "/s"
		}
	}

	s.progressMutex.Lock()
	defer s.progressMutex.Unlock()
	fmt.Fprintf(s.progressOut, "\r  %3.0f%% of %s%s   ", percent, humanize.Bytes(uint64(update.TotalBytes)), speed)
	s.progressShown = true
}

// finishProgress terminates a progress line in place, if one was drawn.
func (s *Service) finishProgress() {
	s.progressMutex.Lock()
	defer s.progressMutex.Unlock()
	if s.progressShown {
		fmt.Fprintln(s.progressOut)
		s.progressShown = false
	}
}

// outputPath extracts the downloaded file path from the yt-dlp result, empty
// when the result carries no usable info.
func outputPath(result *ytdlp.Result) string {
	info, err := result.GetExtractedInfo()
	if err != nil || len(info) == 0 {
		return ""
	}
	if info[0].Filename == nil {
		return ""
	}
	return *info[0].Filename
}
