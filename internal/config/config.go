package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ytpick/ytpick/internal/model"
)

// EnvCookiesFile names the environment variable holding a cookies file path
// to pass through to yt-dlp (for age-gated or member-only videos).
const EnvCookiesFile = "YTDLP_COOKIES"

// Config holds all runtime settings for one invocation. It is resolved once
// at startup and passed explicitly to the components that need it.
type Config struct {
	// URL of the media item to download (positional argument).
	URL string

	// Resolution is the pre-chosen height in pixels, 0 when the user should
	// be prompted.
	Resolution int

	// OutputDir is the absolute destination directory.
	OutputDir string

	// CookiesFile is an optional cookies file forwarded to yt-dlp.
	CookiesFile string
}

// Load resolves the runtime configuration from CLI values and the
// environment. An optional .env file in the working directory is honored.
// outputDir defaults to the current working directory and is made absolute
// here so later components never consult the process state again.
func Load(url string, resolution int, outputDir string) (*Config, error) {
	// Missing .env files are the normal case.
	_ = godotenv.Load()

	if outputDir == "" {
		outputDir = "."
	}
	absDir, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output directory %q: %w", outputDir, err)
	}

	cfg := &Config{
		URL:         url,
		Resolution:  resolution,
		OutputDir:   absDir,
		CookiesFile: os.Getenv(EnvCookiesFile),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations before any network work happens.
func (c *Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("source URL is required")
	}
	if c.Resolution != 0 && !model.IsSupportedHeight(c.Resolution) {
		return fmt.Errorf("unsupported resolution %d (supported: %s)", c.Resolution, supportedList())
	}
	return nil
}

// supportedList renders the catalog for error messages, e.g. "360, 480, ...".
func supportedList() string {
	parts := make([]string, len(model.SupportedHeights))
	for i, h := range model.SupportedHeights {
		parts[i] = strconv.Itoa(h)
	}
	return strings.Join(parts, ", ")
}
