package platform

// Package platform contains external tooling glue: metadata extraction via
// yt-dlp, binary availability checks, and filesystem helpers.
