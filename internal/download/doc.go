package download

// Package download delegates the actual fetch to yt-dlp (via
// github.com/lrstanley/go-ytdlp): it builds the height-targeted format
// selector, pins the output naming template and merge container, and wraps
// collaborator failures in a domain error.
