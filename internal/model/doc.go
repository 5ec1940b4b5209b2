package model

// Package model defines domain data structures used across the app: the
// yt-dlp format record, video metadata, and the supported resolution catalog.
// Structures mirror the yt-dlp JSON output and are treated as read-only input.
