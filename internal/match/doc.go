package match

// Package match filters the format records of a media item down to the fixed
// supported resolution catalog, deduplicating by height and preferring the
// variant with the largest known size estimate.
