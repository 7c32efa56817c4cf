package feed

import "errors"

// Common feed errors.
var (
	// ErrNoFeedURL is returned when no feed URL is configured.
	ErrNoFeedURL = errors.New("no feed URL configured — set feed.url in the config")
	// ErrNotFound is returned when the feed URL does not resolve.
	ErrNotFound = errors.New("feed not found — check feed.url")
)
