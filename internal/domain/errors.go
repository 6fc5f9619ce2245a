package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrFetchFailed covers every way the catalog fetch can fail:
	// transport errors, non-2xx statuses and malformed payloads
	ErrFetchFailed = errors.New("catalog fetch failed")

	// ErrUnknownSource indicates the configured source type is not supported
	ErrUnknownSource = errors.New("unknown catalog source")

	// ErrInvalidSortKey indicates a configured sort key is not recognized
	ErrInvalidSortKey = errors.New("invalid sort key")
)
