package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNotFound     = errors.New("entry not found")
	ErrUnavailable  = errors.New("store unavailable")
	ErrInvalidDelta = errors.New("invalid points delta")
)
