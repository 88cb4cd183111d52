package reports

import "errors"

// Sentinel kinds for report store errors.
var (
	ErrNotFound         = errors.New("report not found")
	ErrEmptyDescription = errors.New("report description is required")
)
