package cameras

import "errors"

// Sentinel kinds for upstream failures. All of them collapse to an empty
// camera list at the public boundary; they exist so the distinction stays
// observable in logs, metrics, and tests.
var (
	ErrUpstreamStatus    = errors.New("camera API returned non-success status")
	ErrUpstreamTransport = errors.New("camera API transport failure")
	ErrUpstreamDecode    = errors.New("camera API payload malformed")
)

func isUpstreamStatus(err error) bool {
	return errors.Is(err, ErrUpstreamStatus)
}
