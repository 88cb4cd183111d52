// Package ranking turns unordered leaderboard entries into a deterministic
// top-N view and validates point awards before they reach the store.
package ranking

import "errors"

// ValidationKind identifies which award rule was violated.
type ValidationKind string

// Validation failure kinds, checked in this order.
const (
	KindEmptyName         ValidationKind = "empty_name"
	KindNameTooLong       ValidationKind = "name_too_long"
	KindNonPositivePoints ValidationKind = "non_positive_points"
)

// ValidationError reports a rejected point award. It is always recoverable
// by the caller and never a system fault.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(kind ValidationKind, msg string) *ValidationError {
	return &ValidationError{Kind: kind, Message: msg}
}

// AsValidation unwraps err into a ValidationError, or returns nil when err
// is something else.
func AsValidation(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
