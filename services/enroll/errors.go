package enroll

import (
	"errors"
	"fmt"
)

// ValidationError blocks a wizard transition before anything is written. The
// message is user-facing and names what is missing.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a pre-write validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrDraftNotFound is returned when a draft id matches nothing in the store
// (never started, cancelled, or expired).
var ErrDraftNotFound = errors.New("enrollment draft not found or expired")

// ErrAtReview signals that Advance was called on the review step; submission
// is its own operation, not a fifth state.
var ErrAtReview = errors.New("draft is at the review step; submit instead")
