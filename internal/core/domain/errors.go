package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrPersistenceRead marks a slot that could not be read or decoded.
	ErrPersistenceRead = errors.New("persistence read failed")
	// ErrPersistenceWrite marks a slot that could not be encoded or written.
	ErrPersistenceWrite = errors.New("persistence write failed")
	// ErrDuplicateID is returned when a campaign id is already in the store.
	ErrDuplicateID = errors.New("duplicate campaign id")
)

// ValidationReason classifies a rejected form field.
type ValidationReason int

const (
	// ReasonMissing means the trimmed field text was empty.
	ReasonMissing ValidationReason = iota
	// ReasonNotANumber means a numeric field had no numeric prefix.
	ReasonNotANumber
)

// ValidationError reports the first offending form field. Its message is
// shown to the user verbatim.
type ValidationError struct {
	Field  Field
	Reason ValidationReason
}

func (e *ValidationError) Error() string {
	if e.Reason == ReasonNotANumber {
		return fmt.Sprintf("Please enter a valid number in the %q field.", string(e.Field))
	}
	return fmt.Sprintf("Please fill in the %q field.", string(e.Field))
}
