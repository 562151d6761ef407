package feed

import (
	"errors"
	"fmt"
)

// ErrFeedUnavailable is matched by every failure to retrieve a feed.
var ErrFeedUnavailable = errors.New("calendar feed unavailable")

// UnavailableError records which source failed and why.
type UnavailableError struct {
	Source string
	Err    error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s feed unavailable: %v", e.Source, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

func (e *UnavailableError) Is(target error) bool {
	return target == ErrFeedUnavailable
}

func unavailable(source string, err error) error {
	return &UnavailableError{Source: source, Err: err}
}

// RecordKind names the feed a record belongs to.
type RecordKind string

const (
	KindSlotAssignment RecordKind = "slot-assignment"
	KindUnitLog        RecordKind = "unit-log"
)

// RecordError describes one malformed record that was skipped.
type RecordError struct {
	Kind   RecordKind
	Index  int
	Reason string
}

func (e RecordError) Error() string {
	return fmt.Sprintf("%s[%d]: %s", e.Kind, e.Index, e.Reason)
}
