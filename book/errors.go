package book

import (
	"errors"

	"github.com/arcwave-systems/lob/internal/logging"
)

// ErrInvariantViolation marks a panic raised because one of the
// book's internal consistency guarantees would otherwise be broken
// (e.g. a price level's total quantity underflowing, or a node found
// linked into the wrong side's queue). It never crosses the public
// API boundary as a return value — AddOrder returns nothing,
// CancelOrder and AmendOrder return a bool, and Snapshot returns its
// levels.
// It exists so a recover() in a caller's test harness can distinguish
// this class of internal-bug panic from any other.
var ErrInvariantViolation = errors.New("book: invariant violation")

// invariantError wraps ErrInvariantViolation with the specific
// condition that failed, and is what gets logged (via zerolog) and
// panicked with.
type invariantError struct {
	reason string
}

func (e *invariantError) Error() string { return "book: invariant violation: " + e.reason }
func (e *invariantError) Unwrap() error { return ErrInvariantViolation }

func errInvariantViolation(reason string) error {
	logging.InvariantViolation(reason)
	return &invariantError{reason: reason}
}
