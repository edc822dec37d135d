// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jpull

import (
	"errors"
	"fmt"

	"github.com/creachadair/jpull/ast"
)

// Sentinel errors used as panic values for violations of the reading
// protocol. See the comments on the Reader type for the rules. A program
// that obeys the protocol never observes these panics.
var (
	// ErrNoValue: a consuming operation was invoked with no value pending.
	ErrNoValue = errors.New("no value is pending")

	// ErrOutOfOrder: an iteration operation was invoked while the innermost
	// open scope was not of the matching kind, or with a value still pending.
	ErrOutOfOrder = errors.New("access out of order")

	// ErrNotInScope: EndArray or EndObject was invoked with no open scope of
	// the requested kind.
	ErrNotInScope = errors.New("no matching open scope")

	// ErrBadCandidates: a candidate list was not sorted and distinct.
	ErrBadCandidates = errors.New("candidates are not sorted and distinct")
)

// A TypeError reports that a value did not have the shape requested from an
// Expect method, or that a replay reached a value of no valid kind. After
// an Expect mismatch the offending value is left pending on the reader, so
// the caller may probe it again or skip it.
type TypeError struct {
	Want  Kind      // the shape requested, or Invalid from a replay
	Value ast.Value // the value found
	Path  string    // the location of the offending value
}

// Error satisfies the error interface.
func (e *TypeError) Error() string {
	if e.Want == Invalid {
		return fmt.Sprintf("at %s: unknown value %T", e.Path, e.Value)
	}
	return fmt.Sprintf("at %s: got %v, want %v", e.Path, kindOf(e.Value), e.Want)
}
