package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for translation failures. Use errors.Is to match them
// against *UnsupportedOperationError and *MalformedTreeError values.
var (
	ErrUnsupportedOperation  = errors.New("unsupported operation")
	ErrSkipWithoutOrdering   = errors.New("skip requires explicit ordering")
	ErrSkipWithoutTake       = errors.New("skip requires take")
	ErrPaginationUnsupported = errors.New("pagination is not supported")
	ErrFeatureUnsupported    = errors.New("feature is not supported")
	ErrMalformedTree         = errors.New("malformed expression tree")
)

// Cause classifies an UnsupportedOperationError.
type Cause int

// Cause constants.
const (
	CauseFeatureUnsupported Cause = iota
	CauseSkipWithoutOrdering
	CauseSkipWithoutTake
	CausePaginationUnsupported
)

// String returns the string representation of Cause.
func (c Cause) String() string {
	switch c {
	case CauseFeatureUnsupported:
		return "feature-unsupported"
	case CauseSkipWithoutOrdering:
		return "skip-without-ordering"
	case CauseSkipWithoutTake:
		return "skip-without-take"
	case CausePaginationUnsupported:
		return "pagination-unsupported"
	default:
		return "unknown"
	}
}

// Sentinel returns the sentinel error matched by errors.Is for this cause.
func (c Cause) Sentinel() error {
	switch c {
	case CauseSkipWithoutOrdering:
		return ErrSkipWithoutOrdering
	case CauseSkipWithoutTake:
		return ErrSkipWithoutTake
	case CausePaginationUnsupported:
		return ErrPaginationUnsupported
	default:
		return ErrFeatureUnsupported
	}
}

func (c Cause) explain() string {
	switch c {
	case CauseSkipWithoutOrdering:
		return "without explicit ordering"
	case CauseSkipWithoutTake:
		return "without the 'take' operation"
	case CausePaginationUnsupported:
		return "in this query"
	default:
		return "in this dialect"
	}
}

// UnsupportedOperationError is returned when a dialect cannot express a
// construct of an otherwise well-formed tree.
type UnsupportedOperationError struct {
	Dialect   string
	Operation string // e.g. "skip", "Coalesce", "COUNT(DISTINCT)"
	Cause     Cause
	Reason    string // optional detail
}

func (e *UnsupportedOperationError) Error() string {
	msg := fmt.Sprintf("%s: cannot support the '%s' operation %s", e.Dialect, e.Operation, e.Cause.explain())
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is matches ErrUnsupportedOperation and the sentinel of the error's cause.
func (e *UnsupportedOperationError) Is(target error) bool {
	return target == ErrUnsupportedOperation || target == e.Cause.Sentinel()
}

// MalformedTreeError is returned when a tree violates a structural invariant.
type MalformedTreeError struct {
	Node   NodeKind
	Reason string
}

func (e *MalformedTreeError) Error() string {
	return fmt.Sprintf("malformed expression tree: %s: %s", e.Node, e.Reason)
}

// Is matches ErrMalformedTree.
func (e *MalformedTreeError) Is(target error) bool {
	return target == ErrMalformedTree
}

// Malformed builds a *MalformedTreeError with a formatted reason.
func Malformed(kind NodeKind, format string, args ...any) error {
	return &MalformedTreeError{Node: kind, Reason: fmt.Sprintf(format, args...)}
}
