package deep

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by traversal operations.
//
// Every failure is reported as a [*PathError] wrapping one of these
// sentinels, so use [errors.Is] for comparisons:
//
//	_, err := deep.Get(root, "users", "3", "name")
//	if errors.Is(err, deep.ErrKeyNotFound) {
//	    // some segment of the path does not exist
//	}
var (
	// ErrKeyNotFound is returned when a mapping key or object attribute
	// referenced by a path segment does not exist.
	ErrKeyNotFound = errors.New("deep: key not found")

	// ErrIndexOutOfRange is returned when a sequence, set, or tuple index
	// is outside the container's bounds. Negative indices are rejected
	// with this error as well.
	ErrIndexOutOfRange = errors.New("deep: index out of range")

	// ErrInvalidIndex is returned when a path segment addressing a
	// positional container does not parse as an integer.
	ErrInvalidIndex = errors.New("deep: invalid sequence index")

	// ErrUnsupported is returned when the resolved container cannot
	// perform the requested operation — default-assignment into a set,
	// writing through a non-pointer struct, or growing a sequence that
	// has no enclosing container to hold the new header.
	ErrUnsupported = errors.New("deep: operation not supported by container")

	// ErrUnassignable is returned when a value cannot be assigned to the
	// targeted struct field because of its type.
	ErrUnassignable = errors.New("deep: value not assignable to field")

	// ErrEmptyPath is returned by mutating operations called with no path
	// segments.
	ErrEmptyPath = errors.New("deep: path must not be empty")
)

// PathError records a failed traversal step: the operation, the offending
// path segment, and the kind of container it was resolved against. It
// unwraps to one of the package sentinel errors.
type PathError struct {
	Op      string
	Segment string
	Kind    Kind
	Err     error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%v: %s of segment %q in %s", e.Err, e.Op, e.Segment, e.Kind)
}

func (e *PathError) Unwrap() error { return e.Err }

func newPathError(op, seg string, kind Kind, err error) *PathError {
	return &PathError{Op: op, Segment: seg, Kind: kind, Err: err}
}
