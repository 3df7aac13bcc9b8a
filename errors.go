package pensool

import (
	"errors"
	"fmt"
)

// Sentinel errors for degenerate geometry. They are recoverable: every
// operation that can produce one also has a fallback (zero vector, identity).
var (
	// ErrZeroVector is reported when a zero-length vector has no direction.
	ErrZeroVector = errors.New("pensool: zero-length vector")

	// ErrSingularTransform is reported when a matrix has no inverse.
	ErrSingularTransform = errors.New("pensool: singular transform")
)

// DegenerateGeometryError records which operation met degenerate input.
type DegenerateGeometryError struct {
	Op  string
	Err error
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("pensool: degenerate geometry in %s: %v", e.Op, e.Err)
}

func (e *DegenerateGeometryError) Unwrap() error {
	return e.Err
}

// TreeInvariantError is the panic value raised when a caller breaks the
// ownership rules of the scene tree. It signals a programming error, not bad
// input, and is never returned as an error value.
type TreeInvariantError struct {
	Op     string
	Reason string
}

func (e *TreeInvariantError) Error() string {
	return "pensool: tree invariant violated by " + e.Op + ": " + e.Reason
}

// PanicTreeInvariant panics with a *TreeInvariantError.
func PanicTreeInvariant(op, reason string) {
	panic(&TreeInvariantError{Op: op, Reason: reason})
}
