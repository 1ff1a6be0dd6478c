// Package errs defines the error kinds propagated by the tidal engine:
// invalid constituent names, shape mismatches, domain validation failures,
// and numeric solver failures. NaN is not an error; it is the defined
// "no data" value on the output side and is never wrapped by this package.
package errs

import "fmt"

// Kind classifies an engine error.
type Kind int

const (
	// InvalidConstituent means a string did not match any known constituent.
	InvalidConstituent Kind = iota
	// ShapeMismatch means array dimensions disagree.
	ShapeMismatch
	// DomainError means a constructor-time validation failed (uneven axis,
	// negative LGP code, out-of-bounds triangle index, too few axis points).
	DomainError
	// NumericFailure means a numeric solver (e.g. Cholesky) could not proceed.
	NumericFailure
)

func (k Kind) String() string {
	switch k {
	case InvalidConstituent:
		return "invalid constituent"
	case ShapeMismatch:
		return "shape mismatch"
	case DomainError:
		return "domain error"
	case NumericFailure:
		return "numeric failure"
	default:
		return "unknown error"
	}
}

// Error is a typed error carrying a Kind, wrapping an underlying cause the
// way the teacher's adapters wrap stdlib errors with fmt.Errorf("...: %w").
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, so callers can
// write errors.Is(err, errs.ErrInvalidConstituent), or compare against any
// other sentinel built with New(kind, "").
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New builds an *Error with no wrapped cause.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error wrapping cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// Sentinel values for errors.Is comparisons, e.g. errors.Is(err, errs.ErrInvalidConstituent).
var (
	ErrInvalidConstituent = &Error{Kind: InvalidConstituent}
	ErrShapeMismatch      = &Error{Kind: ShapeMismatch}
	ErrDomainError        = &Error{Kind: DomainError}
	ErrNumericFailure     = &Error{Kind: NumericFailure}
)
