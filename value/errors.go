package value

import "fmt"

// CastError reports that a value's kind is not in the accepted set for the
// target type at this position. The message enumerates every kind the
// target accepts; the span points at the offending value.
type CastError struct {
	Span     Span
	Expected string
	Found    Kind
}

func (e *CastError) Error() string {
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
}

// DiagError is a general evaluation diagnostic tied to a source span, used
// for structurally valid values that do not denote a valid domain concept
// (e.g. an unknown paper name).
type DiagError struct {
	Span    Span
	Message string
}

func (e *DiagError) Error() string { return e.Message }

// Errorf creates a span-tagged diagnostic error.
func Errorf(span Span, format string, args ...any) *DiagError {
	return &DiagError{Span: span, Message: fmt.Sprintf(format, args...)}
}
