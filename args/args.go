// Package args resolves the positional and named arguments of one directive
// call against the casting protocol.
//
// Every positional or named slot is consumed exactly once; positional
// extraction is strictly left to right. A failed positional probe leaves
// the argument in place so a later probe with a different target type can
// claim it. The directive itself never rejects leftovers -- Finish exists so
// the embedding evaluator can run the final unexpected-argument check.
package args

import (
	"fmt"

	"go.uber.org/multierr"

	"mlc/value"
)

type posEntry struct {
	v    value.Value
	used bool
}

type namedEntry struct {
	name string
	v    value.Value
	used bool
}

// Args is the argument set of a single directive call. It is created by the
// evaluator, fully consumed inside the directive, and then checked for
// leftovers.
type Args struct {
	// Span covers the whole call, for missing-argument diagnostics.
	Span value.Span

	// Warn receives non-fatal diagnostics raised during casting (lenient
	// array drops). May be nil.
	Warn func(error)

	pos   []posEntry
	named []namedEntry
}

// New creates an empty argument set for a call at the given span.
func New(span value.Span) *Args {
	return &Args{Span: span}
}

// AddPos appends a positional argument.
func (a *Args) AddPos(v value.Value) {
	a.pos = append(a.pos, posEntry{v: v})
}

// AddNamed appends a named argument. Names are unique within one call.
func (a *Args) AddNamed(name string, v value.Value) error {
	for _, e := range a.named {
		if e.name == name {
			return value.Errorf(v.Span(), "duplicate argument: %s", name)
		}
	}
	a.named = append(a.named, namedEntry{name: name, v: v})
	return nil
}

// PopNamed removes and returns the named argument, unchecked. Most callers
// want Named; this raw form exists for directives that need the value's
// span before casting (e.g. to point an invalid-literal error at it).
func (a *Args) PopNamed(key string) (value.Value, bool) {
	for i := range a.named {
		if a.named[i].name == key && !a.named[i].used {
			a.named[i].used = true
			return a.named[i].v, true
		}
	}
	return value.Value{}, false
}

// PopPos removes and returns the next unconsumed positional argument if the
// probe accepts it, unchecked. The raw counterpart of Eat.
func (a *Args) PopPos(accept func(value.Value) bool) (value.Value, bool) {
	for i := range a.pos {
		if a.pos[i].used {
			continue
		}
		if accept != nil && !accept(a.pos[i].v) {
			return value.Value{}, false
		}
		a.pos[i].used = true
		return a.pos[i].v, true
	}
	return value.Value{}, false
}

// Named looks up and removes a named argument and casts it. It returns nil
// without error when the key was not supplied; a present value that fails
// to cast is an error.
func Named[T any](a *Args, key string) (*T, error) {
	v, ok := a.PopNamed(key)
	if !ok {
		return nil, nil
	}
	t, err := value.CastWarn[T](v, a.Warn)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Eat attempts to consume the next unconsumed positional argument as T. If
// the cast fails the argument stays unconsumed, so a later probe with a
// different target type may claim it.
func Eat[T any](a *Args) *T {
	for i := range a.pos {
		if a.pos[i].used {
			continue
		}
		t, err := value.CastWarn[T](a.pos[i].v, a.Warn)
		if err != nil {
			return nil
		}
		a.pos[i].used = true
		return &t
	}
	return nil
}

// MissingError reports a required argument that was not supplied.
type MissingError struct {
	Name string
	Span value.Span
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing argument: %s", e.Name)
}

// Expect consumes the next positional argument like Eat, but failure to
// produce a value -- nothing remains, or the next argument cannot cast -- is
// a missing-argument error for the given role.
func Expect[T any](a *Args, role string) (T, error) {
	if t := Eat[T](a); t != nil {
		return *t, nil
	}
	var zero T
	return zero, &MissingError{Name: role, Span: a.Span}
}

// All drains every remaining positional argument in order, casting each.
// Unlike lenient array casting, draining is strict: the first uncastable
// element aborts with its cast error.
func All[T any](a *Args) ([]T, error) {
	var out []T
	for i := range a.pos {
		if a.pos[i].used {
			continue
		}
		t, err := value.CastWarn[T](a.pos[i].v, a.Warn)
		if err != nil {
			return nil, err
		}
		a.pos[i].used = true
		out = append(out, t)
	}
	return out, nil
}

// Finish reports every argument that was never consumed. The evaluator
// calls this after the directive returns; one error per leftover, combined.
func (a *Args) Finish() error {
	var err error
	for _, e := range a.pos {
		if !e.used {
			err = multierr.Append(err, value.Errorf(e.v.Span(), "unexpected argument"))
		}
	}
	for _, e := range a.named {
		if !e.used {
			err = multierr.Append(err, value.Errorf(e.v.Span(), "unexpected argument: %s", e.name))
		}
	}
	return err
}
