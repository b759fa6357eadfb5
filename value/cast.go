package value

import (
	"fmt"
	"reflect"
	"strings"
)

// Casting protocol.
//
// For every target type a fixed, ordered list of rules is registered once
// at startup into a table keyed by target-type identity. Casting tries the
// rules in order and returns the first conversion that succeeds; on total
// mismatch it fails with a CastError whose "expected ..." part is derived
// from the same table, so the message always enumerates exactly the kinds
// the target accepts.

// Rule maps a set of source kinds to the target type.
type Rule struct {
	// Kinds the rule applies to.
	Kinds []Kind

	// Desc is the human-readable description of this rule's accepted
	// values, used in error messages. Empty means "derive from Kinds".
	Desc string

	// Conv converts a value of one of the rule's kinds. The warn sink
	// receives non-fatal diagnostics (e.g. elements dropped from lenient
	// array casts) and may be nil.
	Conv func(v Value, warn func(error)) (any, error)
}

type caster struct {
	rules    []Rule
	expected string
}

var casters = make(map[reflect.Type]*caster)

// RegisterCaster declares the casting rules for target type T. It must be
// called exactly once per target type, from an init function.
func RegisterCaster[T any](rules ...Rule) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if _, dup := casters[t]; dup {
		panic(fmt.Sprintf("value: duplicate casting rules for %s", t))
	}
	if len(rules) == 0 {
		panic(fmt.Sprintf("value: empty casting rules for %s", t))
	}
	casters[t] = &caster{rules: rules, expected: expectedFromRules(rules)}
}

// expectedFromRules joins the per-rule descriptions into the "expected ..."
// enumeration. Duplicate descriptions collapse.
func expectedFromRules(rules []Rule) string {
	var descs []string
	seen := make(map[string]bool)
	for _, r := range rules {
		d := r.Desc
		if d == "" {
			var kinds []string
			for _, k := range r.Kinds {
				kinds = append(kinds, k.String())
			}
			d = strings.Join(kinds, " or ")
		}
		if !seen[d] {
			seen[d] = true
			descs = append(descs, d)
		}
	}
	switch len(descs) {
	case 1:
		return descs[0]
	case 2:
		return descs[0] + " or " + descs[1]
	default:
		return strings.Join(descs[:len(descs)-1], ", ") + ", or " + descs[len(descs)-1]
	}
}

// Cast converts a value to the target type.
func Cast[T any](v Value) (T, error) {
	return CastWarn[T](v, nil)
}

// CastWarn converts a value to the target type, routing non-fatal
// diagnostics to warn. A failed cast never mutates or consumes anything;
// callers may retry the same value against another target type.
func CastWarn[T any](v Value, warn func(error)) (T, error) {
	var zero T
	t := reflect.TypeOf((*T)(nil)).Elem()
	c, ok := casters[t]
	if !ok {
		panic(fmt.Sprintf("value: no casting rules registered for %s", t))
	}
	var convErr error
	for _, r := range c.rules {
		if !kindIn(v.kind, r.Kinds) {
			continue
		}
		out, err := r.Conv(v, warn)
		if err != nil {
			// The kind matched but the content did not (e.g. a string
			// that is not a valid alignment). Later rules may still
			// claim the value; remember the first failure as the cause.
			if convErr == nil {
				convErr = err
			}
			continue
		}
		res, ok := out.(T)
		if !ok {
			panic(fmt.Sprintf("value: rule for %s produced %T", t, out))
		}
		return res, nil
	}
	if convErr != nil {
		// The kind was acceptable, the content was not. Report the rule's
		// own diagnostic rather than a kind mismatch.
		return zero, Errorf(v.span, "%s", convErr)
	}
	return zero, &CastError{Span: v.span, Expected: c.expected, Found: v.kind}
}

// Expected returns the accepted-kinds description registered for T. Useful
// for composing diagnostics outside the cast path.
func Expected[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	c, ok := casters[t]
	if !ok {
		panic(fmt.Sprintf("value: no casting rules registered for %s", t))
	}
	return c.expected
}

func kindIn(k Kind, set []Kind) bool {
	for _, s := range set {
		if s == k {
			return true
		}
	}
	return false
}
