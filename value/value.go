// Package value implements the dynamic value model of directive evaluation
// and the declarative casting protocol that turns dynamic values into the
// strongly typed arguments directives consume.
package value

import (
	"fmt"

	"mlc/geom"
	"mlc/layout"
	"mlc/style"
)

// Span locates a value in the source text, for diagnostics.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Kind identifies the active variant of a Value. The set is closed.
type Kind uint8

const (
	KindNone Kind = iota
	KindAuto
	KindBool
	KindInt
	KindFloat
	KindLength
	KindRelative
	KindLinear
	KindFractional
	KindStr
	KindArray
	KindNode
)

// String returns the user-facing name of the kind, as used in cast error
// messages.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindAuto:
		return "auto"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindLength:
		return "length"
	case KindRelative:
		return "relative"
	case KindLinear:
		return "linear"
	case KindFractional:
		return "fractional"
	case KindStr:
		return "string"
	case KindArray:
		return "array"
	case KindNode:
		return "template"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is a dynamically typed semantic value with exactly one active
// variant. Values are immutable: conversions produce new values, never
// mutate in place.
type Value struct {
	span Span
	kind Kind

	b    bool
	i    int64
	f    float64
	len  geom.Length
	rel  geom.Relative
	lin  geom.Linear
	frac geom.Fractional
	str  string
	arr  []Value
	node layout.Node
}

// Kind returns the active variant.
func (v Value) Kind() Kind { return v.kind }

// Span returns the source location this value came from.
func (v Value) Span() Span { return v.span }

// WithSpan returns a copy of the value tagged with a source location.
func (v Value) WithSpan(span Span) Value {
	v.span = span
	return v
}

// None is the absence of a value.
func None() Value { return Value{kind: KindNone} }

// Auto is the "auto" sentinel.
func Auto() Value { return Value{kind: KindAuto} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps an integer.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float wraps a float.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// LengthValue wraps an absolute length.
func LengthValue(l geom.Length) Value { return Value{kind: KindLength, len: l} }

// RelativeValue wraps a relative share.
func RelativeValue(r geom.Relative) Value { return Value{kind: KindRelative, rel: r} }

// LinearValue wraps a linear combination.
func LinearValue(l geom.Linear) Value { return Value{kind: KindLinear, lin: l} }

// FractionalValue wraps a fractional weight.
func FractionalValue(f geom.Fractional) Value { return Value{kind: KindFractional, frac: f} }

// Str wraps a string.
func Str(s string) Value { return Value{kind: KindStr, str: s} }

// Array wraps a value list.
func Array(items []Value) Value { return Value{kind: KindArray, arr: items} }

// NodeValue wraps inline content.
func NodeValue(n layout.Node) Value { return Value{kind: KindNode, node: n} }

// BlockValue wraps an already-lowered block as inline content, so directives
// can hand finished layout nodes back to the evaluator.
func BlockValue(b layout.BlockNode) Value {
	return NodeValue(blockContent{block: b})
}

// blockContent adapts a finished block back into the inline Node contract.
type blockContent struct {
	block layout.BlockNode
}

func (b blockContent) ToBlock(*style.Styles) layout.BlockNode { return b.block }

func (v Value) String() string {
	switch v.kind {
	case KindNone:
		return "none"
	case KindAuto:
		return "auto"
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindLength:
		return v.len.String()
	case KindRelative:
		return v.rel.String()
	case KindLinear:
		return v.lin.String()
	case KindFractional:
		return v.frac.String()
	case KindStr:
		return fmt.Sprintf("%q", v.str)
	case KindArray:
		s := "("
		for i, item := range v.arr {
			if i > 0 {
				s += ", "
			}
			s += item.String()
		}
		return s + ")"
	case KindNode:
		return "<template>"
	}
	return "<invalid>"
}

// Items returns the elements of an array value, or nil for other kinds.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}
