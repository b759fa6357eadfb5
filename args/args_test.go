package args

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"mlc/geom"
	"mlc/layout"
	"mlc/value"
)

func TestNamed(t *testing.T) {
	a := New(value.Span{})
	if err := a.AddNamed("width", value.LengthValue(geom.Pt(20))); err != nil {
		t.Fatal(err)
	}

	w, err := Named[geom.Linear](a, "width")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w == nil || !w.Abs.ApproxEq(geom.Pt(20)) {
		t.Fatalf("unexpected width: %v", w)
	}

	// Absent key is nil without error.
	h, err := Named[geom.Linear](a, "height")
	if err != nil || h != nil {
		t.Fatalf("absent key: %v %v", h, err)
	}

	// Consumed exactly once.
	if w2, _ := Named[geom.Linear](a, "width"); w2 != nil {
		t.Fatalf("width consumed twice: %v", w2)
	}
	if err := a.Finish(); err != nil {
		t.Fatalf("leftovers after full consumption: %v", err)
	}
}

func TestNamedWrongType(t *testing.T) {
	a := New(value.Span{})
	if err := a.AddNamed("width", value.Bool(true)); err != nil {
		t.Fatal(err)
	}
	if _, err := Named[geom.Linear](a, "width"); err == nil {
		t.Fatal("expected cast error for present named argument")
	}
}

func TestAddNamedDuplicate(t *testing.T) {
	a := New(value.Span{})
	if err := a.AddNamed("dir", value.Str("ltr")); err != nil {
		t.Fatal(err)
	}
	err := a.AddNamed("dir", value.Str("rtl"))
	if err == nil || !strings.Contains(err.Error(), "duplicate argument: dir") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestEatProbeNonDestructive(t *testing.T) {
	// A failed probe leaves the argument in place, so two probes with
	// different target types can claim arguments regardless of order.
	a := New(value.Span{})
	a.AddPos(value.Str("left"))
	a.AddPos(value.LengthValue(geom.Pt(5)))

	if l := Eat[geom.Linear](a); l != nil {
		t.Fatalf("linear probe should not claim the alignment: %v", l)
	}
	al := Eat[geom.Align](a)
	if al == nil || *al != geom.AlignLeft {
		t.Fatalf("alignment probe failed: %v", al)
	}
	l := Eat[geom.Linear](a)
	if l == nil || !l.Abs.ApproxEq(geom.Pt(5)) {
		t.Fatalf("linear probe failed after alignment was claimed: %v", l)
	}
	if err := a.Finish(); err != nil {
		t.Fatalf("leftovers: %v", err)
	}
}

func TestExpectMissing(t *testing.T) {
	a := New(value.Span{Start: 3, End: 9})
	_, err := Expect[geom.Linear](a, "spacing")
	var me *MissingError
	if !errors.As(err, &me) {
		t.Fatalf("expected MissingError, got %v", err)
	}
	if me.Error() != "missing argument: spacing" {
		t.Fatalf("unexpected message: %q", me.Error())
	}
	if me.Span != (value.Span{Start: 3, End: 9}) {
		t.Fatalf("error should point at the call site, got %v", me.Span)
	}
}

func TestExpectUncastable(t *testing.T) {
	// A present argument of the wrong type is reported the same way as an
	// absent one, and stays unconsumed for the leftover check.
	a := New(value.Span{})
	a.AddPos(value.Bool(true))

	_, err := Expect[geom.Linear](a, "spacing")
	var me *MissingError
	if !errors.As(err, &me) {
		t.Fatalf("expected MissingError, got %v", err)
	}
	if err := a.Finish(); err == nil {
		t.Fatal("the unconsumed argument should still be a leftover")
	}
}

func TestAllStrict(t *testing.T) {
	a := New(value.Span{})
	a.AddPos(value.LengthValue(geom.Pt(1)))
	a.AddPos(value.Bool(true))
	a.AddPos(value.LengthValue(geom.Pt(2)))

	if _, err := All[geom.Linear](a); err == nil {
		t.Fatal("draining should abort on the first uncastable argument")
	}
}

func TestAllOrder(t *testing.T) {
	a := New(value.Span{})
	a.AddPos(value.LengthValue(geom.Pt(1)))
	a.AddPos(value.LengthValue(geom.Pt(2)))
	a.AddPos(value.LengthValue(geom.Pt(3)))

	got, err := All[geom.Linear](a)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 values, got %d", len(got))
	}
	for i, l := range got {
		if !l.Abs.ApproxEq(geom.Pt(float64(i + 1))) {
			t.Fatalf("order lost at %d: %v", i, l)
		}
	}
}

func TestFinishLeftovers(t *testing.T) {
	a := New(value.Span{})
	a.AddPos(value.Int(1))
	if err := a.AddNamed("huh", value.Bool(true)); err != nil {
		t.Fatal(err)
	}

	err := a.Finish()
	errs := multierr.Errors(err)
	if len(errs) != 2 {
		t.Fatalf("expected 2 leftover errors, got %d: %v", len(errs), err)
	}
	if errs[0].Error() != "unexpected argument" {
		t.Fatalf("positional leftover: %q", errs[0].Error())
	}
	if errs[1].Error() != "unexpected argument: huh" {
		t.Fatalf("named leftover: %q", errs[1].Error())
	}
}

func TestWarnSink(t *testing.T) {
	var warned int
	a := New(value.Span{})
	a.Warn = func(error) { warned++ }
	a.AddPos(value.Array([]value.Value{value.Auto(), value.Bool(true)}))

	// Lenient array casting drops the boolean and reports it.
	if tl := Eat[layout.TrackList](a); tl == nil {
		t.Fatal("array should still cast after the drop")
	}
	if warned != 1 {
		t.Fatalf("expected 1 warning, got %d", warned)
	}
}
