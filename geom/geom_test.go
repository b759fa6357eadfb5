package geom

import "testing"

func TestLengthUnits(t *testing.T) {
	tests := []struct {
		name string
		got  Length
		pts  float64
	}{
		{"pt", Pt(12), 12},
		{"in", In(1), 72},
		{"cm", Cm(2.54), 72},
		{"mm", Mm(25.4), 72},
	}
	for _, tc := range tests {
		if !tc.got.ApproxEq(Pt(tc.pts)) {
			t.Fatalf("%s: expected %gpt, got %v", tc.name, tc.pts, tc.got)
		}
	}
}

func TestLinearResolve(t *testing.T) {
	lin := Linear{Abs: Pt(10), Rel: Percent(50)}
	got := lin.Resolve(Pt(100))
	if !got.ApproxEq(Pt(60)) {
		t.Fatalf("expected 60pt, got %v", got)
	}
}

func TestLinearWidening(t *testing.T) {
	if l := LinearFromLength(Pt(5)); !l.Rel.IsZero() || !l.Abs.ApproxEq(Pt(5)) {
		t.Fatalf("length widening broken: %v", l)
	}
	if l := LinearFromRelative(Percent(25)); !l.Abs.IsZero() || l.Rel != 0.25 {
		t.Fatalf("relative widening broken: %v", l)
	}
}

func TestLinearString(t *testing.T) {
	tests := []struct {
		lin  Linear
		want string
	}{
		{Linear{}, "0pt"},
		{Linear{Abs: Pt(10)}, "10pt"},
		{Linear{Rel: Percent(5)}, "5%"},
		{Linear{Abs: Pt(10), Rel: Percent(5)}, "10pt + 5%"},
	}
	for _, tc := range tests {
		if got := tc.lin.String(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestFractionalShare(t *testing.T) {
	if got := Fr(1).Share(Fr(4), Pt(100)); !got.ApproxEq(Pt(25)) {
		t.Fatalf("expected 25pt, got %v", got)
	}
	if got := Fr(1).Share(0, Pt(100)); !got.IsZero() {
		t.Fatalf("expected zero share for zero total, got %v", got)
	}
}

func TestAlignAxis(t *testing.T) {
	tests := []struct {
		align Align
		axis  SpecAxis
		fixed bool
	}{
		{AlignLeft, Horizontal, true},
		{AlignRight, Horizontal, true},
		{AlignTop, Vertical, true},
		{AlignBottom, Vertical, true},
		{AlignStart, 0, false},
		{AlignCenter, 0, false},
		{AlignEnd, 0, false},
	}
	for _, tc := range tests {
		axis, fixed := tc.align.Axis()
		if fixed != tc.fixed || (fixed && axis != tc.axis) {
			t.Fatalf("%s: axis = %v/%v, expected %v/%v", tc.align, axis, fixed, tc.axis, tc.fixed)
		}
	}
}

func TestParseAlign(t *testing.T) {
	for _, name := range []string{"start", "center", "end", "left", "right", "top", "bottom"} {
		a, ok := ParseAlign(name)
		if !ok || a.String() != name {
			t.Fatalf("round trip failed for %q: %v %v", name, a, ok)
		}
	}
	if _, ok := ParseAlign("middle"); ok {
		t.Fatal("accepted unknown alignment")
	}
}

func TestDir(t *testing.T) {
	if LTR.Axis() != Horizontal || TTB.Axis() != Vertical {
		t.Fatal("direction axes wrong")
	}
	for _, name := range []string{"ltr", "rtl", "ttb", "btt"} {
		d, ok := ParseDir(name)
		if !ok || d.String() != name {
			t.Fatalf("round trip failed for %q", name)
		}
	}
	if _, ok := ParseDir("up"); ok {
		t.Fatal("accepted unknown direction")
	}
}

func TestSidesSplat(t *testing.T) {
	s := SplatSides(Pt(3))
	if !s.Left.ApproxEq(Pt(3)) || !s.Top.ApproxEq(Pt(3)) || !s.Right.ApproxEq(Pt(3)) || !s.Bottom.ApproxEq(Pt(3)) {
		t.Fatalf("splat did not fill all sides: %+v", s)
	}
}

func TestSizeSwapped(t *testing.T) {
	s := Size{W: Pt(10), H: Pt(20)}
	got := s.Swapped()
	if !got.W.ApproxEq(Pt(20)) || !got.H.ApproxEq(Pt(10)) {
		t.Fatalf("swap wrong: %v", got)
	}
}
