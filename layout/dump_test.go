package layout

import (
	"strings"
	"testing"

	"mlc/geom"
)

func TestDumpString(t *testing.T) {
	w := geom.LinearFromLength(geom.Pt(40))
	inner := ShapeNode{Kind: Rect, Width: &w, Child: EmptyBlock{}}

	tree := StackNode{
		Dir: geom.TTB,
		Children: []StackChild{
			ContentChild(inner, geom.AlignStart),
			SpacingChild(geom.LinearFromLength(geom.Pt(10))),
			ContentChild(BreakNode{Kind: ParBreak}, geom.AlignCenter),
		},
	}

	s := DumpString(tree)
	for _, want := range []string{
		`<stack dir="ttb">`,
		`<spacing amount="10pt"/>`,
		`<shape kind="rect" width="40pt">`,
		`align="center"`,
		`<parbreak/>`,
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("dump missing %q:\n%s", want, s)
		}
	}
}

func TestDumpGrid(t *testing.T) {
	tree := GridNode{
		Tracks: Tracks{
			Columns: TrackList{AutoTrack(), FractionalTrack(geom.Fr(1))},
		},
		Gutter: Tracks{
			Columns: TrackList{LinearTrack(geom.LinearFromLength(geom.Pt(5)))},
			Rows:    TrackList{LinearTrack(geom.LinearFromLength(geom.Pt(5)))},
		},
		Children: []BlockNode{EmptyBlock{}, EmptyBlock{}},
	}

	s := DumpString(tree)
	if !strings.Contains(s, `columns="auto, 1fr"`) {
		t.Fatalf("column tracks missing:\n%s", s)
	}
	if !strings.Contains(s, `column-gutter="5pt"`) || !strings.Contains(s, `row-gutter="5pt"`) {
		t.Fatalf("gutter tracks missing:\n%s", s)
	}
	if strings.Count(s, "<cell>") != 2 {
		t.Fatalf("expected 2 cells:\n%s", s)
	}
}

func TestStackChildInvariant(t *testing.T) {
	sp := SpacingChild(geom.LinearFromLength(geom.Pt(3)))
	if !sp.IsSpacing() || sp.Node != nil {
		t.Fatalf("spacing child carries a node: %+v", sp)
	}
	ct := ContentChild(EmptyBlock{}, geom.AlignEnd)
	if ct.IsSpacing() || ct.Spacing != nil {
		t.Fatalf("content child carries spacing: %+v", ct)
	}
}
