package layout

import (
	"fmt"

	"github.com/beevik/etree"
)

// DumpXML renders a built layout tree as an XML document for inspection.
// The dump is purely diagnostic: it is not a serialization format and makes
// no round-trip promises.
func DumpXML(n BlockNode) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0"`)
	root := doc.CreateElement("layout")
	dumpNode(root, n)
	doc.Indent(2)
	return doc
}

// DumpString is DumpXML flattened to text.
func DumpString(n BlockNode) string {
	s, err := DumpXML(n).WriteToString()
	if err != nil {
		// strings.Builder does not fail; keep the signature convenient.
		return ""
	}
	return s
}

func dumpNode(parent *etree.Element, n BlockNode) {
	switch t := n.(type) {
	case nil:
		parent.CreateElement("nil")

	case EmptyBlock:
		parent.CreateElement("empty")

	case BreakNode:
		parent.CreateElement(t.Kind.String())

	case SpacingNode:
		el := parent.CreateElement("spacing")
		el.CreateAttr("axis", t.Axis.String())
		el.CreateAttr("amount", t.Amount.String())

	case ShapeNode:
		el := parent.CreateElement("shape")
		el.CreateAttr("kind", t.Kind.String())
		if t.Width != nil {
			el.CreateAttr("width", t.Width.String())
		}
		if t.Height != nil {
			el.CreateAttr("height", t.Height.String())
		}
		if t.Fill != nil {
			el.CreateAttr("fill", t.Fill.String())
		}
		if t.Child != nil {
			dumpNode(el, t.Child)
		}

	case PadNode:
		el := parent.CreateElement("pad")
		el.CreateAttr("left", t.Padding.Left.String())
		el.CreateAttr("top", t.Padding.Top.String())
		el.CreateAttr("right", t.Padding.Right.String())
		el.CreateAttr("bottom", t.Padding.Bottom.String())
		dumpNode(el, t.Child)

	case StackNode:
		el := parent.CreateElement("stack")
		el.CreateAttr("dir", t.Dir.String())
		for _, child := range t.Children {
			if child.IsSpacing() {
				sp := el.CreateElement("spacing")
				sp.CreateAttr("amount", child.Spacing.String())
				continue
			}
			item := el.CreateElement("child")
			item.CreateAttr("align", child.Align.String())
			dumpNode(item, child.Node)
		}

	case GridNode:
		el := parent.CreateElement("grid")
		el.CreateAttr("columns", trackListString(t.Tracks.Columns))
		el.CreateAttr("rows", trackListString(t.Tracks.Rows))
		el.CreateAttr("column-gutter", trackListString(t.Gutter.Columns))
		el.CreateAttr("row-gutter", trackListString(t.Gutter.Rows))
		for _, child := range t.Children {
			dumpNode(el.CreateElement("cell"), child)
		}

	default:
		parent.CreateElement(fmt.Sprintf("unknown-%T", n))
	}
}

func trackListString(tracks TrackList) string {
	if len(tracks) == 0 {
		return ""
	}
	s := ""
	for i, t := range tracks {
		if i > 0 {
			s += ", "
		}
		s += t.String()
	}
	return s
}
