package library

import (
	"slices"

	"mlc/args"
	"mlc/geom"
	"mlc/layout"
	"mlc/style"
	"mlc/value"
)

// Page configures the page style for all subsequently evaluated content.
//
// Overrides apply in a fixed order regardless of argument order in the
// call: paper preset, then explicit width/height (marking the class
// custom), then the uniform margin, then individual sides, and finally flip
// swaps the fully-resolved size.
func Page(ctx *Context, a *args.Args) (value.Value, error) {
	var paper *style.Paper
	pv, ok := a.PopNamed("paper")
	if !ok {
		pv, ok = a.PopPos(func(v value.Value) bool { return v.Kind() == value.KindStr })
	}
	if ok {
		name, err := value.CastWarn[string](pv, a.Warn)
		if err != nil {
			return value.None(), err
		}
		p, found := style.PaperByName(name)
		if !found {
			return value.None(), value.Errorf(pv.Span(), "invalid paper name")
		}
		paper = &p
	}

	width, err := args.Named[geom.Length](a, "width")
	if err != nil {
		return value.None(), err
	}
	height, err := args.Named[geom.Length](a, "height")
	if err != nil {
		return value.None(), err
	}
	margins, err := args.Named[geom.Linear](a, "margins")
	if err != nil {
		return value.None(), err
	}
	left, err := args.Named[geom.Linear](a, "left")
	if err != nil {
		return value.None(), err
	}
	top, err := args.Named[geom.Linear](a, "top")
	if err != nil {
		return value.None(), err
	}
	right, err := args.Named[geom.Linear](a, "right")
	if err != nil {
		return value.None(), err
	}
	bottom, err := args.Named[geom.Linear](a, "bottom")
	if err != nil {
		return value.None(), err
	}
	flip, err := args.Named[bool](a, "flip")
	if err != nil {
		return value.None(), err
	}

	page := &ctx.Styles.Page

	if paper != nil {
		page.Class = paper.Class
		page.Size = paper.Size
	}

	if width != nil {
		page.Class = style.ClassCustom
		page.Size.W = *width
	}

	if height != nil {
		page.Class = style.ClassCustom
		page.Size.H = *height
	}

	if margins != nil {
		page.Margins = geom.SplatSides(margins)
	}

	if left != nil {
		page.Margins.Left = left
	}

	if top != nil {
		page.Margins.Top = top
	}

	if right != nil {
		page.Margins.Right = right
	}

	if bottom != nil {
		page.Margins.Bottom = bottom
	}

	if flip != nil && *flip {
		page.Size = page.Size.Swapped()
	}

	return value.None(), nil
}

// Align configures the alignment along the layouting axes.
//
// Up to two positional alignments are resolved against the horizontal and
// vertical slots; named horizontal/vertical pre-fill a slot and therefore
// win. A positional value whose fixed axis conflicts with an already-filled
// slot is dropped.
func Align(ctx *Context, a *args.Args) (value.Value, error) {
	first := args.Eat[geom.Align](a)
	second := args.Eat[geom.Align](a)

	horizontal, err := args.Named[geom.Align](a, "horizontal")
	if err != nil {
		return value.None(), err
	}
	vertical, err := args.Named[geom.Align](a, "vertical")
	if err != nil {
		return value.None(), err
	}

	for _, v := range []*geom.Align{first, second} {
		if v == nil {
			continue
		}
		axis, fixed := v.Axis()
		switch {
		case (!fixed || axis == geom.Horizontal) && horizontal == nil:
			horizontal = v
		case (!fixed || axis == geom.Vertical) && vertical == nil:
			vertical = v
		}
	}

	if horizontal != nil {
		ctx.Styles.Text.Align = *horizontal
	}

	if vertical != nil {
		ctx.Styles.Par.Align = *vertical
	}

	return value.None(), nil
}

// Linebreak starts a new line.
func Linebreak(_ *Context, _ *args.Args) (value.Value, error) {
	return value.NodeValue(layout.BreakNode{Kind: layout.LineBreak}), nil
}

// Parbreak starts a new paragraph.
func Parbreak(_ *Context, _ *args.Args) (value.Value, error) {
	return value.NodeValue(layout.BreakNode{Kind: layout.ParBreak}), nil
}

// Pagebreak starts a new page.
func Pagebreak(_ *Context, _ *args.Args) (value.Value, error) {
	return value.NodeValue(layout.BreakNode{Kind: layout.PageBreak}), nil
}

// H inserts horizontal (inline-axis) spacing.
func H(_ *Context, a *args.Args) (value.Value, error) {
	spacing, err := args.Expect[geom.Linear](a, "spacing")
	if err != nil {
		return value.None(), err
	}
	return value.NodeValue(layout.SpacingNode{Axis: geom.Inline, Amount: spacing}), nil
}

// V inserts vertical (block-axis) spacing.
func V(_ *Context, a *args.Args) (value.Value, error) {
	spacing, err := args.Expect[geom.Linear](a, "spacing")
	if err != nil {
		return value.None(), err
	}
	return value.NodeValue(layout.SpacingNode{Axis: geom.Block, Amount: spacing}), nil
}

// Box places content in a rectangular box. The body defaults to empty
// content and is lowered against the current style before embedding.
func Box(ctx *Context, a *args.Args) (value.Value, error) {
	width, err := args.Named[geom.Linear](a, "width")
	if err != nil {
		return value.None(), err
	}
	height, err := args.Named[geom.Linear](a, "height")
	if err != nil {
		return value.None(), err
	}
	fill, err := args.Named[geom.Color](a, "fill")
	if err != nil {
		return value.None(), err
	}

	var body layout.Node = layout.Empty{}
	if b := args.Eat[layout.Node](a); b != nil {
		body = *b
	}

	return value.BlockValue(layout.ShapeNode{
		Kind:   layout.Rect,
		Width:  width,
		Height: height,
		Fill:   fill,
		Child:  body.ToBlock(ctx.Styles),
	}), nil
}

// Block places content in a block of its own.
func Block(ctx *Context, a *args.Args) (value.Value, error) {
	body, err := args.Expect[layout.Node](a, "body")
	if err != nil {
		return value.None(), err
	}
	return value.BlockValue(body.ToBlock(ctx.Styles)), nil
}

// Pad pads content at the sides. Each side defaults to the uniform
// positional value, or zero if neither is given.
func Pad(ctx *Context, a *args.Args) (value.Value, error) {
	all := args.Eat[geom.Linear](a)
	left, err := args.Named[geom.Linear](a, "left")
	if err != nil {
		return value.None(), err
	}
	top, err := args.Named[geom.Linear](a, "top")
	if err != nil {
		return value.None(), err
	}
	right, err := args.Named[geom.Linear](a, "right")
	if err != nil {
		return value.None(), err
	}
	bottom, err := args.Named[geom.Linear](a, "bottom")
	if err != nil {
		return value.None(), err
	}
	body, err := args.Expect[layout.Node](a, "body")
	if err != nil {
		return value.None(), err
	}

	padding := geom.NewSides(
		sideOr(left, all),
		sideOr(top, all),
		sideOr(right, all),
		sideOr(bottom, all),
	)

	return value.BlockValue(layout.PadNode{
		Padding: padding,
		Child:   body.ToBlock(ctx.Styles),
	}), nil
}

// sideOr picks the side-specific value over the uniform one, defaulting to
// the zero linear.
func sideOr(side, all *geom.Linear) geom.Linear {
	if side != nil {
		return *side
	}
	if all != nil {
		return *all
	}
	return geom.Linear{}
}

// Stack stacks children along an axis, interleaving explicit spacing with
// the configured default.
//
// The pass keeps one pending-spacer slot: after a content child the default
// spacing becomes pending and is materialized just before the next content
// child, unless an explicit spacer arrives first and clears it. Spacing is
// therefore never inserted before the first child, after the last, or twice
// in a row.
func Stack(ctx *Context, a *args.Args) (value.Value, error) {
	dir := geom.TTB
	if d, err := args.Named[geom.Dir](a, "dir"); err != nil {
		return value.None(), err
	} else if d != nil {
		dir = *d
	}

	spacing, err := args.Named[geom.Linear](a, "spacing")
	if err != nil {
		return value.None(), err
	}

	inputs, err := args.All[stackInput](a)
	if err != nil {
		return value.None(), err
	}

	var children []layout.StackChild
	var delayed *geom.Linear

	for _, in := range inputs {
		if in.spacing != nil {
			children = append(children, layout.SpacingChild(*in.spacing))
			delayed = nil
			continue
		}

		if delayed != nil {
			children = append(children, layout.SpacingChild(*delayed))
		}

		node := in.node.ToBlock(ctx.Styles)
		children = append(children, layout.ContentChild(node, ctx.Styles.Par.Align))
		delayed = spacing
	}

	return value.BlockValue(layout.StackNode{Dir: dir, Children: children}), nil
}

// Grid arranges children into a grid. The track and gutter specifications
// are normalized here; placing the flat child list into the 2-D grid is the
// external layout stage's job.
func Grid(ctx *Context, a *args.Args) (value.Value, error) {
	columns, err := args.Named[layout.TrackList](a, "columns")
	if err != nil {
		return value.None(), err
	}
	rows, err := args.Named[layout.TrackList](a, "rows")
	if err != nil {
		return value.None(), err
	}
	tracks := layout.Tracks{
		Columns: trackListOr(columns),
		Rows:    trackListOr(rows),
	}

	baseGutter, err := args.Named[layout.TrackList](a, "gutter")
	if err != nil {
		return value.None(), err
	}
	columnGutter, err := args.Named[layout.TrackList](a, "column-gutter")
	if err != nil {
		return value.None(), err
	}
	rowGutter, err := args.Named[layout.TrackList](a, "row-gutter")
	if err != nil {
		return value.None(), err
	}
	gutter := layout.Tracks{
		Columns: trackListOr(firstTrackList(columnGutter, baseGutter)),
		// Cloned so the axes never share a backing array when both fall
		// back to the base gutter.
		Rows: slices.Clone(trackListOr(firstTrackList(rowGutter, baseGutter))),
	}

	bodies, err := args.All[layout.Node](a)
	if err != nil {
		return value.None(), err
	}
	children := make([]layout.BlockNode, 0, len(bodies))
	for _, body := range bodies {
		children = append(children, body.ToBlock(ctx.Styles))
	}

	return value.BlockValue(layout.GridNode{
		Tracks:   tracks,
		Gutter:   gutter,
		Children: children,
	}), nil
}

func trackListOr(p *layout.TrackList) layout.TrackList {
	if p == nil {
		return nil
	}
	return *p
}

func firstTrackList(lists ...*layout.TrackList) *layout.TrackList {
	for _, l := range lists {
		if l != nil {
			return l
		}
	}
	return nil
}
