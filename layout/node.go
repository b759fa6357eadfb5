// Package layout defines the node tree that directive evaluation produces.
//
// Trees are built once and handed to the external measurement stage; they
// are never mutated afterwards. Inline content arrives from the evaluator
// as a Node and is lowered into block form against the current style before
// it is stored in any tree.
package layout

import (
	"mlc/geom"
	"mlc/style"
)

// Node is inline document content supplied by the evaluator. ToBlock lowers
// the content into measured-ready block form against the given style; the
// lowering itself is the external engine's concern, this package only
// defines the contract.
type Node interface {
	ToBlock(st *style.Styles) BlockNode
}

// BlockNode is one node of the produced layout tree. The set of block nodes
// is closed: all implementations live in this package.
type BlockNode interface {
	blockNode()
}

// Empty is the canonical empty inline content, used where a body argument
// may be omitted.
type Empty struct{}

func (Empty) ToBlock(*style.Styles) BlockNode { return EmptyBlock{} }

// EmptyBlock is a block with no content and no intrinsic size.
type EmptyBlock struct{}

func (EmptyBlock) blockNode() {}

// BreakKind discriminates the terminal break markers.
type BreakKind uint8

const (
	LineBreak BreakKind = iota
	ParBreak
	PageBreak
)

func (k BreakKind) String() string {
	switch k {
	case LineBreak:
		return "linebreak"
	case ParBreak:
		return "parbreak"
	case PageBreak:
		return "pagebreak"
	}
	return "break"
}

// BreakNode is a terminal leaf marker: start a new line, paragraph or page.
// It has no children and no style interaction.
type BreakNode struct {
	Kind BreakKind
}

func (BreakNode) blockNode()                        {}
func (n BreakNode) ToBlock(*style.Styles) BlockNode { return n }

// SpacingNode inserts spacing along one axis.
type SpacingNode struct {
	Axis   geom.GenAxis
	Amount geom.Linear
}

func (SpacingNode) blockNode()                        {}
func (n SpacingNode) ToBlock(*style.Styles) BlockNode { return n }

// ShapeKind discriminates shape geometry.
type ShapeKind uint8

const (
	Rect ShapeKind = iota
)

func (k ShapeKind) String() string {
	return "rect"
}

// ShapeNode is an inline box, optionally sized, filled and holding a child.
// A nil Width or Height means "size to content".
type ShapeNode struct {
	Kind   ShapeKind
	Width  *geom.Linear
	Height *geom.Linear
	Fill   *geom.Color
	Child  BlockNode
}

func (ShapeNode) blockNode()                        {}
func (n ShapeNode) ToBlock(*style.Styles) BlockNode { return n }

// PadNode pads its child on all four sides.
type PadNode struct {
	Padding geom.Sides[geom.Linear]
	Child   BlockNode
}

func (PadNode) blockNode() {}
