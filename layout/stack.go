package layout

import "mlc/geom"

// StackChild is one entry of a stack: either explicit spacing or a content
// block with the paragraph alignment captured when the stack was built.
// Exactly one of Spacing or Node is non-nil.
type StackChild struct {
	Spacing *geom.Linear // spacing entry
	Node    BlockNode    // content entry
	Align   geom.Align   // alignment captured at construction, content entries only
}

// SpacingChild creates a spacing entry.
func SpacingChild(amount geom.Linear) StackChild {
	return StackChild{Spacing: &amount}
}

// ContentChild creates a content entry with its captured alignment.
func ContentChild(node BlockNode, align geom.Align) StackChild {
	return StackChild{Node: node, Align: align}
}

// IsSpacing reports whether this entry is a spacing entry.
func (c StackChild) IsSpacing() bool { return c.Spacing != nil }

// StackNode stacks children along one axis. Children appear in call order;
// spacing entries are already fully resolved (implicit default spacing has
// been materialized or suppressed by the building directive).
type StackNode struct {
	Dir      geom.Dir
	Children []StackChild
}

func (StackNode) blockNode() {}
