package geom

import "fmt"

// SpecAxis is one of the two document axes in layout-specification terms.
type SpecAxis uint8

const (
	Horizontal SpecAxis = iota
	Vertical
)

func (a SpecAxis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// GenAxis is an axis in generic flow terms: inline runs along the reading
// direction, block runs across it.
type GenAxis uint8

const (
	Inline GenAxis = iota
	Block
)

func (a GenAxis) String() string {
	if a == Inline {
		return "inline"
	}
	return "block"
}

// Align describes where content is placed along an axis. Start, Center and
// End are axis-neutral; Left/Right bind to the horizontal axis and
// Top/Bottom to the vertical one.
type Align uint8

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignLeft
	AlignRight
	AlignTop
	AlignBottom
)

// Axis returns the axis this alignment is fixed to, if any.
func (a Align) Axis() (SpecAxis, bool) {
	switch a {
	case AlignLeft, AlignRight:
		return Horizontal, true
	case AlignTop, AlignBottom:
		return Vertical, true
	default:
		return 0, false
	}
}

func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignTop:
		return "top"
	case AlignBottom:
		return "bottom"
	}
	return fmt.Sprintf("align(%d)", uint8(a))
}

// ParseAlign resolves an alignment keyword.
func ParseAlign(s string) (Align, bool) {
	switch s {
	case "start":
		return AlignStart, true
	case "center":
		return AlignCenter, true
	case "end":
		return AlignEnd, true
	case "left":
		return AlignLeft, true
	case "right":
		return AlignRight, true
	case "top":
		return AlignTop, true
	case "bottom":
		return AlignBottom, true
	}
	return 0, false
}

// Dir is a layouting direction along one axis.
type Dir uint8

const (
	LTR Dir = iota // left to right
	RTL            // right to left
	TTB            // top to bottom
	BTT            // bottom to top
)

// Axis returns the axis the direction runs along.
func (d Dir) Axis() SpecAxis {
	if d == LTR || d == RTL {
		return Horizontal
	}
	return Vertical
}

func (d Dir) String() string {
	switch d {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	case TTB:
		return "ttb"
	case BTT:
		return "btt"
	}
	return fmt.Sprintf("dir(%d)", uint8(d))
}

// ParseDir resolves a direction keyword.
func ParseDir(s string) (Dir, bool) {
	switch s {
	case "ltr":
		return LTR, true
	case "rtl":
		return RTL, true
	case "ttb":
		return TTB, true
	case "btt":
		return BTT, true
	}
	return 0, false
}
