package geom

// Size is a width/height pair of absolute lengths.
type Size struct {
	W Length
	H Length
}

// Swapped returns the size with width and height exchanged.
func (s Size) Swapped() Size { return Size{W: s.H, H: s.W} }

func (s Size) String() string {
	return s.W.String() + " x " + s.H.String()
}

// Sides holds one value per box side.
type Sides[T any] struct {
	Left   T
	Top    T
	Right  T
	Bottom T
}

// NewSides assembles a Sides value in left, top, right, bottom order.
func NewSides[T any](left, top, right, bottom T) Sides[T] {
	return Sides[T]{Left: left, Top: top, Right: right, Bottom: bottom}
}

// SplatSides fills all four sides with the same value.
func SplatSides[T any](v T) Sides[T] {
	return Sides[T]{Left: v, Top: v, Right: v, Bottom: v}
}
