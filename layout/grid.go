package layout

import "mlc/geom"

// TrackKind discriminates the sizing policy of one grid track.
type TrackKind uint8

const (
	// TrackAuto sizes the track to its content.
	TrackAuto TrackKind = iota
	// TrackLinear gives the track a fixed linear size.
	TrackLinear
	// TrackFractional assigns the track a share of the leftover space.
	TrackFractional
)

// TrackSizing is the sizing policy for one grid column or row.
type TrackSizing struct {
	Kind   TrackKind
	Linear geom.Linear     // TrackLinear only
	Frac   geom.Fractional // TrackFractional only
}

// AutoTrack returns an auto-sized track.
func AutoTrack() TrackSizing { return TrackSizing{Kind: TrackAuto} }

// LinearTrack returns a fixed-size track.
func LinearTrack(l geom.Linear) TrackSizing {
	return TrackSizing{Kind: TrackLinear, Linear: l}
}

// FractionalTrack returns a leftover-share track.
func FractionalTrack(f geom.Fractional) TrackSizing {
	return TrackSizing{Kind: TrackFractional, Frac: f}
}

func (t TrackSizing) String() string {
	switch t.Kind {
	case TrackLinear:
		return t.Linear.String()
	case TrackFractional:
		return t.Frac.String()
	default:
		return "auto"
	}
}

// TrackList is an ordered list of track sizings, the normalized form of a
// column/row or gutter specification.
type TrackList []TrackSizing

// Tracks pairs the column and row specification of one grid axis set.
type Tracks struct {
	Columns TrackList
	Rows    TrackList
}

// GridNode arranges children into a grid. Children are stored flat in call
// order; their placement into the 2-D grid (row-major fill, wrapping at the
// column count) is the external layout stage's responsibility.
type GridNode struct {
	Tracks   Tracks
	Gutter   Tracks
	Children []BlockNode
}

func (GridNode) blockNode() {}
