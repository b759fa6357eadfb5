package value

import (
	"fmt"

	"mlc/geom"
	"mlc/layout"
)

// Base casting tables. Directive-specific target types register their own
// rules next to the directive that consumes them.

func init() {
	RegisterCaster[bool](Rule{
		Kinds: []Kind{KindBool},
		Conv:  func(v Value, _ func(error)) (any, error) { return v.b, nil },
	})

	RegisterCaster[int64](Rule{
		Kinds: []Kind{KindInt},
		Conv:  func(v Value, _ func(error)) (any, error) { return v.i, nil },
	})

	RegisterCaster[float64](
		Rule{
			Kinds: []Kind{KindFloat},
			Conv:  func(v Value, _ func(error)) (any, error) { return v.f, nil },
		},
		Rule{
			Kinds: []Kind{KindInt},
			Conv:  func(v Value, _ func(error)) (any, error) { return float64(v.i), nil },
		},
	)

	RegisterCaster[string](Rule{
		Kinds: []Kind{KindStr},
		Conv:  func(v Value, _ func(error)) (any, error) { return v.str, nil },
	})

	RegisterCaster[geom.Length](Rule{
		Kinds: []Kind{KindLength},
		Conv:  func(v Value, _ func(error)) (any, error) { return v.len, nil },
	})

	RegisterCaster[geom.Relative](Rule{
		Kinds: []Kind{KindRelative},
		Conv:  func(v Value, _ func(error)) (any, error) { return v.rel, nil },
	})

	// A bare length or percentage is also a valid linear value.
	RegisterCaster[geom.Linear](
		Rule{
			Kinds: []Kind{KindLength},
			Desc:  "linear",
			Conv: func(v Value, _ func(error)) (any, error) {
				return geom.LinearFromLength(v.len), nil
			},
		},
		Rule{
			Kinds: []Kind{KindRelative},
			Desc:  "linear",
			Conv: func(v Value, _ func(error)) (any, error) {
				return geom.LinearFromRelative(v.rel), nil
			},
		},
		Rule{
			Kinds: []Kind{KindLinear},
			Desc:  "linear",
			Conv:  func(v Value, _ func(error)) (any, error) { return v.lin, nil },
		},
	)

	RegisterCaster[geom.Fractional](Rule{
		Kinds: []Kind{KindFractional},
		Conv:  func(v Value, _ func(error)) (any, error) { return v.frac, nil },
	})

	RegisterCaster[geom.Align](Rule{
		Kinds: []Kind{KindStr},
		Desc:  "alignment",
		Conv: func(v Value, _ func(error)) (any, error) {
			a, ok := geom.ParseAlign(v.str)
			if !ok {
				return nil, fmt.Errorf("unknown alignment %q", v.str)
			}
			return a, nil
		},
	})

	RegisterCaster[geom.Dir](Rule{
		Kinds: []Kind{KindStr},
		Desc:  "direction",
		Conv: func(v Value, _ func(error)) (any, error) {
			d, ok := geom.ParseDir(v.str)
			if !ok {
				return nil, fmt.Errorf("unknown direction %q", v.str)
			}
			return d, nil
		},
	})

	RegisterCaster[geom.Color](Rule{
		Kinds: []Kind{KindStr},
		Desc:  "color",
		Conv: func(v Value, _ func(error)) (any, error) {
			c, ok := geom.ParseColor(v.str)
			if !ok {
				return nil, fmt.Errorf("invalid color %q", v.str)
			}
			return c, nil
		},
	})

	RegisterCaster[layout.Node](Rule{
		Kinds: []Kind{KindNode},
		Desc:  "template",
		Conv:  func(v Value, _ func(error)) (any, error) { return v.node, nil },
	})

	RegisterCaster[layout.TrackSizing](Rule{
		Kinds: []Kind{KindAuto, KindLength, KindRelative, KindLinear, KindFractional},
		Desc:  "auto, linear, or fractional",
		Conv: func(v Value, _ func(error)) (any, error) {
			return scalarTrack(v)
		},
	})

	RegisterCaster[layout.TrackList](
		Rule{
			Kinds: []Kind{KindInt},
			Desc:  "integer",
			Conv: func(v Value, _ func(error)) (any, error) {
				// A count expands into that many auto tracks; negative
				// counts clamp to zero tracks rather than failing.
				n := v.i
				if n < 0 {
					n = 0
				}
				tracks := make(layout.TrackList, n)
				for i := range tracks {
					tracks[i] = layout.AutoTrack()
				}
				return tracks, nil
			},
		},
		Rule{
			Kinds: []Kind{KindAuto, KindLength, KindRelative, KindLinear, KindFractional, KindArray},
			Desc:  "(auto, linear, fractional, or array thereof)",
			Conv: func(v Value, warn func(error)) (any, error) {
				if v.kind != KindArray {
					t, err := scalarTrack(v)
					if err != nil {
						return nil, err
					}
					return layout.TrackList{t}, nil
				}
				// Element-wise, lenient: uncastable elements are dropped
				// for compatibility, but each drop is reported.
				tracks := make(layout.TrackList, 0, len(v.arr))
				for _, item := range v.arr {
					t, err := CastWarn[layout.TrackSizing](item, warn)
					if err != nil {
						if warn != nil {
							warn(err)
						}
						continue
					}
					tracks = append(tracks, t)
				}
				return tracks, nil
			},
		},
	)
}

func scalarTrack(v Value) (layout.TrackSizing, error) {
	switch v.kind {
	case KindAuto:
		return layout.AutoTrack(), nil
	case KindLength:
		return layout.LinearTrack(geom.LinearFromLength(v.len)), nil
	case KindRelative:
		return layout.LinearTrack(geom.LinearFromRelative(v.rel)), nil
	case KindLinear:
		return layout.LinearTrack(v.lin), nil
	case KindFractional:
		return layout.FractionalTrack(v.frac), nil
	}
	return layout.TrackSizing{}, fmt.Errorf("not a track sizing: %s", v.kind)
}
