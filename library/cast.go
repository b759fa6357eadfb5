package library

import (
	"mlc/geom"
	"mlc/layout"
	"mlc/value"
)

// stackInput is one positional argument of a stack call: either an explicit
// spacing amount or a content node. Exactly one field is set.
type stackInput struct {
	spacing *geom.Linear
	node    layout.Node
}

func init() {
	value.RegisterCaster[stackInput](
		value.Rule{
			Kinds: []value.Kind{value.KindLength, value.KindRelative, value.KindLinear},
			Desc:  "linear",
			Conv: func(v value.Value, warn func(error)) (any, error) {
				lin, err := value.CastWarn[geom.Linear](v, warn)
				if err != nil {
					return nil, err
				}
				return stackInput{spacing: &lin}, nil
			},
		},
		value.Rule{
			Kinds: []value.Kind{value.KindNode},
			Desc:  "template",
			Conv: func(v value.Value, warn func(error)) (any, error) {
				node, err := value.CastWarn[layout.Node](v, warn)
				if err != nil {
					return nil, err
				}
				return stackInput{node: node}, nil
			},
		},
	)
}
