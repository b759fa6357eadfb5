// Package style holds the cascading document style that directive
// evaluation reads and mutates.
//
// The style is ambient for exactly one evaluation pass: the evaluator
// creates one Styles value per document, passes it by reference into every
// directive call, and discards it when the pass ends. It is never attached
// to the produced node tree -- nodes that depend on a style value capture it
// at construction time, since the style may change again afterwards.
package style

import "mlc/geom"

// PageStyle is the page geometry part of the cascade.
//
// Margins are stored per side as optional overrides: a nil side means "use
// the class default", which the downstream layout engine resolves. Setting
// a uniform margin splats the same value into all four sides; individual
// sides can then be overridden independently.
type PageStyle struct {
	Class   PaperClass
	Size    geom.Size
	Margins geom.Sides[*geom.Linear]
}

// TextStyle carries text-level defaults inherited by descendants unless
// overridden. Align is the horizontal alignment of lines.
type TextStyle struct {
	Align geom.Align
}

// ParStyle carries paragraph-level defaults. Align is the vertical
// alignment of paragraph content within its block.
type ParStyle struct {
	Align   geom.Align
	Leading geom.Linear
	Spacing geom.Linear
}

// Styles is the full cascading style for one evaluation pass. Mutations are
// visible to every subsequently evaluated directive; there is exactly one
// writer at a time (evaluation is single-threaded per pass). Callers that
// run several passes concurrently must give each pass its own instance.
type Styles struct {
	Page PageStyle
	Text TextStyle
	Par  ParStyle
}

// Defaults returns the style a fresh evaluation pass starts from: A4 paper,
// class-default margins, start-aligned text and paragraphs.
func Defaults() *Styles {
	a4, _ := PaperByName("a4")
	return &Styles{
		Page: PageStyle{
			Class: a4.Class,
			Size:  a4.Size,
		},
		Text: TextStyle{
			Align: geom.AlignStart,
		},
		Par: ParStyle{
			Align:   geom.AlignStart,
			Leading: geom.LinearFromRelative(geom.Percent(65)),
			Spacing: geom.LinearFromRelative(geom.Percent(55)),
		},
	}
}
