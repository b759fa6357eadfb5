package geom

import (
	"fmt"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Dimension-literal parsing.
//
// The embedded paper preset table carries trim sizes as CSS-style literals
// ("210mm", "8.5in"); linear and fractional literals ("50%", "1fr",
// "10pt + 5%") take the same path. The literals are scanned with a CSS
// tokenizer, so the accepted syntax stays in sync with what a stylesheet
// would accept.

// splitDimension separates the numeric part of a dimension token from its
// unit ("2.5cm" -> 2.5, "cm").
func splitDimension(tok []byte) (float64, string, error) {
	s := string(tok)
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if (c >= '0' && c <= '9') || c == '.' {
			break
		}
		i--
	}
	num, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid dimension %q: %w", s, err)
	}
	return num, strings.ToLower(s[i:]), nil
}

// ParseLength parses an absolute length literal: "12pt", "2.5cm", "10mm",
// "1in". A plain "0" is accepted as the zero length.
func ParseLength(s string) (Length, error) {
	lin, err := ParseLinear(s)
	if err != nil {
		return Length{}, err
	}
	if !lin.Rel.IsZero() {
		return Length{}, fmt.Errorf("expected absolute length, got %q", s)
	}
	return lin.Abs, nil
}

// ParseFractional parses a fractional weight literal like "1fr" or "2.5fr".
func ParseFractional(s string) (Fractional, error) {
	l := css.NewLexer(parse.NewInputString(s))
	var frac Fractional
	seen := false
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if !seen {
				return 0, fmt.Errorf("invalid fractional value %q", s)
			}
			return frac, nil
		case css.WhitespaceToken:
			continue
		case css.DimensionToken:
			num, unit, err := splitDimension(data)
			if err != nil || unit != "fr" || seen {
				return 0, fmt.Errorf("invalid fractional value %q", s)
			}
			frac = Fractional(num)
			seen = true
		default:
			return 0, fmt.Errorf("invalid fractional value %q", s)
		}
	}
}

// ParseLinear parses a linear literal: an absolute length, a percentage, or
// a sum/difference of the two ("10pt + 5%"). A plain "0" is the zero value.
func ParseLinear(s string) (Linear, error) {
	l := css.NewLexer(parse.NewInputString(s))

	var lin Linear
	sign := 1.0
	terms := 0
	wantTerm := true

	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			// End of input. EOF with no terms means an empty literal.
			if terms == 0 || wantTerm {
				return Linear{}, fmt.Errorf("invalid linear value %q", s)
			}
			return lin, nil

		case css.WhitespaceToken:
			continue

		case css.DimensionToken:
			if !wantTerm {
				return Linear{}, fmt.Errorf("invalid linear value %q", s)
			}
			num, unit, err := splitDimension(data)
			if err != nil {
				return Linear{}, err
			}
			var abs Length
			switch unit {
			case "pt":
				abs = Pt(num)
			case "mm":
				abs = Mm(num)
			case "cm":
				abs = Cm(num)
			case "in":
				abs = In(num)
			default:
				return Linear{}, fmt.Errorf("unsupported unit %q in %q", unit, s)
			}
			lin.Abs = lin.Abs.Add(abs.Scale(sign))
			terms++
			wantTerm = false

		case css.PercentageToken:
			if !wantTerm {
				return Linear{}, fmt.Errorf("invalid linear value %q", s)
			}
			num, _, err := splitDimension(data)
			if err != nil {
				return Linear{}, err
			}
			lin.Rel += Relative(sign) * Percent(num)
			terms++
			wantTerm = false

		case css.NumberToken:
			// Only a literal zero may appear without a unit.
			num, err := strconv.ParseFloat(string(data), 64)
			if err != nil || num != 0 || !wantTerm {
				return Linear{}, fmt.Errorf("invalid linear value %q", s)
			}
			terms++
			wantTerm = false

		case css.DelimToken:
			switch string(data) {
			case "+":
				sign = 1.0
			case "-":
				sign = -1.0
			default:
				return Linear{}, fmt.Errorf("invalid linear value %q", s)
			}
			if wantTerm {
				return Linear{}, fmt.Errorf("invalid linear value %q", s)
			}
			wantTerm = true

		default:
			return Linear{}, fmt.Errorf("invalid linear value %q", s)
		}
	}
}
