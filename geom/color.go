package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an opaque RGB fill color.
type Color struct {
	R, G, B uint8
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// colorKeywords maps the CSS color names we accept to their RGB values.
var colorKeywords = map[string]Color{
	"black":   {0, 0, 0},
	"white":   {255, 255, 255},
	"red":     {255, 0, 0},
	"green":   {0, 128, 0},
	"blue":    {0, 0, 255},
	"gray":    {128, 128, 128},
	"grey":    {128, 128, 128},
	"silver":  {192, 192, 192},
	"maroon":  {128, 0, 0},
	"navy":    {0, 0, 128},
	"teal":    {0, 128, 128},
	"olive":   {128, 128, 0},
	"purple":  {128, 0, 128},
	"fuchsia": {255, 0, 255},
	"magenta": {255, 0, 255},
	"aqua":    {0, 255, 255},
	"cyan":    {0, 255, 255},
	"lime":    {0, 255, 0},
	"yellow":  {255, 255, 0},
	"orange":  {255, 165, 0},
	"brown":   {165, 42, 42},
	"pink":    {255, 192, 203},
}

// ParseColor parses a CSS-style color value.
// Supports: #RGB, #RRGGBB, rgb(r,g,b), and common color keywords.
func ParseColor(s string) (Color, bool) {
	raw := strings.TrimSpace(s)

	if strings.HasPrefix(raw, "#") {
		hex := raw[1:]
		switch len(hex) {
		case 3:
			r, err1 := strconv.ParseUint(string(hex[0])+string(hex[0]), 16, 8)
			g, err2 := strconv.ParseUint(string(hex[1])+string(hex[1]), 16, 8)
			b, err3 := strconv.ParseUint(string(hex[2])+string(hex[2]), 16, 8)
			if err1 != nil || err2 != nil || err3 != nil {
				return Color{}, false
			}
			return Color{uint8(r), uint8(g), uint8(b)}, true
		case 6:
			r, err1 := strconv.ParseUint(hex[0:2], 16, 8)
			g, err2 := strconv.ParseUint(hex[2:4], 16, 8)
			b, err3 := strconv.ParseUint(hex[4:6], 16, 8)
			if err1 != nil || err2 != nil || err3 != nil {
				return Color{}, false
			}
			return Color{uint8(r), uint8(g), uint8(b)}, true
		}
		return Color{}, false
	}

	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")") {
		inner := strings.TrimSuffix(strings.TrimPrefix(lower, "rgb("), ")")
		parts := strings.Split(inner, ",")
		if len(parts) != 3 {
			return Color{}, false
		}
		var comps [3]uint8
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || v < 0 || v > 255 {
				return Color{}, false
			}
			comps[i] = uint8(v)
		}
		return Color{comps[0], comps[1], comps[2]}, true
	}

	c, ok := colorKeywords[lower]
	return c, ok
}
