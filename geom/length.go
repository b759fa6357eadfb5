package geom

import (
	"fmt"
	"math"
)

// Unit Conversion Constants
//
// Lengths are stored internally in typographic points (1/72 inch) so that
// values coming from different source units compare and add without loss
// surprises. The ratios below are exact by definition.
const (
	// PtPerIn is the number of points in an inch.
	PtPerIn = 72.0

	// PtPerCm is the number of points in a centimeter (72 / 2.54).
	PtPerCm = PtPerIn / 2.54

	// PtPerMm is the number of points in a millimeter.
	PtPerMm = PtPerCm / 10.0
)

// Length is an absolute distance, stored in points.
type Length struct {
	pts float64
}

// Pt creates a length from a value in points.
func Pt(v float64) Length { return Length{pts: v} }

// Mm creates a length from a value in millimeters.
func Mm(v float64) Length { return Length{pts: v * PtPerMm} }

// Cm creates a length from a value in centimeters.
func Cm(v float64) Length { return Length{pts: v * PtPerCm} }

// In creates a length from a value in inches.
func In(v float64) Length { return Length{pts: v * PtPerIn} }

// Pts returns the length in points.
func (l Length) Pts() float64 { return l.pts }

// Mms returns the length in millimeters.
func (l Length) Mms() float64 { return l.pts / PtPerMm }

// Add returns the sum of two lengths.
func (l Length) Add(other Length) Length { return Length{pts: l.pts + other.pts} }

// Scale returns the length multiplied by a factor.
func (l Length) Scale(f float64) Length { return Length{pts: l.pts * f} }

// IsZero returns true for a zero distance.
func (l Length) IsZero() bool { return l.pts == 0 }

// ApproxEq compares two lengths with a small tolerance to absorb
// unit-conversion rounding.
func (l Length) ApproxEq(other Length) bool {
	return math.Abs(l.pts-other.pts) < 1e-6
}

func (l Length) String() string {
	return fmt.Sprintf("%gpt", l.pts)
}

// Relative is a distance expressed as a ratio of some reference extent.
// The value is stored as a fraction, so 0.5 means 50%.
type Relative float64

// Percent creates a relative value from a percentage (50 -> 50%).
func Percent(v float64) Relative { return Relative(v / 100) }

// Percentage returns the value scaled back to percent.
func (r Relative) Percentage() float64 { return float64(r) * 100 }

// Resolve applies the ratio to a reference length.
func (r Relative) Resolve(base Length) Length {
	return Length{pts: float64(r) * base.pts}
}

// IsZero returns true for a zero ratio.
func (r Relative) IsZero() bool { return r == 0 }

func (r Relative) String() string {
	return fmt.Sprintf("%g%%", r.Percentage())
}

// Linear is the combination of an absolute length and a relative share,
// i.e. "a + b%". It is the common currency for sizes, margins and spacing:
// a bare length and a bare percentage are both valid linear values.
type Linear struct {
	Abs Length
	Rel Relative
}

// LinearFromLength widens an absolute length into a linear value.
func LinearFromLength(l Length) Linear { return Linear{Abs: l} }

// LinearFromRelative widens a relative share into a linear value.
func LinearFromRelative(r Relative) Linear { return Linear{Rel: r} }

// Resolve computes the final length against a reference extent.
func (l Linear) Resolve(base Length) Length {
	return l.Abs.Add(l.Rel.Resolve(base))
}

// IsZero returns true when both components are zero.
func (l Linear) IsZero() bool { return l.Abs.IsZero() && l.Rel.IsZero() }

func (l Linear) String() string {
	switch {
	case l.Rel.IsZero():
		return l.Abs.String()
	case l.Abs.IsZero():
		return l.Rel.String()
	default:
		return fmt.Sprintf("%s + %s", l.Abs, l.Rel)
	}
}

// Fractional is a proportional weight ("fr unit") used to distribute
// leftover space among grid tracks.
type Fractional float64

// Fr creates a fractional weight.
func Fr(v float64) Fractional { return Fractional(v) }

// Share returns this weight's share of the remaining space, given the total
// of all weights competing for it. A non-positive total yields zero.
func (f Fractional) Share(total Fractional, remaining Length) Length {
	if total <= 0 {
		return Length{}
	}
	return remaining.Scale(float64(f) / float64(total))
}

func (f Fractional) String() string {
	return fmt.Sprintf("%gfr", float64(f))
}
