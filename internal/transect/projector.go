package transect

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateProjection reports that the added fault length is at or
// near the projected transect length, leaving the elongation undefined.
var ErrDegenerateProjection = errors.New("elongation undefined: added length approaches transect length")

// ProjectedLength converts a straight-line transect's half-length and two
// triangle-closure angle pairs (read off the analyst's sketch, degrees)
// into the transect length measured along the elongation direction:
//
//	Lf = half·sin(Aa)/sin(Ab) + half·sin(Ba)/sin(Bb)
func ProjectedLength(halfLength, aa, ab, ba, bb float64) float64 {
	sin := func(deg float64) float64 { return math.Sin(deg * math.Pi / 180) }
	return halfLength*sin(aa)/sin(ab) + halfLength*sin(ba)/sin(bb)
}

// PercentElongation turns a projected transect length Lf and a summed
// heave dF into a percent elongation: (Lf/(Lf−dF) − 1)·100. When Lf−dF
// is at or near zero the input is degenerate and ErrDegenerateProjection
// is returned instead of a silent infinity.
func PercentElongation(lf, df float64) (float64, error) {
	if math.IsNaN(lf) || math.IsNaN(df) {
		return 0, fmt.Errorf("%w: undefined length inputs", ErrDegenerateProjection)
	}
	den := lf - df
	if math.Abs(den) < 1e-9*math.Max(1, math.Abs(lf)) {
		return 0, ErrDegenerateProjection
	}
	return (lf/den - 1) * 100, nil
}
