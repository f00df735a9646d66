// Package transect orchestrates the elongation pipeline over a fault
// catalog: the maximum-elongation direction search, the per-fault heave
// computation, and the projection of summed heave into a percent
// elongation of the transect.
package transect

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/bridgetgarnier/1Delongation/internal/fault"
)

// Sweep is the direction-search curve over candidate azimuths 0..180° at
// one-degree steps. Scores[s] is the catalog-average apparent-offset
// ratio |cos(dipDirection − s)| at azimuth s.
type Sweep struct {
	Scores    []float64
	Best      int     // lowest azimuth achieving the maximum score
	BestScore float64 // Scores[Best]
}

// FindDirection sweeps every integer azimuth in [0,180] and scores each
// by the average apparent-offset ratio across the catalog. The sweep is
// exhaustive rather than hill-climbing: the score is not unimodal for
// arbitrary dip-direction distributions. Ties resolve to the lowest
// azimuth so repeated runs are deterministic.
func FindDirection(set fault.Set) Sweep {
	sw := Sweep{Scores: make([]float64, 181)}
	ratios := make([]float64, len(set))
	for s := 0; s <= 180; s++ {
		for i, f := range set {
			ratios[i] = math.Abs(math.Cos((f.DipDirection - float64(s)) * math.Pi / 180))
		}
		sw.Scores[s] = stat.Mean(ratios, nil)
	}
	sw.Best, sw.BestScore = 0, sw.Scores[0]
	for s, v := range sw.Scores {
		if v > sw.BestScore {
			sw.Best, sw.BestScore = s, v
		}
	}
	return sw
}

// FilterByDirection returns the faults whose dip direction lies within
// ±window degrees of the elongation azimuth, directions compared mod 180
// since a strike direction is meaningful either way along. This is a
// convenience for the analyst's row filter; an explicit id list always
// takes precedence over it.
func FilterByDirection(set fault.Set, azimuth, window float64) fault.Set {
	var out fault.Set
	for _, f := range set {
		d := math.Mod(f.DipDirection-azimuth, 180)
		if d > 90 {
			d -= 180
		}
		if d < -90 {
			d += 180
		}
		if math.Abs(d) <= window {
			out = append(out, f)
		}
	}
	return out
}
