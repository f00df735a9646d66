package transect

import (
	"math"

	"github.com/bridgetgarnier/1Delongation/internal/displacement"
	"github.com/bridgetgarnier/1Delongation/internal/fault"
	"github.com/bridgetgarnier/1Delongation/internal/geom"
)

// Derived is the per-fault geometry computed for a chosen elongation
// azimuth. Any field may be NaN when the fault's configuration is
// degenerate (parallel planes, tied pitches); a NaN heave excludes the
// fault from the summed length increment but never aborts the run.
type Derived struct {
	Fault fault.Fault

	AcuteBedding    float64 // fault strike to bedding strike, (-90,90]
	AcuteScanline   float64 // fault strike to scanline azimuth
	AcuteElongation float64 // fault strike to elongation azimuth

	AdjustedBeddingDip float64 // bedding dip signed by hemisphere

	BeddingPitch  float64 // bedding trace pitch on the fault plane (beta)
	ScanlinePitch float64 // scanline pitch on the fault plane (phi)

	Case             displacement.Case
	TrueDisplacement float64

	ElongationPitch      float64 // elongation direction pitch on the fault plane
	ElongationPlunge     float64 // plunge of that line below horizontal
	ApparentDisplacement float64 // true displacement projected onto it
	Heave                float64 // apparent displacement × cos(plunge)
}

// Result is the heave aggregation over a fault subset.
type Result struct {
	Azimuth  float64   // elongation azimuth the heaves are projected onto
	Faults   []Derived // one entry per input fault, input order
	Heave    float64   // dF: sum of defined heaves
	Excluded int       // faults whose heave is undefined
}

// Process computes each fault's heave along the chosen elongation azimuth
// and sums them. The subset is caller-filtered (the ±25° window around
// the azimuth is an analyst decision); this function takes whatever rows
// it is given. Undefined heaves are excluded from the sum, not zeroed,
// and counted for reporting.
func Process(subset fault.Set, azimuth float64) Result {
	res := Result{
		Azimuth: geom.NormalizeAzimuth(azimuth),
		Faults:  make([]Derived, 0, len(subset)),
	}
	for _, f := range subset {
		d := derive(f, res.Azimuth)
		res.Faults = append(res.Faults, d)
		if math.IsNaN(d.Heave) {
			res.Excluded++
			continue
		}
		res.Heave += d.Heave
	}
	return res
}

// derive runs the full geometric chain for one fault. Each step consumes
// the previous one's output; NaN introduced anywhere flows through to the
// heave untouched.
func derive(f fault.Fault, azimuth float64) Derived {
	d := Derived{Fault: f}

	d.AcuteBedding = geom.AcuteAngle(f.Strike, f.BeddingStrike)
	d.AcuteScanline = geom.AcuteAngle(f.Strike, f.Scanline)
	d.AcuteElongation = geom.AcuteAngle(f.Strike, azimuth)

	d.AdjustedBeddingDip = geom.AdjustedDip(f.Strike, f.BeddingStrike, f.BeddingDip)

	d.BeddingPitch = geom.PitchOnPlane(f.Dip, d.AdjustedBeddingDip, d.AcuteBedding)
	d.ScanlinePitch = geom.PitchOfTrend(f.Dip, d.AcuteScanline)

	d.Case = displacement.Classify(f.LineationPitch, d.BeddingPitch, d.ScanlinePitch)
	d.TrueDisplacement = displacement.True(
		f.LineationPitch, d.BeddingPitch, d.ScanlinePitch, f.Offset)

	d.ElongationPitch = geom.PitchOfTrend(f.Dip, d.AcuteElongation)
	d.ElongationPlunge = geom.Plunge(f.Dip, d.ElongationPitch)
	d.ApparentDisplacement = displacement.Apparent(
		f.LineationPitch, d.BeddingPitch, d.ElongationPitch, d.TrueDisplacement)

	d.Heave = d.ApparentDisplacement * math.Cos(d.ElongationPlunge*math.Pi/180)
	return d
}
