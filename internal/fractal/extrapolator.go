// Package fractal extrapolates the length contribution of faults too
// small to observe directly, from the power-law (fractal) frequency-size
// relationship of the observed catalog (after Marrett & Allmendinger,
// 1992). Heaves are ranked by descending size; the analyst picks the
// rank window lying on the linear portion of the log(heave) vs log(rank)
// plot, and an ordinary-least-squares slope over that window drives the
// extrapolation to sub-observation sizes.
package fractal

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ErrInvalidModel reports a regression slope that is not strictly
// negative: larger faults must be rarer for the power-law extrapolation
// to mean anything, so no corrected estimate is produced.
var ErrInvalidModel = errors.New("frequency-size regression slope is not negative")

// slopeCeiling also rejects slopes so close to zero that the (N/(N+1))^(1/C)
// term is numerically unbounded.
const slopeCeiling = -1e-6

// Sample is one fault's heave, identified by fault number.
type Sample struct {
	ID    int
	Heave float64
}

// Ranked is a sample with its 1-indexed rank by strictly descending
// heave, ties broken by input order.
type Ranked struct {
	Rank int
	Sample
}

// Rank orders samples by descending heave and assigns 1-indexed ranks.
// Undefined (NaN) heaves are dropped before ranking; they carry no size
// information. The sort is stable so tied heaves keep input order.
func Rank(samples []Sample) []Ranked {
	defined := make([]Sample, 0, len(samples))
	for _, s := range samples {
		if !math.IsNaN(s.Heave) {
			defined = append(defined, s)
		}
	}
	sort.SliceStable(defined, func(i, j int) bool {
		return defined[i].Heave > defined[j].Heave
	})
	out := make([]Ranked, len(defined))
	for i, s := range defined {
		out[i] = Ranked{Rank: i + 1, Sample: s}
	}
	return out
}

// Fit is the fitted frequency-size model and its extrapolated correction.
type Fit struct {
	Slope     float64 // C: d log(rank) / d log(heave), strictly negative
	Intercept float64
	N         int     // window size
	Smallest  float64 // hn: smallest heave in the window
	Extension float64 // he: modeled contribution of unobserved small faults
}

// Extrapolate fits log(rank) = intercept + C·log(heave) by ordinary least
// squares over the analyst-chosen contiguous rank window [lo,hi]
// (1-indexed, inclusive) and computes the extrapolated length
// contribution of faults smaller than the window's smallest heave:
//
//	he = hn · (C/(1−C)) · (N+1) · (N/(N+1))^(1/C)
//
// ErrInvalidModel is returned when C ≥ 0 (or indistinguishably close to
// zero): the corrected estimate is then unavailable and the caller must
// report the baseline elongation alone.
func Extrapolate(ranked []Ranked, lo, hi int) (Fit, error) {
	if lo < 1 || hi > len(ranked) || lo >= hi {
		return Fit{}, fmt.Errorf("rank window [%d,%d] invalid for %d ranked faults", lo, hi, len(ranked))
	}
	window := ranked[lo-1 : hi]

	logHeave := make([]float64, len(window))
	logRank := make([]float64, len(window))
	for i, r := range window {
		if r.Heave <= 0 {
			return Fit{}, fmt.Errorf("rank %d: heave %.4g not positive; shrink the window above the bounding faults", r.Rank, r.Heave)
		}
		logHeave[i] = math.Log10(r.Heave)
		logRank[i] = math.Log10(float64(r.Rank))
	}

	intercept, slope := stat.LinearRegression(logHeave, logRank, nil, false)
	fit := Fit{
		Slope:     slope,
		Intercept: intercept,
		N:         len(window),
		Smallest:  window[len(window)-1].Heave,
	}
	if slope > slopeCeiling || math.IsNaN(slope) {
		return fit, fmt.Errorf("%w: C = %.4f", ErrInvalidModel, slope)
	}

	n := float64(fit.N)
	fit.Extension = fit.Smallest * (slope / (1 - slope)) * (n + 1) *
		math.Pow(n/(n+1), 1/slope)
	return fit, nil
}
