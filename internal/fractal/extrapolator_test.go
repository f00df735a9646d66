package fractal

import (
	"errors"
	"math"
	"testing"
)

func TestRank(t *testing.T) {
	samples := []Sample{
		{ID: 1, Heave: 2.5},
		{ID: 2, Heave: 7.0},
		{ID: 3, Heave: math.NaN()}, // undefined geometry, dropped
		{ID: 4, Heave: 7.0},        // ties keep input order
		{ID: 5, Heave: 0},
	}
	ranked := Rank(samples)
	if len(ranked) != 4 {
		t.Fatalf("len = %d, want 4 (NaN dropped)", len(ranked))
	}
	wantIDs := []int{2, 4, 1, 5}
	for i, r := range ranked {
		if r.Rank != i+1 {
			t.Errorf("rank[%d] = %d, want %d", i, r.Rank, i+1)
		}
		if r.ID != wantIDs[i] {
			t.Errorf("rank %d id = %d, want %d", r.Rank, r.ID, wantIDs[i])
		}
	}
}

// A catalog lying exactly on rank = 100·heave^(-2) must recover the
// slope, and the extrapolated extension must match the closed form.
func TestExtrapolateExactPowerLaw(t *testing.T) {
	const slope = -2.0
	ranked := make([]Ranked, 12)
	for i := range ranked {
		rank := float64(i + 1)
		heave := math.Pow(rank/100, 1/slope) // 10/sqrt(rank)
		ranked[i] = Ranked{Rank: i + 1, Sample: Sample{ID: i + 1, Heave: heave}}
	}

	fit, err := Extrapolate(ranked, 1, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(fit.Slope-slope) > 1e-9 {
		t.Errorf("Slope = %.12f, want %.1f", fit.Slope, slope)
	}
	if math.Abs(fit.Intercept-2) > 1e-9 {
		t.Errorf("Intercept = %.12f, want 2", fit.Intercept)
	}
	if fit.N != 12 {
		t.Errorf("N = %d, want 12", fit.N)
	}
	hn := ranked[11].Heave
	if fit.Smallest != hn {
		t.Errorf("Smallest = %.6f, want %.6f", fit.Smallest, hn)
	}
	n := 12.0
	want := hn * (fit.Slope / (1 - fit.Slope)) * (n + 1) * math.Pow(n/(n+1), 1/fit.Slope)
	if math.Abs(fit.Extension-want) > 1e-9 {
		t.Errorf("Extension = %.9f, want %.9f", fit.Extension, want)
	}
}

func TestExtrapolateSubWindow(t *testing.T) {
	// Only the windowed ranks enter the fit; rows outside may be off-trend.
	ranked := []Ranked{
		{Rank: 1, Sample: Sample{ID: 9, Heave: 500}}, // off-trend outlier
		{Rank: 2, Sample: Sample{ID: 1, Heave: 10 / math.Sqrt(2)}},
		{Rank: 3, Sample: Sample{ID: 2, Heave: 10 / math.Sqrt(3)}},
		{Rank: 4, Sample: Sample{ID: 3, Heave: 10 / math.Sqrt(4)}},
		{Rank: 5, Sample: Sample{ID: 4, Heave: 10 / math.Sqrt(5)}},
	}
	fit, err := Extrapolate(ranked, 2, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(fit.Slope - -2) > 1e-9 {
		t.Errorf("Slope = %.12f, want -2", fit.Slope)
	}
	if fit.N != 4 {
		t.Errorf("N = %d, want 4", fit.N)
	}
}

func TestExtrapolateRefusesNonNegativeSlope(t *testing.T) {
	// Heave increasing with rank: larger faults are NOT rarer, the
	// physical assumption fails and no number may come out.
	ranked := []Ranked{
		{Rank: 1, Sample: Sample{ID: 1, Heave: 1}},
		{Rank: 2, Sample: Sample{ID: 2, Heave: 2}},
		{Rank: 3, Sample: Sample{ID: 3, Heave: 4}},
		{Rank: 4, Sample: Sample{ID: 4, Heave: 8}},
	}
	fit, err := Extrapolate(ranked, 1, 4)
	if !errors.Is(err, ErrInvalidModel) {
		t.Fatalf("err = %v, want ErrInvalidModel", err)
	}
	if fit.Extension != 0 {
		t.Errorf("Extension = %.6f, want 0 when the model is invalid", fit.Extension)
	}
}

func TestExtrapolateRefusesNearZeroSlope(t *testing.T) {
	// All heaves equal: the slope is numerically unbounded/undefined and
	// (N/(N+1))^(1/C) must never be evaluated.
	ranked := []Ranked{
		{Rank: 1, Sample: Sample{ID: 1, Heave: 3}},
		{Rank: 2, Sample: Sample{ID: 2, Heave: 3}},
		{Rank: 3, Sample: Sample{ID: 3, Heave: 3}},
	}
	if _, err := Extrapolate(ranked, 1, 3); !errors.Is(err, ErrInvalidModel) {
		t.Fatalf("err = %v, want ErrInvalidModel", err)
	}
}

func TestExtrapolateWindowValidation(t *testing.T) {
	ranked := []Ranked{
		{Rank: 1, Sample: Sample{ID: 1, Heave: 4}},
		{Rank: 2, Sample: Sample{ID: 2, Heave: 2}},
		{Rank: 3, Sample: Sample{ID: 3, Heave: 0}}, // bounding fault
	}
	if _, err := Extrapolate(ranked, 0, 2); err == nil {
		t.Error("lo=0 accepted")
	}
	if _, err := Extrapolate(ranked, 2, 2); err == nil {
		t.Error("empty window accepted")
	}
	if _, err := Extrapolate(ranked, 1, 4); err == nil {
		t.Error("hi beyond catalog accepted")
	}
	if _, err := Extrapolate(ranked, 1, 3); err == nil {
		t.Error("window spanning zero heave accepted")
	}
}
