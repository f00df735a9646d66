package geom

import (
	"math"
	"testing"
)

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.9f, want %.9f", name, got, want)
	}
}

func TestAcuteAngleRange(t *testing.T) {
	for f := 0.0; f < 360; f += 7 {
		for x := 0.0; x < 360; x += 7 {
			a := AcuteAngle(f, x)
			if math.IsNaN(a) {
				t.Fatalf("AcuteAngle(%.0f,%.0f) = NaN for normalized inputs", f, x)
			}
			if a <= -90 || a > 90 {
				t.Fatalf("AcuteAngle(%.0f,%.0f) = %.4f outside (-90,90]", f, x, a)
			}
		}
	}
}

func TestAcuteAngleIdentity(t *testing.T) {
	for _, f := range []float64{0, 37, 90, 181, 359} {
		if got := AcuteAngle(f, f); got != 0 {
			t.Errorf("AcuteAngle(%.0f,%.0f) = %.4f, want 0", f, f, got)
		}
		if got := AcuteAngle(f, f+360); got != 0 {
			t.Errorf("AcuteAngle(%.0f,%.0f) = %.4f, want 0", f, f+360, got)
		}
	}
}

func TestAcuteAngleFolding(t *testing.T) {
	cases := []struct {
		fault, other, want float64
	}{
		{0, 45, 45},
		{0, 90, 90},
		{0, 135, -45}, // other projects into the opposite hemisphere
		{0, 180, 0},   // parallel strikes
		{0, 270, 90},  // fold boundary maps to +90, not -90
		{0, 300, -60},
		{350, 10, 20}, // wraps through north
		{10, 350, -20},
		{45, 135, 90},
	}
	for _, c := range cases {
		approx(t, "AcuteAngle", AcuteAngle(c.fault, c.other), c.want, 1e-12)
	}
}

func TestAcuteAngleOutOfRange(t *testing.T) {
	if got := AcuteAngle(0, 400); !math.IsNaN(got) {
		t.Errorf("AcuteAngle(0,400) = %.4f, want NaN for unnormalized input", got)
	}
}

func TestAdjustedDipSignOnly(t *testing.T) {
	const dip = 35.0
	for f := 0.0; f < 360; f += 11 {
		for x := 0.0; x < 360; x += 11 {
			got := AdjustedDip(f, x, dip)
			if math.Abs(got) != dip {
				t.Fatalf("AdjustedDip(%.0f,%.0f,%.0f) = %.4f; magnitude changed", f, x, dip, got)
			}
		}
	}
	// The 90°-270° clockwise band flips the sign.
	if got := AdjustedDip(0, 180, dip); got != -dip {
		t.Errorf("AdjustedDip(0,180,%.0f) = %.4f, want %.4f", dip, got, -dip)
	}
	if got := AdjustedDip(0, 45, dip); got != dip {
		t.Errorf("AdjustedDip(0,45,%.0f) = %.4f, want %.4f", dip, got, dip)
	}
	if got := AdjustedDip(270, 45, dip); got != -dip {
		t.Errorf("AdjustedDip(270,45,%.0f) = %.4f, want %.4f", dip, got, -dip)
	}
}

func TestPitchOnPlane(t *testing.T) {
	// Horizontal marker: its trace parallels strike, pitch zero.
	approx(t, "horizontal marker", PitchOnPlane(45, 0, 30), 0, 1e-12)

	// Worked value: a=60, t=40, u=30.
	// atan( sin30·tan60·tan40 / (sin60·(tan40·cos30 − tan60)) )
	a, tt, u := 60.0, 40.0, 30.0
	num := math.Sin(Radians(u)) * math.Tan(Radians(a)) * math.Tan(Radians(tt))
	den := math.Sin(Radians(a)) * (math.Tan(Radians(tt))*math.Cos(Radians(u)) - math.Tan(Radians(a)))
	want := Degrees(math.Atan(num / den))
	approx(t, "worked pitch", PitchOnPlane(a, tt, u), want, 1e-12)
}

func TestPitchOnPlaneDegenerate(t *testing.T) {
	// tan(t)·cos(u) == tan(a) makes the marker trace parallel the fault
	// dip direction; with equal dips and u=0 the planes coincide.
	if got := PitchOnPlane(45, 45, 0); !math.IsNaN(got) {
		t.Errorf("PitchOnPlane(45,45,0) = %.4f, want NaN", got)
	}
	// Horizontal fault against horizontal marker.
	if got := PitchOnPlane(0, 0, 30); !math.IsNaN(got) {
		t.Errorf("PitchOnPlane(0,0,30) = %.4f, want NaN", got)
	}
}

func TestPitchOfTrend(t *testing.T) {
	approx(t, "along strike", PitchOfTrend(45, 0), 0, 1e-12)
	// Horizontal plane: pitch equals the acute angle itself.
	approx(t, "flat plane", PitchOfTrend(0, 33), 33, 1e-9)
	// tan(pitch) = tan(45)/cos(60) = 2.
	approx(t, "worked trend", PitchOfTrend(60, 45), Degrees(math.Atan(2)), 1e-9)
	// Down-dip direction on any plane pitches at 90.
	approx(t, "down dip", PitchOfTrend(30, 90), 90, 1e-9)
	// Sign follows the acute angle.
	approx(t, "signed", PitchOfTrend(60, -45), -Degrees(math.Atan(2)), 1e-9)
}

func TestPlunge(t *testing.T) {
	approx(t, "strike-parallel", Plunge(60, 0), 0, 1e-12)
	approx(t, "down dip", Plunge(60, 90), 60, 1e-9)
	// sin(plunge) = sin(30)·sin(45)
	approx(t, "worked plunge", Plunge(45, 30), Degrees(math.Asin(0.5*math.Sin(Radians(45)))), 1e-9)
}

func TestNormalizeAzimuth(t *testing.T) {
	cases := [][2]float64{{0, 0}, {360, 0}, {361, 1}, {-10, 350}, {725, 5}}
	for _, c := range cases {
		approx(t, "NormalizeAzimuth", NormalizeAzimuth(c[0]), c[1], 1e-12)
	}
}
