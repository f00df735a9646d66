// Package displacement converts fault offsets measured along one line on a
// fault plane into true 3-D displacements and back into apparent
// displacements along any other line on that plane.
//
// Three signed pitches (clockwise from the fault strike) describe the
// geometry on the fault surface:
//
//	g (gamma): pitch of the slip lineation (direction of true displacement)
//	b (beta):  pitch of the offset marker's trace (bedding)
//	p (phi):   pitch of the observation line the offset is measured along
//
// The sign and magnitude relationships among the three pitches determine
// which spherical-triangle identity relates the measured separation to the
// true displacement. The nine mutually exclusive combinations follow the
// published apparent-displacement relations (Xu et al., 2009); a single
// miscoded branch corrupts only the subset of fault geometries that reach
// it, so every branch carries its own unit test.
package displacement

import "math"

// Case identifies which of the nine sign/magnitude configurations a
// (g, b, p) pitch triple falls in, or CaseUndefined for the degenerate
// ties g == b (slip parallel to marker, separation carries no displacement
// information) and p == b (observation line parallel to marker, separation
// unbounded).
type Case int

const (
	CaseUndefined Case = iota

	// Slip and marker pitch on the same side of strike, |g| > |b|.
	Case1 // observation with slip, |p| > |b|
	Case2 // observation with slip, |p| < |b|
	Case3 // observation opposite slip

	// Slip and marker pitch on the same side of strike, |b| > |g|.
	Case4 // observation with slip, |p| > |b|
	Case5 // observation with slip, |p| < |b|
	Case6 // observation opposite slip

	// Slip and marker pitch on opposite sides of strike.
	Case7 // observation with slip
	Case8 // observation opposite slip, |p| > |b|
	Case9 // observation opposite slip, |p| < |b|
)

var caseNames = map[Case]string{
	CaseUndefined: "undefined",
	Case1:         "case 1", Case2: "case 2", Case3: "case 3",
	Case4: "case 4", Case5: "case 5", Case6: "case 6",
	Case7: "case 7", Case8: "case 8", Case9: "case 9",
}

func (c Case) String() string { return caseNames[c] }

// sameSide reports whether two pitches fall on the same side of strike.
// Zero counts as the positive side.
func sameSide(a, b float64) bool { return (a >= 0) == (b >= 0) }

// Classify assigns a pitch triple to its geometric case. The
// classification is total: every finite triple maps to exactly one of the
// nine cases or to CaseUndefined.
func Classify(g, b, p float64) Case {
	if g == b || p == b {
		return CaseUndefined
	}
	G, B, P := math.Abs(g), math.Abs(b), math.Abs(p)

	switch {
	case sameSide(g, b) && G > B:
		switch {
		case sameSide(p, g) && P > B:
			return Case1
		case sameSide(p, g): // P < B; P == B would be p == b here
			return Case2
		default:
			return Case3
		}
	case sameSide(g, b): // B > G; B == G would be g == b here
		switch {
		case sameSide(p, g) && P > B:
			return Case4
		case sameSide(p, g):
			return Case5
		default:
			return Case6
		}
	default:
		switch {
		case sameSide(p, g):
			return Case7
		case P > B:
			return Case8
		default:
			return Case9
		}
	}
}

// ratio returns sin(p−b)/sin(g−b) expressed through the case's pair of
// positive sine terms. True displacement is measured·ratio; apparent
// displacement is true/ratio.
func ratio(c Case, g, b, p float64) float64 {
	G, B, P := math.Abs(g), math.Abs(b), math.Abs(p)
	sin := func(deg float64) float64 { return math.Sin(deg * math.Pi / 180) }

	switch c {
	case Case1:
		return sin(P-B) / sin(G-B)
	case Case2:
		return -sin(B-P) / sin(G-B)
	case Case3:
		return -sin(P+B) / sin(G-B)
	case Case4:
		return -sin(P-B) / sin(B-G)
	case Case5:
		return sin(B-P) / sin(B-G)
	case Case6:
		return sin(P+B) / sin(B-G)
	case Case7:
		return sin(P+B) / sin(G+B)
	case Case8:
		return -sin(P-B) / sin(G+B)
	case Case9:
		return sin(B-P) / sin(G+B)
	}
	return math.NaN()
}

// True converts an offset measured along the observation line at pitch p
// into the true displacement along the slip lineation at pitch g. The
// result is NaN for the degenerate ties g == b and p == b and for the
// antiparallel configurations where the governing sine vanishes.
func True(g, b, p, measured float64) float64 {
	c := Classify(g, b, p)
	if c == CaseUndefined {
		return math.NaN()
	}
	r := ratio(c, g, b, p)
	if r == 0 || math.IsInf(r, 0) {
		// p−b or g−b a straight angle: the lines are antiparallel and
		// the separation carries no displacement information.
		return math.NaN()
	}
	return measured * r
}

// Apparent projects a true displacement onto the observation line at pitch
// p, returning the separation that would be measured along it. Inverse of
// True branch by branch: Apparent(g,b,p, True(g,b,p,s)) == s wherever both
// are defined.
func Apparent(g, b, p, trueDisp float64) float64 {
	c := Classify(g, b, p)
	if c == CaseUndefined {
		return math.NaN()
	}
	r := ratio(c, g, b, p)
	if r == 0 || math.IsInf(r, 0) {
		return math.NaN()
	}
	return trueDisp / r
}
