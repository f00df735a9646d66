// Package geom provides the plane-orientation trigonometry shared by the
// elongation pipeline: acute inter-strike angles, hemisphere dip signing,
// and pitches of plane traces and horizontal directions on a fault plane.
//
// Conventions: azimuths and strikes in degrees [0,360), dips in degrees
// [0,90], pitches measured within a plane clockwise from its strike.
// Degenerate configurations yield NaN, never an error; callers are
// expected to propagate NaN as "undefined" and exclude it from sums.
package geom

import "math"

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * degToRad }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * radToDeg }

// NormalizeAzimuth reduces an azimuth to [0,360).
func NormalizeAzimuth(az float64) float64 {
	az = math.Mod(az, 360)
	if az < 0 {
		az += 360
	}
	return az
}

// AcuteAngle returns the angle from the fault strike to another strike,
// folded into the acute range (-90,90]. The folding bands encode which
// hemisphere the other plane's projection falls in relative to the fault.
// Inputs must be pre-normalized to [0,360); the difference then lies in
// (-360,360) and exactly one band applies. Out-of-range input returns NaN.
func AcuteAngle(faultStrike, otherStrike float64) float64 {
	d := otherStrike - faultStrike
	switch {
	case d >= 0 && d <= 90:
		return d
	case d > 90 && d <= 270:
		return d - 180
	case d > 270 && d <= 360:
		return d - 360
	case d < 0 && d > -90:
		return d
	case d <= -90 && d > -270:
		return d + 180
	case d <= -270 && d >= -360:
		return d + 360
	}
	return math.NaN()
}

// AdjustedDip signs a plane's dip by which side of the fault plane its
// true-dip vector falls on: negative when the other plane strikes 90°-270°
// clockwise of the fault strike, positive otherwise. The magnitude is
// never changed.
func AdjustedDip(faultStrike, otherStrike, otherDip float64) float64 {
	d := NormalizeAzimuth(otherStrike - faultStrike)
	if d > 90 && d <= 270 {
		return -otherDip
	}
	return otherDip
}

// PitchOnPlane returns the pitch, clockwise from the fault strike, of the
// trace that a second plane cuts across a fault plane.
//
//	faultDip  a: dip of the fault plane
//	planeDip  t: dip of the second plane, signed per AdjustedDip
//	acuteAng  u: acute angle between the two strikes, per AcuteAngle
//
// pitch = atan( sin u · tan a · tan t / ( sin a · (tan t · cos u − tan a) ) )
//
// A zero denominator means the second plane's trace parallels the fault's
// dip direction; the pitch is then geometrically undefined and NaN is
// returned.
func PitchOnPlane(faultDip, planeDip, acuteAngle float64) float64 {
	a := Radians(faultDip)
	t := Radians(planeDip)
	u := Radians(acuteAngle)

	num := math.Sin(u) * math.Tan(a) * math.Tan(t)
	den := math.Sin(a) * (math.Tan(t)*math.Cos(u) - math.Tan(a))
	if den == 0 {
		return math.NaN()
	}
	return Degrees(math.Atan(num / den))
}

// PitchOfTrend returns the pitch on a fault plane of a horizontal
// direction (a scanline or elongation azimuth), given the fault dip and
// the acute angle u between the fault strike and that direction. This is
// PitchOnPlane in the vertical-plane limit: tan(pitch) = tan u / cos a.
func PitchOfTrend(faultDip, acuteAngle float64) float64 {
	a := Radians(faultDip)
	u := Radians(acuteAngle)

	c := math.Cos(a)
	if c == 0 {
		// Vertical fault: the horizontal direction pitches at the
		// acute angle itself only when parallel to strike.
		if u == 0 {
			return 0
		}
		return math.Copysign(90, u)
	}
	return Degrees(math.Atan(math.Tan(u) / c))
}

// Plunge returns the plunge below horizontal of a line lying in a plane of
// the given dip at the given pitch: sin(plunge) = sin(pitch)·sin(dip).
// The result carries the pitch's sign.
func Plunge(dip, pitch float64) float64 {
	return Degrees(math.Asin(math.Sin(Radians(pitch)) * math.Sin(Radians(dip))))
}
