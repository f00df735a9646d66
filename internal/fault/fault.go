// Package fault defines the observed fault catalog consumed by the
// elongation pipeline and its tabular loader.
package fault

import "fmt"

// Fault is one observed fault plane along a transect, joined by row with
// its reference marker plane (bedding) and the transect scanline azimuth.
// All angles are degrees; offset is meters, signed by fault sense.
type Fault struct {
	// ID is the fault number, 1..N in transect order.
	ID int

	Strike       float64 // fault strike, [0,360)
	Dip          float64 // fault dip, [0,90]
	DipDirection float64 // trend of slip, [0,360)

	// Offset is the displacement measured along the scanline's trace on
	// the fault plane. Bounding faults carry zero offset.
	Offset float64

	// LineationPitch is the pitch of the slip lineation on the fault
	// plane, clockwise from strike, signed.
	LineationPitch float64

	BeddingStrike float64 // marker plane strike, [0,360)
	BeddingDip    float64 // marker plane dip, [0,90]

	// Scanline is the azimuth of the transect's measured-length
	// direction, shared across the catalog.
	Scanline float64
}

// Validate checks every documented range before any geometry is computed.
func (f Fault) Validate() error {
	check := func(name string, v, lo, hi float64) error {
		if v < lo || v >= hi {
			return fmt.Errorf("fault %d: %s %.4g outside [%g,%g)", f.ID, name, v, lo, hi)
		}
		return nil
	}
	if err := check("strike", f.Strike, 0, 360); err != nil {
		return err
	}
	if err := check("dipDirection", f.DipDirection, 0, 360); err != nil {
		return err
	}
	if err := check("bedding", f.BeddingStrike, 0, 360); err != nil {
		return err
	}
	if err := check("scanline", f.Scanline, 0, 360); err != nil {
		return err
	}
	if f.Dip < 0 || f.Dip > 90 {
		return fmt.Errorf("fault %d: dip %.4g outside [0,90]", f.ID, f.Dip)
	}
	if f.BeddingDip < 0 || f.BeddingDip > 90 {
		return fmt.Errorf("fault %d: beddingDip %.4g outside [0,90]", f.ID, f.BeddingDip)
	}
	return nil
}

// Set is an ordered fault catalog.
type Set []Fault

// Validate applies per-fault validation across the catalog.
func (s Set) Validate() error {
	for _, f := range s {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ByID returns the subset of the catalog whose fault numbers appear in
// ids, preserving catalog order. Unknown ids are reported so a typo in an
// analyst-entered row list fails loudly instead of silently shrinking the
// subset.
func (s Set) ByID(ids []int) (Set, error) {
	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out Set
	for _, f := range s {
		if want[f.ID] {
			out = append(out, f)
			delete(want, f.ID)
		}
	}
	if len(want) > 0 {
		for id := range want {
			return nil, fmt.Errorf("fault id %d not present in catalog", id)
		}
	}
	return out, nil
}
