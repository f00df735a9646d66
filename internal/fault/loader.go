package fault

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Required column headers. Matching is case-insensitive and column order
// is free; any delimited source whose header row carries these names is
// acceptable.
var requiredColumns = []string{
	"strike", "dip", "offset", "number", "dipdirection",
	"bedding", "beddingdip", "scanline", "linpitch",
}

// Load reads a fault catalog from a CSV file and validates it.
func Load(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	set, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Read parses a header-keyed CSV fault table. It fails fast on a missing
// column, a malformed value, or an out-of-range angle, before any
// geometric computation can see the data.
func Read(r io.Reader) (Set, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	var set Set
	row := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row+1, err)
		}
		row++

		num := func(name string) (float64, error) {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[col[name]]), 64)
			if err != nil {
				return 0, fmt.Errorf("row %d: column %q: %w", row, name, err)
			}
			return v, nil
		}

		var f Fault
		fields := []struct {
			name string
			dst  *float64
		}{
			{"strike", &f.Strike},
			{"dip", &f.Dip},
			{"offset", &f.Offset},
			{"dipdirection", &f.DipDirection},
			{"bedding", &f.BeddingStrike},
			{"beddingdip", &f.BeddingDip},
			{"scanline", &f.Scanline},
			{"linpitch", &f.LineationPitch},
		}
		for _, fl := range fields {
			v, err := num(fl.name)
			if err != nil {
				return nil, err
			}
			*fl.dst = v
		}

		id, err := strconv.Atoi(strings.TrimSpace(rec[col["number"]]))
		if err != nil {
			return nil, fmt.Errorf("row %d: column %q: %w", row, "number", err)
		}
		f.ID = id

		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		set = append(set, f)
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("no fault rows")
	}
	return set, nil
}
