// Package statcast reads pitch-level CSV exports (Baseball Savant style)
// into memory for analysis.
package statcast

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Pitch is one observed pitch. Count is the ball-strike state at release,
// e.g. "0-0" or "3-2".
type Pitch struct {
	Type         string
	Count        string
	ReleaseSpeed float64 // MPH
}

// LoadResult is the outcome of reading one season file. Skipped counts rows
// that were present but unusable (blank pitch type, count, or speed).
type LoadResult struct {
	Pitches []Pitch
	Rows    int
	Skipped int
}

// Required column names, matched case-insensitively against the header.
const (
	colPitchType    = "pitch_type"
	colCount        = "count"
	colReleaseSpeed = "release_speed"
)

// LoadCSV reads a pitch CSV from path. delim 0 means auto-detect from the
// file extension. Extra columns are ignored; the three required columns must
// all be present.
func LoadCSV(path string, delim rune) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	r := csv.NewReader(f)
	r.ReuseRecord = true
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comma = delim

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty file: %s", path)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := map[string]int{}
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	var missing []string
	for _, name := range []string{colPitchType, colCount, colReleaseSpeed} {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns in %s: %s", path, strings.Join(missing, ", "))
	}
	pt, cnt, spd := idx[colPitchType], idx[colCount], idx[colReleaseSpeed]

	res := &LoadResult{}
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", res.Rows+1, err)
		}
		res.Rows++
		if pt >= len(rec) || cnt >= len(rec) || spd >= len(rec) {
			res.Skipped++
			continue
		}
		typ := strings.TrimSpace(rec[pt])
		count := strings.TrimSpace(rec[cnt])
		rawSpeed := strings.TrimSpace(rec[spd])
		// Statcast exports leave these blank on tracking failures.
		if typ == "" || count == "" || rawSpeed == "" {
			res.Skipped++
			continue
		}
		speed, err := strconv.ParseFloat(rawSpeed, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad release_speed %q: %w", res.Rows, rawSpeed, err)
		}
		res.Pitches = append(res.Pitches, Pitch{Type: typ, Count: count, ReleaseSpeed: speed})
	}
	return res, nil
}

func sniffDelimiter(path string) rune {
	name := strings.ToLower(path)
	if strings.HasSuffix(name, ".tsv") {
		return '\t'
	}
	// Default to comma; filename heuristic only, to avoid reading twice.
	return ','
}
