package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/blaketorres2000-2/verlander-analysis/internal/statcast"
)

// PitchSpeed is the most likely pitch for one count: the pitch type with the
// highest mean release speed among pitches thrown at that count.
type PitchSpeed struct {
	PitchType string
	MeanSpeed float64 // MPH
}

// MostLikelyPitches computes the most likely pitch per count. counts is
// normally the contingency table's column labels. Ties on mean speed go to
// the first pitch type in sorted order, so the result is deterministic.
func MostLikelyPitches(pitches []statcast.Pitch, counts []string) map[string]PitchSpeed {
	// count -> pitch type -> speeds
	speeds := map[string]map[string][]float64{}
	for _, p := range pitches {
		byType := speeds[p.Count]
		if byType == nil {
			byType = map[string][]float64{}
			speeds[p.Count] = byType
		}
		byType[p.Type] = append(byType[p.Type], p.ReleaseSpeed)
	}

	out := make(map[string]PitchSpeed, len(counts))
	for _, count := range counts {
		byType := speeds[count]
		if len(byType) == 0 {
			continue
		}
		types := make([]string, 0, len(byType))
		for t := range byType {
			types = append(types, t)
		}
		sort.Strings(types)

		best := PitchSpeed{}
		for i, t := range types {
			mean := stat.Mean(byType[t], nil)
			if i == 0 || mean > best.MeanSpeed {
				best = PitchSpeed{PitchType: t, MeanSpeed: mean}
			}
		}
		out[count] = best
	}
	return out
}
