package analysis

import (
	"math"
	"testing"

	"github.com/blaketorres2000-2/verlander-analysis/internal/statcast"
)

func TestMostLikelyPitches(t *testing.T) {
	pitches := []statcast.Pitch{
		{Type: "FF", Count: "0-0", ReleaseSpeed: 95},
		{Type: "FF", Count: "0-0", ReleaseSpeed: 96},
		{Type: "FF", Count: "0-0", ReleaseSpeed: 97},
		{Type: "SL", Count: "0-0", ReleaseSpeed: 85},
		{Type: "SL", Count: "0-0", ReleaseSpeed: 86},
		{Type: "SL", Count: "3-2", ReleaseSpeed: 88},
	}
	got := MostLikelyPitches(pitches, []string{"0-0", "3-2"})

	ml, ok := got["0-0"]
	if !ok {
		t.Fatal("missing entry for 0-0")
	}
	if ml.PitchType != "FF" {
		t.Fatalf("0-0 pitch type = %s, want FF", ml.PitchType)
	}
	if math.Abs(ml.MeanSpeed-96.0) > 1e-9 {
		t.Fatalf("0-0 mean speed = %g, want 96.0", ml.MeanSpeed)
	}

	// Single pitch type at a count is trivially selected.
	ml, ok = got["3-2"]
	if !ok {
		t.Fatal("missing entry for 3-2")
	}
	if ml.PitchType != "SL" || ml.MeanSpeed != 88 {
		t.Fatalf("3-2 = %#v, want SL at 88", ml)
	}
}

func TestMostLikelyPitchesMaximality(t *testing.T) {
	pitches := concat(
		repeat("CH", "1-2", 84, 4),
		repeat("CU", "1-2", 79, 3),
		repeat("FF", "1-2", 95, 6),
		repeat("SL", "1-2", 87, 5),
	)
	got := MostLikelyPitches(pitches, []string{"1-2"})
	if got["1-2"].PitchType != "FF" {
		t.Fatalf("1-2 pitch type = %s, want FF", got["1-2"].PitchType)
	}
}

func TestMostLikelyPitchesTieIsDeterministic(t *testing.T) {
	pitches := []statcast.Pitch{
		{Type: "SL", Count: "0-0", ReleaseSpeed: 90},
		{Type: "FF", Count: "0-0", ReleaseSpeed: 90},
	}
	for i := 0; i < 20; i++ {
		got := MostLikelyPitches(pitches, []string{"0-0"})
		if got["0-0"].PitchType != "FF" {
			t.Fatalf("tie break = %s, want FF (sorted order)", got["0-0"].PitchType)
		}
	}
}

func TestMostLikelyPitchesUnknownCount(t *testing.T) {
	got := MostLikelyPitches(nil, []string{"0-0"})
	if len(got) != 0 {
		t.Fatalf("entries = %#v, want none", got)
	}
}
