package analysis

import (
	"strings"
	"testing"
)

func buildReport(t *testing.T) *SeasonReport {
	t.Helper()
	tab := skewedTable()
	res, err := ChiSquareTest(tab)
	if err != nil {
		t.Fatalf("ChiSquareTest: %v", err)
	}
	return &SeasonReport{
		Season:    "2019",
		Records:   tab.Total(),
		Table:     tab,
		Test:      res,
		Alpha:     0.05,
		Residuals: Residuals(tab, res.Expected),
		MostLikely: map[string]PitchSpeed{
			"0-0": {PitchType: "FF", MeanSpeed: 95},
			"3-2": {PitchType: "SL", MeanSpeed: 87},
		},
	}
}

func TestSeasonReportText(t *testing.T) {
	text := buildReport(t).Text()

	if !strings.Contains(text, "2019 Chi-Square Test: Chi2 = 53.33, p-value = 0.0000") {
		t.Fatalf("report missing test line:\n%s", text)
	}
	if !strings.Contains(text, "In 2019, pitch_type is dependent on count (reject null hypothesis).") {
		t.Fatalf("report missing conclusion:\n%s", text)
	}
	if !strings.Contains(text, "2019 - Chi-square residuals:") {
		t.Fatalf("report missing residual header:\n%s", text)
	}
	if !strings.Contains(text, "20.0") || !strings.Contains(text, "-20.0") {
		t.Fatalf("report missing residual values:\n%s", text)
	}
	if !strings.Contains(text, "Most likely pitch type and expected speed for each count in 2019:") {
		t.Fatalf("report missing most-likely header:\n%s", text)
	}
	if !strings.Contains(text, "Count 0-0: Pitch Type = FF, Expected Speed = 95.0 MPH") {
		t.Fatalf("report missing most-likely line:\n%s", text)
	}
	if strings.Contains(text, "Note: skipped") {
		t.Fatalf("report should not mention skipped rows when none:\n%s", text)
	}
}

func TestSeasonReportIndependentAndSkipped(t *testing.T) {
	rep := buildReport(t)
	rep.Test.P = 0.73
	rep.Skipped = 4
	text := rep.Text()

	if !strings.Contains(text, "p-value = 0.7300") {
		t.Fatalf("report missing p-value:\n%s", text)
	}
	if !strings.Contains(text, "In 2019, pitch_type is independent of count (fail to reject null hypothesis).") {
		t.Fatalf("report missing independence conclusion:\n%s", text)
	}
	if !strings.Contains(text, "Note: skipped 4 of 124 rows with missing values.") {
		t.Fatalf("report missing skipped note:\n%s", text)
	}
}

func TestWriteMatrixAlignment(t *testing.T) {
	var b strings.Builder
	writeMatrix(&b, []string{"FF", "CH"}, []string{"0-0", "3-2"}, [][]float64{{1.2, -10.5}, {-1.2, 10.5}})
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3:\n%s", len(lines), b.String())
	}
	// All rows align to the same width.
	if len(lines[1]) != len(lines[2]) {
		t.Fatalf("misaligned rows:\n%s", b.String())
	}
	if !strings.HasPrefix(lines[1], "FF") || !strings.HasPrefix(lines[2], "CH") {
		t.Fatalf("row labels missing:\n%s", b.String())
	}
}
