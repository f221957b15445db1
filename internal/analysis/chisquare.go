package analysis

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrDegenerateTable marks a contingency table too small for a chi-square
// test (fewer than 2 pitch types or 2 counts) or one whose expected
// frequencies contain a zero.
var ErrDegenerateTable = errors.New("degenerate contingency table")

// TestResult holds the outcome of a chi-square test of independence.
type TestResult struct {
	Statistic float64
	P         float64
	DF        int
	// Expected frequencies, same shape and label order as the observed table.
	Expected [][]float64
}

// Dependent applies the decision rule: reject independence when p < alpha.
func (r *TestResult) Dependent(alpha float64) bool {
	return r.P < alpha
}

// ChiSquareTest runs the chi-square test of independence on tab. Expected
// cell frequency is rowTotal*colTotal/grandTotal; the statistic sums
// (observed-expected)^2/expected; the p-value is the upper tail of the
// chi-square distribution with (rows-1)*(cols-1) degrees of freedom.
func ChiSquareTest(tab *ContingencyTable) (*TestResult, error) {
	nr, nc := len(tab.PitchTypes), len(tab.Counts)
	if nr < 2 || nc < 2 {
		return nil, fmt.Errorf("%w: %dx%d, need at least 2x2", ErrDegenerateTable, nr, nc)
	}
	rowTotals := tab.RowTotals()
	colTotals := tab.ColTotals()
	grand := float64(tab.Total())

	expected := make([][]float64, nr)
	stat := 0.0
	for i := 0; i < nr; i++ {
		expected[i] = make([]float64, nc)
		for j := 0; j < nc; j++ {
			e := float64(rowTotals[i]) * float64(colTotals[j]) / grand
			if e == 0 {
				return nil, fmt.Errorf("%w: zero expected frequency for %s at %s",
					ErrDegenerateTable, tab.PitchTypes[i], tab.Counts[j])
			}
			expected[i][j] = e
			d := float64(tab.Cells[i][j]) - e
			stat += d * d / e
		}
	}

	df := (nr - 1) * (nc - 1)
	p := distuv.ChiSquared{K: float64(df)}.Survival(stat)
	return &TestResult{Statistic: stat, P: p, DF: df, Expected: expected}, nil
}

// Residuals returns observed minus expected per cell, rounded to one decimal.
// expected must have the same shape and label order as tab.
func Residuals(tab *ContingencyTable, expected [][]float64) [][]float64 {
	res := make([][]float64, len(tab.Cells))
	for i, row := range tab.Cells {
		res[i] = make([]float64, len(row))
		for j, o := range row {
			res[i][j] = math.Round((float64(o)-expected[i][j])*10) / 10
		}
	}
	return res
}
