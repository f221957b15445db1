package analysis

import (
	"fmt"
	"strings"
)

// SeasonReport collects every result of one season's pipeline run.
type SeasonReport struct {
	Season  string
	Records int
	Skipped int

	Table      *ContingencyTable
	Test       *TestResult
	Alpha      float64
	Residuals  [][]float64
	MostLikely map[string]PitchSpeed

	// Set by the caller once the chart has been rendered.
	ChartPath string
}

// Text renders the season report: test statistic and p-value, the
// independence conclusion, the residual table, and the most-likely pitch per
// count.
func (r *SeasonReport) Text() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s Chi-Square Test: Chi2 = %.2f, p-value = %.4f\n", r.Season, r.Test.Statistic, r.Test.P))
	if r.Test.Dependent(r.Alpha) {
		b.WriteString(fmt.Sprintf("In %s, pitch_type is dependent on count (reject null hypothesis).\n", r.Season))
	} else {
		b.WriteString(fmt.Sprintf("In %s, pitch_type is independent of count (fail to reject null hypothesis).\n", r.Season))
	}

	b.WriteString(fmt.Sprintf("\n%s - Chi-square residuals:\n", r.Season))
	writeMatrix(&b, r.Table.PitchTypes, r.Table.Counts, r.Residuals)

	b.WriteString(fmt.Sprintf("\nMost likely pitch type and expected speed for each count in %s:\n", r.Season))
	for _, count := range r.Table.Counts {
		ps, ok := r.MostLikely[count]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("Count %s: Pitch Type = %s, Expected Speed = %.1f MPH\n", count, ps.PitchType, ps.MeanSpeed))
	}

	if r.Skipped > 0 {
		b.WriteString(fmt.Sprintf("\nNote: skipped %d of %d rows with missing values.\n", r.Skipped, r.Records+r.Skipped))
	}
	return b.String()
}

// writeMatrix prints a right-aligned matrix with row and column labels.
func writeMatrix(b *strings.Builder, rows, cols []string, vals [][]float64) {
	rowW := 0
	for _, r := range rows {
		if len(r) > rowW {
			rowW = len(r)
		}
	}
	colW := make([]int, len(cols))
	for j, c := range cols {
		colW[j] = len(c)
		for i := range rows {
			if w := len(fmt.Sprintf("%.1f", vals[i][j])); w > colW[j] {
				colW[j] = w
			}
		}
	}

	b.WriteString(strings.Repeat(" ", rowW))
	for j, c := range cols {
		b.WriteString(fmt.Sprintf("  %*s", colW[j], c))
	}
	b.WriteString("\n")
	for i, r := range rows {
		b.WriteString(fmt.Sprintf("%-*s", rowW, r))
		for j := range cols {
			b.WriteString(fmt.Sprintf("  %*.1f", colW[j], vals[i][j]))
		}
		b.WriteString("\n")
	}
}
