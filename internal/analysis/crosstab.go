// Package analysis builds contingency tables from pitch records and runs the
// pitch-selection-vs-count independence analysis over them.
package analysis

import (
	"sort"

	"github.com/blaketorres2000-2/verlander-analysis/internal/statcast"
)

// ContingencyTable cross-tabulates observed pitch frequency. Rows are pitch
// types, columns are counts, both sorted. Cells[i][j] is how often
// PitchTypes[i] was thrown at Counts[j].
type ContingencyTable struct {
	PitchTypes []string
	Counts     []string
	Cells      [][]int

	rowIdx map[string]int
	colIdx map[string]int
}

// Crosstab builds a ContingencyTable from a season of pitches. Pitch types
// and counts absent from the data produce no rows or columns.
func Crosstab(pitches []statcast.Pitch) *ContingencyTable {
	rowIdx := map[string]int{}
	colIdx := map[string]int{}
	for _, p := range pitches {
		if _, ok := rowIdx[p.Type]; !ok {
			rowIdx[p.Type] = 0
		}
		if _, ok := colIdx[p.Count]; !ok {
			colIdx[p.Count] = 0
		}
	}
	tab := &ContingencyTable{
		PitchTypes: sortedKeys(rowIdx),
		Counts:     sortedKeys(colIdx),
		rowIdx:     rowIdx,
		colIdx:     colIdx,
	}
	for i, t := range tab.PitchTypes {
		rowIdx[t] = i
	}
	for j, c := range tab.Counts {
		colIdx[c] = j
	}
	tab.Cells = make([][]int, len(tab.PitchTypes))
	for i := range tab.Cells {
		tab.Cells[i] = make([]int, len(tab.Counts))
	}
	for _, p := range pitches {
		tab.Cells[rowIdx[p.Type]][colIdx[p.Count]]++
	}
	return tab
}

// Cell returns the observed frequency for a pitch type and count, 0 if either
// label is absent.
func (t *ContingencyTable) Cell(pitchType, count string) int {
	i, ok := t.rowIdx[pitchType]
	if !ok {
		return 0
	}
	j, ok := t.colIdx[count]
	if !ok {
		return 0
	}
	return t.Cells[i][j]
}

// Total is the grand total of all cells, equal to the number of records the
// table was built from.
func (t *ContingencyTable) Total() int {
	n := 0
	for _, row := range t.Cells {
		for _, c := range row {
			n += c
		}
	}
	return n
}

// RowTotals returns the marginal total per pitch type.
func (t *ContingencyTable) RowTotals() []int {
	totals := make([]int, len(t.PitchTypes))
	for i, row := range t.Cells {
		for _, c := range row {
			totals[i] += c
		}
	}
	return totals
}

// ColTotals returns the marginal total per count.
func (t *ContingencyTable) ColTotals() []int {
	totals := make([]int, len(t.Counts))
	for _, row := range t.Cells {
		for j, c := range row {
			totals[j] += c
		}
	}
	return totals
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
