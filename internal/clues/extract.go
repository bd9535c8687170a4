// Package clues converts between text grids and the run-length clue
// sets the solver consumes.
package clues

import (
	"svw.info/squaredaway/internal/domain"
)

// RunLengths extracts the run-length clue of one boolean line. A line
// with no run yields the canonical [0] clue.
func RunLengths(line []bool) domain.Clue {
	clue := domain.Clue{}
	count := 0
	for _, set := range line {
		if set {
			count++
		} else if count > 0 {
			clue = append(clue, count)
			count = 0
		}
	}
	if count > 0 {
		clue = append(clue, count)
	}
	return clue.Normalize()
}

// FromCells extracts the clue of a fully determined cell line. Unknown
// cells are treated as unset.
func FromCells(line []domain.CellState) domain.Clue {
	bools := make([]bool, len(line))
	for i, v := range line {
		bools[i] = v == domain.CellSet
	}
	return RunLengths(bools)
}

// Shading derives the shading-phase clue set: cells drawn '1' or 'X'.
func Shading(g domain.Grid) domain.ClueSet {
	return extract(g, g.Shaded)
}

// Erasing derives the erasing-phase clue set: cells drawn '2' or 'X'.
func Erasing(g domain.Grid) domain.ClueSet {
	return extract(g, g.Erased)
}

func extract(g domain.Grid, member func(r, c int) bool) domain.ClueSet {
	height, width := g.Height(), g.Width()
	cs := domain.ClueSet{
		Rows: make([]domain.Clue, height),
		Cols: make([]domain.Clue, width),
	}
	line := make([]bool, width)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			line[c] = member(r, c)
		}
		cs.Rows[r] = RunLengths(line)
	}
	line = make([]bool, height)
	for c := 0; c < width; c++ {
		for r := 0; r < height; r++ {
			line[r] = member(r, c)
		}
		cs.Cols[c] = RunLengths(line)
	}
	return cs
}

// LayerFromGrid projects one phase of a grid onto a fully determined
// board, for round-trip checks against the solver.
func LayerFromGrid(g domain.Grid, phase domain.Phase) *domain.Board {
	member := g.Shaded
	if phase == domain.PhaseErasing {
		member = g.Erased
	}
	b := domain.NewBoard(g.Width(), g.Height())
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			if member(r, c) {
				b.Set(r, c, domain.CellSet)
			} else {
				b.Set(r, c, domain.CellUnset)
			}
		}
	}
	return b
}
