package solver

import (
	"fmt"

	"svw.info/squaredaway/internal/domain"
)

// Enum is the exhaustive line engine: it walks every arrangement of the
// clue's runs compatible with the fixed cells and keeps the cells all
// arrangements agree on. Quadratic-ish on wide lines, but a handy
// cross-check for the sweep engine and the algorithm of record for
// small puzzles.
type Enum struct{}

func NewEnum() *Enum { return &Enum{} }

func (*Enum) Name() string { return "enum" }

func (*Enum) SolveLine(clue domain.Clue, line []domain.CellState) (bool, error) {
	if clue.Empty() {
		return clearLine(line)
	}
	runs := []int(clue)
	n := len(line)

	spans := make([]int, len(runs)+1)
	for j := len(runs) - 1; j >= 0; j-- {
		spans[j] = spans[j+1] + runs[j]
		if j < len(runs)-1 {
			spans[j]++
		}
	}

	buf := make([]domain.CellState, n)
	var agreed []domain.CellState
	varies := make([]bool, n)

	merge := func() {
		if agreed == nil {
			agreed = append([]domain.CellState(nil), buf...)
			return
		}
		for i, v := range buf {
			if agreed[i] != v {
				varies[i] = true
			}
		}
	}

	var walk func(pos, j int)
	walk = func(pos, j int) {
		if j == len(runs) {
			for i := pos; i < n; i++ {
				if line[i] == domain.CellSet {
					return
				}
				buf[i] = domain.CellUnset
			}
			merge()
			return
		}
		for s := pos; s+spans[j] <= n; s++ {
			if canPlace(line, s, runs[j]) {
				for i := pos; i < s; i++ {
					buf[i] = domain.CellUnset
				}
				for i := s; i < s+runs[j]; i++ {
					buf[i] = domain.CellSet
				}
				next := s + runs[j]
				if next < n {
					buf[next] = domain.CellUnset
					walk(next+1, j+1)
				} else {
					walk(next, j+1)
				}
			}
			if line[s] == domain.CellSet {
				break
			}
		}
	}
	walk(0, 0)

	if agreed == nil {
		return false, fmt.Errorf("%w: clue %v does not fit", ErrContradiction, clue)
	}
	changed := false
	for i := range line {
		if line[i] == domain.CellUnknown && !varies[i] {
			line[i] = agreed[i]
			changed = true
		}
	}
	return changed, nil
}
