package solver

import (
	"fmt"

	"svw.info/squaredaway/internal/domain"
)

// A LineEngine fixes every cell of one line whose value is the same in
// all arrangements of the clue consistent with the already-fixed cells.
// It mutates line in place and reports whether anything changed; the
// caller owns committing the line back to a board. ErrContradiction
// means no arrangement fits.
type LineEngine interface {
	Name() string
	SolveLine(clue domain.Clue, line []domain.CellState) (bool, error)
}

// Sweep derives forced cells from the leftmost and rightmost
// justification of the clue's runs: the overlap of a run's two extreme
// placements is forced set, and cells outside every run's feasible
// span are forced unset. It never materializes arrangements, so long
// lines stay cheap.
type Sweep struct{}

func NewSweep() *Sweep { return &Sweep{} }

func (*Sweep) Name() string { return "sweep" }

func (*Sweep) SolveLine(clue domain.Clue, line []domain.CellState) (bool, error) {
	if clue.Empty() {
		return clearLine(line)
	}
	runs := []int(clue)
	n := len(line)

	left, ok := leftmost(runs, line)
	if !ok {
		return false, fmt.Errorf("%w: clue %v does not fit", ErrContradiction, clue)
	}
	right := rightmost(runs, line)

	changed := false
	force := func(i int, v domain.CellState) {
		if line[i] == domain.CellUnknown {
			line[i] = v
			changed = true
		}
	}

	// Overlap of each run's extreme placements is always covered.
	for j, length := range runs {
		for i := right[j]; i <= left[j]+length-1; i++ {
			force(i, domain.CellSet)
		}
	}
	// Cells no run can ever reach are always blank.
	covered := make([]bool, n)
	for j, length := range runs {
		for i := left[j]; i <= right[j]+length-1; i++ {
			covered[i] = true
		}
	}
	for i := 0; i < n; i++ {
		if !covered[i] {
			force(i, domain.CellUnset)
		}
	}
	return changed, nil
}

// clearLine handles the [0] clue: every cell is blank.
func clearLine(line []domain.CellState) (bool, error) {
	changed := false
	for i, v := range line {
		switch v {
		case domain.CellSet:
			return false, fmt.Errorf("%w: set cell %d on an empty line", ErrContradiction, i)
		case domain.CellUnknown:
			line[i] = domain.CellUnset
			changed = true
		}
	}
	return changed, nil
}

// leftmost computes the smallest feasible start of every run, honoring
// fixed cells: runs may not cross unset cells, every set cell must end
// up inside a run, and consecutive runs keep a blank between them.
// Failed (position, run) states are memoized so the scan stays linear
// in practice.
func leftmost(runs []int, line []domain.CellState) ([]int, bool) {
	n := len(line)
	k := len(runs)
	starts := make([]int, k)

	// spans[j] = minimum width for runs j.. with separating blanks.
	spans := make([]int, k+1)
	for j := k - 1; j >= 0; j-- {
		spans[j] = spans[j+1] + runs[j]
		if j < k-1 {
			spans[j]++
		}
	}

	failed := make(map[int]bool)
	var place func(pos, j int) bool
	place = func(pos, j int) bool {
		key := pos*(k+1) + j
		if failed[key] {
			return false
		}
		if j == k {
			for i := pos; i < n; i++ {
				if line[i] == domain.CellSet {
					failed[key] = true
					return false
				}
			}
			return true
		}
		for s := pos; s+spans[j] <= n; s++ {
			if canPlace(line, s, runs[j]) && place(s+runs[j]+1, j+1) {
				starts[j] = s
				return true
			}
			if line[s] == domain.CellSet {
				// A later start would leave this set cell uncovered.
				break
			}
		}
		failed[key] = true
		return false
	}

	if !place(0, 0) {
		return nil, false
	}
	return starts, true
}

// rightmost mirrors leftmost on the reversed line. The caller must have
// established feasibility via leftmost first.
func rightmost(runs []int, line []domain.CellState) []int {
	n := len(line)
	k := len(runs)
	rev := make([]domain.CellState, n)
	for i := range rev {
		rev[i] = line[n-1-i]
	}
	revRuns := make([]int, k)
	for j := range revRuns {
		revRuns[j] = runs[k-1-j]
	}
	revStarts, _ := leftmost(revRuns, rev)
	starts := make([]int, k)
	for j := range starts {
		starts[j] = n - revStarts[k-1-j] - runs[j]
	}
	return starts
}

// canPlace reports whether a run of the given length may start at s:
// no unset cell inside it and no set cell butting against its end.
func canPlace(line []domain.CellState, s, length int) bool {
	for i := s; i < s+length; i++ {
		if line[i] == domain.CellUnset {
			return false
		}
	}
	if end := s + length; end < len(line) && line[end] == domain.CellSet {
		return false
	}
	return true
}
