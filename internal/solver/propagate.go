package solver

import (
	"fmt"

	"svw.info/squaredaway/internal/clues"
	"svw.info/squaredaway/internal/domain"
)

// Outcome reports where a propagation run ended.
type Outcome int

const (
	// OutcomeStalled: fixpoint reached with Unknown cells remaining.
	OutcomeStalled Outcome = iota
	// OutcomeSolved: every cell determined and every clue verified.
	OutcomeSolved
)

// layerRun carries the mutable state of one layer solve so that a
// LayerSolver stays stateless and safe for concurrent use.
type layerRun struct {
	engine LineEngine
	ly     *domain.Layer
	nodes  int
	passes int
}

// propagate drives the line engine across every row and column until a
// full pass commits nothing. Rows then columns, ascending index, so
// identical input always walks identically. On ErrContradiction it
// aborts mid-pass; cells committed earlier in the pass stay (the
// search layer owns rollback).
func (s *layerRun) propagate() (Outcome, error) {
	b := s.ly.Board
	buf := make([]domain.CellState, max(b.Width, b.Height))
	for {
		s.passes++
		changed := false
		for r := 0; r < b.Height; r++ {
			line := b.Row(r, buf[:b.Width])
			ch, err := s.engine.SolveLine(s.ly.Rows[r], line)
			if err != nil {
				return OutcomeStalled, fmt.Errorf("row %d: %w", r, err)
			}
			if ch {
				b.SetRow(r, line)
				changed = true
			}
		}
		for c := 0; c < b.Width; c++ {
			line := b.Col(c, buf[:b.Height])
			ch, err := s.engine.SolveLine(s.ly.Cols[c], line)
			if err != nil {
				return OutcomeStalled, fmt.Errorf("col %d: %w", c, err)
			}
			if ch {
				b.SetCol(c, line)
				changed = true
			}
		}
		if b.Unknowns() == 0 {
			if err := s.verify(); err != nil {
				return OutcomeStalled, err
			}
			return OutcomeSolved, nil
		}
		if !changed {
			return OutcomeStalled, nil
		}
	}
}

// verify re-derives every line's clue from the finished board. The
// line engine cannot finish a line inconsistently, so this is a cheap
// belt-and-braces check.
func (s *layerRun) verify() error {
	b := s.ly.Board
	buf := make([]domain.CellState, max(b.Width, b.Height))
	for r := 0; r < b.Height; r++ {
		if got := clues.FromCells(b.Row(r, buf[:b.Width])); !clueEqual(got, s.ly.Rows[r]) {
			return fmt.Errorf("%w: row %d solved to %v, clued %v", ErrContradiction, r, got, s.ly.Rows[r])
		}
	}
	for c := 0; c < b.Width; c++ {
		if got := clues.FromCells(b.Col(c, buf[:b.Height])); !clueEqual(got, s.ly.Cols[c]) {
			return fmt.Errorf("%w: col %d solved to %v, clued %v", ErrContradiction, c, got, s.ly.Cols[c])
		}
	}
	return nil
}

func clueEqual(a, b domain.Clue) bool {
	a, b = a.Normalize(), b.Normalize()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
