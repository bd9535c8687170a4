package solver

import (
	"context"
	"fmt"

	"svw.info/squaredaway/internal/domain"
)

// search runs depth-first search with propagation as the pruning step
// at every node. When propagation stalls it guesses the first Unknown
// cell in row-major order, set before unset, snapshotting the board so
// a failed branch can roll back. Exhausting both branches surfaces as
// ErrUnsolvable.
func (s *layerRun) search(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	outcome, err := s.propagate()
	if err != nil {
		return err
	}
	if outcome == OutcomeSolved {
		return nil
	}

	row, col, _ := s.ly.Board.FirstUnknown()
	snap := s.ly.Board.Snapshot()
	for _, guess := range [2]domain.CellState{domain.CellSet, domain.CellUnset} {
		s.nodes++
		s.ly.Board.Set(row, col, guess)
		err := s.search(ctx)
		if err == nil {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		s.ly.Board.Restore(snap)
	}
	return fmt.Errorf("%w: both values fail at row %d col %d", ErrUnsolvable, row, col)
}
