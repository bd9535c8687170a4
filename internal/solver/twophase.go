package solver

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"svw.info/squaredaway/internal/domain"
	"svw.info/squaredaway/internal/ports"
)

// TwoPhase solves the shading and erasing layers of a puzzle and merges
// them into the four-symbol grid. The layers share nothing mutable, so
// they run on parallel goroutines.
type TwoPhase struct {
	layers *LayerSolver
}

func NewTwoPhase(engine LineEngine) *TwoPhase {
	return &TwoPhase{layers: NewLayerSolver(engine)}
}

// SolveLayer exposes the single-layer entry point.
func (t *TwoPhase) SolveLayer(ctx context.Context, rows, cols []domain.Clue, width, height int) (*domain.Board, ports.Stats, error) {
	return t.layers.SolveLayer(ctx, rows, cols, width, height)
}

// Solve resolves both phases of p independently and merges the results.
func (t *TwoPhase) Solve(ctx context.Context, p *domain.Puzzle) (domain.Grid, ports.Stats, error) {
	start := time.Now()

	var shaded, erased *domain.Board
	var shadeStats, eraseStats ports.Stats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, st, err := t.layers.SolveLayer(gctx, p.Shading.Rows, p.Shading.Cols, p.Width, p.Height)
		shaded, shadeStats = b, st
		if err != nil {
			return fmt.Errorf("shading layer: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		b, st, err := t.layers.SolveLayer(gctx, p.Erasing.Rows, p.Erasing.Cols, p.Width, p.Height)
		erased, eraseStats = b, st
		if err != nil {
			return fmt.Errorf("erasing layer: %w", err)
		}
		return nil
	})
	err := g.Wait()
	st := shadeStats.Add(eraseStats)
	st.Duration = time.Since(start)
	if err != nil {
		return nil, st, err
	}
	return domain.MergeLayers(shaded, erased), st, nil
}

// Check solves p and diffs the merged grid against a reference. The
// mismatch list is a diagnostic, not an error: a puzzle with more than
// one valid assignment can legitimately solve to a different picture.
func (t *TwoPhase) Check(ctx context.Context, p *domain.Puzzle, reference domain.Grid) (domain.Grid, []domain.CellCoord, ports.Stats, error) {
	if err := reference.Validate(); err != nil {
		return nil, nil, ports.Stats{}, fmt.Errorf("%w: reference grid: %v", ErrInvalidClues, err)
	}
	grid, st, err := t.Solve(ctx, p)
	if err != nil {
		return nil, nil, st, err
	}
	if reference.Height() != grid.Height() || reference.Width() != grid.Width() {
		return grid, nil, st, fmt.Errorf("%w: reference is %dx%d, solved %dx%d",
			ErrInvalidClues, reference.Width(), reference.Height(), grid.Width(), grid.Height())
	}
	return grid, grid.Diff(reference), st, nil
}
