package solver

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"svw.info/squaredaway/internal/domain"
	"svw.info/squaredaway/internal/ports"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// twoPhasePuzzle is clue-determined in both layers; it solves to
//
//	X1-
//	2-1
//	X11
func twoPhasePuzzle() *domain.Puzzle {
	return &domain.Puzzle{
		Width:  3,
		Height: 3,
		Shading: domain.ClueSet{
			Rows: []domain.Clue{{2}, {1}, {3}},
			Cols: []domain.Clue{{1, 1}, {1, 1}, {2}},
		},
		Erasing: domain.ClueSet{
			Rows: []domain.Clue{{1}, {1}, {1}},
			Cols: []domain.Clue{{3}, {0}, {0}},
		},
	}
}

func TestTwoPhaseSolve(t *testing.T) {
	grid, stats, err := NewTwoPhase(NewSweep()).Solve(context.Background(), twoPhasePuzzle())
	require.NoError(t, err)
	require.Equal(t, []string{"X1-", "2-1", "X11"}, grid.Strings())
	require.Positive(t, stats.Passes)
	require.Positive(t, stats.Duration)
}

func TestTwoPhaseSolveLayerFailurePropagates(t *testing.T) {
	p := twoPhasePuzzle()
	// Break the erasing layer only: rows want a cell, columns forbid all.
	p.Erasing.Cols = []domain.Clue{{0}, {0}, {0}}

	_, _, err := NewTwoPhase(NewSweep()).Solve(context.Background(), p)
	require.ErrorIs(t, err, ErrUnsolvable)
	require.Contains(t, err.Error(), "erasing layer")
}

func TestMergeLayersAlphabet(t *testing.T) {
	shaded, err := domain.ParseBoard([]string{"##", ".."})
	require.NoError(t, err)
	erased, err := domain.ParseBoard([]string{"#.", "#."})
	require.NoError(t, err)

	got := domain.MergeLayers(shaded, erased)
	if diff := cmp.Diff([]string{"X1", "2-"}, got.Strings()); diff != "" {
		t.Fatalf("merged grid mismatch (-want +got):\n%s", diff)
	}
}

func TestTwoPhaseCheckMatch(t *testing.T) {
	ref := domain.GridFromStrings([]string{"X1-", "2-1", "X11"})

	grid, mismatches, _, err := NewTwoPhase(NewSweep()).Check(context.Background(), twoPhasePuzzle(), ref)
	require.NoError(t, err)
	require.Empty(t, mismatches)
	require.Equal(t, ref.Strings(), grid.Strings())
}

func TestTwoPhaseCheckReportsMismatchWithoutError(t *testing.T) {
	ref := domain.GridFromStrings([]string{"X1-", "2-1", "X1X"})

	_, mismatches, _, err := NewTwoPhase(NewSweep()).Check(context.Background(), twoPhasePuzzle(), ref)
	require.NoError(t, err)
	require.Equal(t, []domain.CellCoord{{Row: 2, Col: 2}}, mismatches)
}

func TestTwoPhaseCheckRejectsMalformedReference(t *testing.T) {
	tp := NewTwoPhase(NewSweep())

	// Ragged rows must be rejected up front, not crash the diff.
	ragged := domain.GridFromStrings([]string{"X1-", "2-1", "X1"})
	_, _, _, err := tp.Check(context.Background(), twoPhasePuzzle(), ragged)
	require.ErrorIs(t, err, ErrInvalidClues)

	_, _, _, err = tp.Check(context.Background(), twoPhasePuzzle(),
		domain.GridFromStrings([]string{"X1-", "2-1", "X1Z"}))
	require.ErrorIs(t, err, ErrInvalidClues)

	_, _, _, err = tp.Check(context.Background(), twoPhasePuzzle(), nil)
	require.ErrorIs(t, err, ErrInvalidClues)
}

func TestTwoPhaseCheckDimensionMismatch(t *testing.T) {
	ref := domain.GridFromStrings([]string{"X1", "2-"})

	_, _, _, err := NewTwoPhase(NewSweep()).Check(context.Background(), twoPhasePuzzle(), ref)
	require.ErrorIs(t, err, ErrInvalidClues)
}

var _ ports.Solver = (*TwoPhase)(nil)
