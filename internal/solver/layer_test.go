package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/squaredaway/internal/clues"
	"svw.info/squaredaway/internal/domain"
)

func TestSolveLayerByPropagationOnly(t *testing.T) {
	rows := []domain.Clue{{2}, {1}, {3}}
	cols := []domain.Clue{{1, 1}, {1, 1}, {2}}

	b, stats, err := NewLayerSolver(NewSweep()).SolveLayer(context.Background(), rows, cols, 3, 3)
	require.NoError(t, err)
	require.Equal(t, []string{"##.", "..#", "###"}, b.CellRows())
	assert.Zero(t, stats.Nodes, "fully clue-determined layer should not need guessing")
	assert.Positive(t, stats.Passes)
}

func TestSolveLayerSingleCell(t *testing.T) {
	b, stats, err := NewLayerSolver(NewSweep()).SolveLayer(context.Background(),
		[]domain.Clue{{1}}, []domain.Clue{{1}}, 1, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"#"}, b.CellRows())
	assert.Zero(t, stats.Nodes)
}

func TestSolveLayerNeedsSearch(t *testing.T) {
	// Two valid assignments; the solver must return one of them.
	rows := []domain.Clue{{1}, {1}}
	cols := []domain.Clue{{1}, {1}}

	b, stats, err := NewLayerSolver(NewSweep()).SolveLayer(context.Background(), rows, cols, 2, 2)
	require.NoError(t, err)
	assert.Positive(t, stats.Nodes)
	// Guessing Set first at the first Unknown makes the result stable.
	require.Equal(t, []string{"#.", ".#"}, b.CellRows())
}

func TestSolveLayerInvalidClues(t *testing.T) {
	ctx := context.Background()
	s := NewLayerSolver(NewSweep())

	cases := []struct {
		name          string
		rows, cols    []domain.Clue
		width, height int
	}{
		{"zero width", []domain.Clue{{1}}, nil, 0, 1},
		{"row count mismatch", []domain.Clue{{1}}, []domain.Clue{{1}, {1}}, 2, 2},
		{"col count mismatch", []domain.Clue{{1}, {1}}, []domain.Clue{{1}}, 2, 2},
		{"clue exceeds line", []domain.Clue{{5}}, []domain.Clue{{1}, {0}, {0}}, 3, 1},
		{"negative run", []domain.Clue{{-1}}, []domain.Clue{{0}}, 1, 1},
		{"min span too wide", []domain.Clue{{2, 2}, {0}, {0}, {0}}, []domain.Clue{{1}, {0}, {1}, {0}}, 4, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := s.SolveLayer(ctx, tc.rows, tc.cols, tc.width, tc.height)
			require.ErrorIs(t, err, ErrInvalidClues)
		})
	}
}

func TestSolveLayerUnsolvable(t *testing.T) {
	// Rows demand a set cell in each row, columns forbid any.
	rows := []domain.Clue{{1}, {1}}
	cols := []domain.Clue{{0}, {0}}

	_, _, err := NewLayerSolver(NewSweep()).SolveLayer(context.Background(), rows, cols, 2, 2)
	require.ErrorIs(t, err, ErrUnsolvable)
	assert.NotErrorIs(t, err, ErrInvalidClues)
}

func TestSolveLayerCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewLayerSolver(NewSweep()).SolveLayer(ctx,
		[]domain.Clue{{1}}, []domain.Clue{{1}}, 1, 1)
	require.ErrorIs(t, err, context.Canceled)
}

// A stalled propagation must be a true fixpoint: running it again
// commits nothing and reports no progress.
func TestPropagateIdempotentAtFixpoint(t *testing.T) {
	run := &layerRun{
		engine: NewSweep(),
		ly: &domain.Layer{
			Board: domain.NewBoard(2, 2),
			Rows:  []domain.Clue{{1}, {1}},
			Cols:  []domain.Clue{{1}, {1}},
		},
	}
	outcome, err := run.propagate()
	require.NoError(t, err)
	require.Equal(t, OutcomeStalled, outcome)
	before := run.ly.Board.CellRows()

	outcome, err = run.propagate()
	require.NoError(t, err)
	require.Equal(t, OutcomeStalled, outcome)
	require.Equal(t, before, run.ly.Board.CellRows())
}

// Extracting clues from a finished layer and solving them again must
// reproduce the layer, provided the clues determine it uniquely.
func TestSolveLayerRoundTrip(t *testing.T) {
	for _, eng := range lineEngines {
		t.Run(eng.Name(), func(t *testing.T) {
			want, err := domain.ParseBoard([]string{
				"#####",
				"#....",
				"#####",
				"....#",
				"#####",
			})
			require.NoError(t, err)

			rows := make([]domain.Clue, want.Height)
			cols := make([]domain.Clue, want.Width)
			buf := make([]domain.CellState, 5)
			for r := range rows {
				rows[r] = clues.FromCells(want.Row(r, buf))
			}
			for c := range cols {
				cols[c] = clues.FromCells(want.Col(c, buf))
			}

			got, _, err := NewLayerSolver(eng).SolveLayer(context.Background(), rows, cols, 5, 5)
			require.NoError(t, err)
			require.Equal(t, want.CellRows(), got.CellRows())
		})
	}
}
