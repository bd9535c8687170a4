package ports

import (
	"context"
	"time"

	"svw.info/squaredaway/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Passes   int
	Duration time.Duration
}

// Add folds another operation's counters into s; duration is summed.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Nodes:    s.Nodes + o.Nodes,
		Passes:   s.Passes + o.Passes,
		Duration: s.Duration + o.Duration,
	}
}

// Solver solves two-phase puzzles and single layers from clues alone.
type Solver interface {
	// Solve resolves both phases of p and merges them into the
	// four-symbol grid.
	Solve(ctx context.Context, p *domain.Puzzle) (domain.Grid, Stats, error)
	// SolveLayer resolves one boolean layer.
	SolveLayer(ctx context.Context, rows, cols []domain.Clue, width, height int) (*domain.Board, Stats, error)
	// Check solves p and compares against a reference grid, returning
	// the cells where they disagree as a diagnostic.
	Check(ctx context.Context, p *domain.Puzzle, reference domain.Grid) (domain.Grid, []domain.CellCoord, Stats, error)
}

// Generator creates new puzzles.
type Generator interface {
	// FromGrid builds a puzzle (clue sets + recorded solution) out of
	// an authored grid.
	FromGrid(ctx context.Context, g domain.Grid) (*domain.Puzzle, Stats, error)
	// Generate builds a seeded random puzzle whose clues the solver
	// can resolve on their own.
	Generate(ctx context.Context, seed int64, width, height int, density float64) (*domain.Puzzle, Stats, error)
}

// Validator checks a complete grid against a puzzle's clue sets.
type Validator interface {
	Validate(ctx context.Context, g domain.Grid, p *domain.Puzzle) (ok bool, conflicts []domain.LineRef, err error)
}

// Hinter returns the next line with deducible cells for one phase.
type Hinter interface {
	Hint(ctx context.Context, cs domain.ClueSet, b *domain.Board, phase domain.Phase) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
