package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"svw.info/squaredaway/internal/domain"
	"svw.info/squaredaway/internal/ports"
)

// LayerSolver resolves one boolean layer from its row and column clues.
// It is stateless; one instance may serve concurrent solves.
type LayerSolver struct {
	engine LineEngine
}

func NewLayerSolver(engine LineEngine) *LayerSolver {
	return &LayerSolver{engine: engine}
}

// EngineByName selects a line engine the way the serve/solve commands
// spell it. Unknown names fall back to the sweep engine.
func EngineByName(name string) LineEngine {
	if name == "enum" {
		return NewEnum()
	}
	return NewSweep()
}

// SolveLayer validates the clues, then runs propagation + search until
// the board is fully determined. Fails with ErrInvalidClues before any
// solving work, ErrUnsolvable when no assignment satisfies the clues.
func (s *LayerSolver) SolveLayer(ctx context.Context, rows, cols []domain.Clue, width, height int) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if err := ValidateClues(rows, cols, width, height); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}

	run := &layerRun{
		engine: s.engine,
		ly: &domain.Layer{
			Board: domain.NewBoard(width, height),
			Rows:  normalizeAll(rows),
			Cols:  normalizeAll(cols),
		},
	}
	err := run.search(ctx)
	st := ports.Stats{Nodes: run.nodes, Passes: run.passes, Duration: time.Since(start)}
	if err != nil {
		// A contradiction escaping the search means every choice point
		// is exhausted: the clue pair admits no assignment.
		if errors.Is(err, ErrContradiction) {
			err = fmt.Errorf("%w: %v", ErrUnsolvable, err)
		}
		return nil, st, err
	}
	return run.ly.Board, st, nil
}

// ValidateClues checks list lengths and per-clue feasibility: runs are
// positive (a lone 0 means the empty line) and each clue's minimum span
// fits its line.
func ValidateClues(rows, cols []domain.Clue, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidClues, width, height)
	}
	if len(rows) != height {
		return fmt.Errorf("%w: %d row clues for height %d", ErrInvalidClues, len(rows), height)
	}
	if len(cols) != width {
		return fmt.Errorf("%w: %d col clues for width %d", ErrInvalidClues, len(cols), width)
	}
	for r, c := range rows {
		if err := checkClue(c, width); err != nil {
			return fmt.Errorf("row %d: %w", r, err)
		}
	}
	for i, c := range cols {
		if err := checkClue(c, height); err != nil {
			return fmt.Errorf("col %d: %w", i, err)
		}
	}
	return nil
}

func checkClue(c domain.Clue, lineLen int) error {
	c = c.Normalize()
	if c.Empty() {
		return nil
	}
	for _, run := range c {
		if run <= 0 {
			return fmt.Errorf("%w: run length %d in %v", ErrInvalidClues, run, c)
		}
	}
	if span := c.MinSpan(); span > lineLen {
		return fmt.Errorf("%w: clue %v needs %d cells, line has %d", ErrInvalidClues, c, span, lineLen)
	}
	return nil
}

func normalizeAll(cs []domain.Clue) []domain.Clue {
	out := make([]domain.Clue, len(cs))
	for i, c := range cs {
		out[i] = c.Normalize()
	}
	return out
}
