package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"svw.info/squaredaway/internal/clues"
	"svw.info/squaredaway/internal/domain"
	"svw.info/squaredaway/internal/ports"
)

// generateBudget caps how long Generate keeps rerolling candidates
// before settling for the solver's own answer as the recorded solution.
const generateBudget = 900 * time.Millisecond

// FromGrid extracts both clue sets from an authored grid and records
// the grid itself as the solution.
func (g *CheckedGenerator) FromGrid(ctx context.Context, grid domain.Grid) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if err := grid.Validate(); err != nil {
		return nil, ports.Stats{}, err
	}
	p := &domain.Puzzle{
		ID:        uuid.NewString(),
		Width:     grid.Width(),
		Height:    grid.Height(),
		Shading:   clues.Shading(grid),
		Erasing:   clues.Erasing(grid),
		Solution:  grid.Strings(),
		CreatedAt: time.Now().UnixNano(),
	}
	return p, ports.Stats{Duration: time.Since(start)}, nil
}

// Generate rolls seeded random two-phase pictures at the given shading/
// erasing density and keeps the first one whose clues the solver
// reproduces exactly — i.e. the clues alone pin down the picture. If
// the budget expires first, the last candidate is returned with the
// solver's answer recorded as its solution (still consistent with the
// clues, just not the rolled picture).
func (g *CheckedGenerator) Generate(ctx context.Context, seed int64, width, height int, density float64) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if width <= 0 || height <= 0 {
		return nil, ports.Stats{}, fmt.Errorf("bad dimensions %dx%d", width, height)
	}
	if density <= 0 || density >= 1 {
		density = 0.5
	}
	rng := rand.New(rand.NewSource(seed))
	deadline := start.Add(generateBudget)

	var stats ports.Stats
	for {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		grid := rollGrid(rng, width, height, density)
		p := &domain.Puzzle{
			ID:        uuid.NewString(),
			Seed:      seed,
			Width:     width,
			Height:    height,
			Shading:   clues.Shading(grid),
			Erasing:   clues.Erasing(grid),
			CreatedAt: time.Now().UnixNano(),
		}
		solved, st, err := g.Solver.Solve(ctx, p)
		stats = stats.Add(st)
		if err != nil {
			return nil, stats, fmt.Errorf("candidate did not solve: %w", err)
		}
		if solved.String() == grid.String() || time.Now().After(deadline) {
			p.Solution = solved.Strings()
			stats.Duration = time.Since(start)
			return p, stats, nil
		}
	}
}

// rollGrid samples each cell's two phase memberships independently.
func rollGrid(rng *rand.Rand, width, height int, density float64) domain.Grid {
	g := make(domain.Grid, height)
	for r := 0; r < height; r++ {
		g[r] = make([]rune, width)
		for c := 0; c < width; c++ {
			g[r][c] = domain.MergeSymbol(rng.Float64() < density, rng.Float64() < density)
		}
	}
	return g
}
