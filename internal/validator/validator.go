package validator

import (
	"context"
	"fmt"

	"svw.info/squaredaway/internal/clues"
	"svw.info/squaredaway/internal/domain"
)

// FastValidator re-derives the run lengths of every line of a complete
// grid and compares them to the puzzle's clue sets.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, g domain.Grid, p *domain.Puzzle) (bool, []domain.LineRef, error) {
	if err := g.Validate(); err != nil {
		return false, nil, err
	}
	if g.Width() != p.Width || g.Height() != p.Height {
		return false, nil, fmt.Errorf("grid is %dx%d, puzzle is %dx%d", g.Width(), g.Height(), p.Width, p.Height)
	}
	for _, cs := range []domain.ClueSet{p.Shading, p.Erasing} {
		if len(cs.Rows) != p.Height || len(cs.Cols) != p.Width {
			return false, nil, fmt.Errorf("clue set has %d row / %d col clues for a %dx%d puzzle",
				len(cs.Rows), len(cs.Cols), p.Width, p.Height)
		}
	}

	conf := make([]domain.LineRef, 0, 8)
	check := func(phase domain.Phase, cs domain.ClueSet, member func(r, c int) bool) {
		line := make([]bool, g.Width())
		for r := 0; r < g.Height(); r++ {
			for c := 0; c < g.Width(); c++ {
				line[c] = member(r, c)
			}
			if !clueEqual(clues.RunLengths(line), cs.Rows[r]) {
				conf = append(conf, domain.LineRef{Phase: phase, Axis: domain.AxisRow, Index: r})
			}
		}
		line = make([]bool, g.Height())
		for c := 0; c < g.Width(); c++ {
			for r := 0; r < g.Height(); r++ {
				line[r] = member(r, c)
			}
			if !clueEqual(clues.RunLengths(line), cs.Cols[c]) {
				conf = append(conf, domain.LineRef{Phase: phase, Axis: domain.AxisCol, Index: c})
			}
		}
	}
	check(domain.PhaseShading, p.Shading, g.Shaded)
	check(domain.PhaseErasing, p.Erasing, g.Erased)
	return len(conf) == 0, conf, nil
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
