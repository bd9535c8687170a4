package hint

import (
	"context"
	"fmt"

	"svw.info/squaredaway/internal/domain"
	"svw.info/squaredaway/internal/solver"
)

// ForcedCells implements a minimal Hinter: it scans lines in order and
// suggests the first one whose clue forces cells the player has not
// placed yet.
type ForcedCells struct {
	engine solver.LineEngine
}

func NewForcedCells(engine solver.LineEngine) *ForcedCells {
	return &ForcedCells{engine: engine}
}

// Hint returns the first row or column with newly deducible cells on
// the player's partial board for one phase. A line that contradicts
// its clue is reported as a hint too, so the UI can flag the mistake.
func (h *ForcedCells) Hint(ctx context.Context, cs domain.ClueSet, b *domain.Board, phase domain.Phase) (domain.Hint, bool, error) {
	if len(cs.Rows) != b.Height || len(cs.Cols) != b.Width {
		return domain.Hint{}, false, fmt.Errorf("clue set does not match a %dx%d board", b.Width, b.Height)
	}
	buf := make([]domain.CellState, max(b.Width, b.Height))

	for r := 0; r < b.Height; r++ {
		if err := ctx.Err(); err != nil {
			return domain.Hint{}, false, err
		}
		line := b.Row(r, buf[:b.Width])
		if hh, ok := h.lineHint(cs.Rows[r], line, phase, domain.AxisRow, r, func(i int) domain.CellCoord {
			return domain.CellCoord{Row: r, Col: i}
		}); ok {
			return hh, true, nil
		}
	}
	for c := 0; c < b.Width; c++ {
		if err := ctx.Err(); err != nil {
			return domain.Hint{}, false, err
		}
		line := b.Col(c, buf[:b.Height])
		if hh, ok := h.lineHint(cs.Cols[c], line, phase, domain.AxisCol, c, func(i int) domain.CellCoord {
			return domain.CellCoord{Row: i, Col: c}
		}); ok {
			return hh, true, nil
		}
	}
	return domain.Hint{}, false, nil
}

func (h *ForcedCells) lineHint(clue domain.Clue, line []domain.CellState, phase domain.Phase, axis domain.Axis, index int, coord func(i int) domain.CellCoord) (domain.Hint, bool) {
	before := append([]domain.CellState(nil), line...)
	changed, err := h.engine.SolveLine(clue.Normalize(), line)
	if err != nil {
		return domain.Hint{
			Message: fmt.Sprintf("%s %d conflicts with its clue %v", axis, index, clue.Normalize()),
			Phase:   phase,
			Axis:    axis,
			Index:   index,
		}, true
	}
	if !changed {
		return domain.Hint{}, false
	}
	var cells []domain.CellCoord
	for i := range line {
		if line[i] != before[i] {
			cells = append(cells, coord(i))
		}
	}
	return domain.Hint{
		Message: fmt.Sprintf("%s %d: clue %v determines %d more cell(s)", axis, index, clue.Normalize(), len(cells)),
		Phase:   phase,
		Axis:    axis,
		Index:   index,
		Cells:   cells,
	}, true
}
