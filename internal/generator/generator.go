package generator

import "svw.info/squaredaway/internal/ports"

// CheckedGenerator creates puzzles whose clues the provided Solver can
// resolve without the source picture.
type CheckedGenerator struct {
	Solver ports.Solver
}

// NewCheckedGenerator wires a generator that re-solves every candidate
// through the given solver.
func NewCheckedGenerator(s ports.Solver) *CheckedGenerator {
	return &CheckedGenerator{Solver: s}
}
