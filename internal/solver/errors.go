package solver

import "errors"

// The solver error taxonomy. Callers discriminate with errors.Is.
var (
	// ErrInvalidClues: structurally bad input (wrong clue-list length,
	// non-positive run, or a clue that cannot fit its line). Detected
	// before any solving work.
	ErrInvalidClues = errors.New("invalid clues")

	// ErrContradiction: a line admits no arrangement consistent with
	// its currently fixed cells. Internal to propagation and search;
	// it only escapes when no choice point remains.
	ErrContradiction = errors.New("contradiction")

	// ErrUnsolvable: the clue pair admits no assignment at all. A
	// legitimate terminal outcome, not a bug.
	ErrUnsolvable = errors.New("unsolvable")
)
