package domain

// CellState is the tri-state value of one board cell.
type CellState uint8

const (
	CellUnknown CellState = iota
	CellSet
	CellUnset
)

// Phase identifies one of the two clue layers of a puzzle.
type Phase int

const (
	PhaseShading Phase = iota // cells drawn as '1' or 'X'
	PhaseErasing              // cells drawn as '2' or 'X'
)

func (p Phase) String() string {
	if p == PhaseErasing {
		return "erasing"
	}
	return "shading"
}

// Axis distinguishes row lines from column lines.
type Axis int

const (
	AxisRow Axis = iota
	AxisCol
)

func (a Axis) String() string {
	if a == AxisCol {
		return "col"
	}
	return "row"
}

// SizeClass buckets puzzles by dimension for storage layout.
type SizeClass int

const (
	SizeSmall SizeClass = iota
	SizeMedium
	SizeLarge
)

// SizeClassFor classifies a puzzle by its longer side.
func SizeClassFor(width, height int) SizeClass {
	side := width
	if height > side {
		side = height
	}
	switch {
	case side <= 10:
		return SizeSmall
	case side <= 20:
		return SizeMedium
	default:
		return SizeLarge
	}
}

func (s SizeClass) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeLarge:
		return "large"
	default:
		return "medium"
	}
}
