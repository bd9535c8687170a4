package domain

// Clue is the ordered run lengths of one line. The single-element clue
// [0] means the line has no run at all.
type Clue []int

// Empty reports whether the clue describes a line with no run.
func (c Clue) Empty() bool {
	return len(c) == 0 || (len(c) == 1 && c[0] == 0)
}

// MinSpan is the shortest line that can hold the clue's runs with one
// blank between consecutive runs.
func (c Clue) MinSpan() int {
	if c.Empty() {
		return 0
	}
	span := len(c) - 1
	for _, r := range c {
		span += r
	}
	return span
}

// Normalize maps the empty slice onto the canonical [0] form.
func (c Clue) Normalize() Clue {
	if len(c) == 0 {
		return Clue{0}
	}
	return c
}

// ClueSet holds the row and column clues of one layer.
type ClueSet struct {
	Rows []Clue `json:"rows"`
	Cols []Clue `json:"cols"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// LineRef identifies one clued line of a puzzle.
type LineRef struct {
	Phase Phase `json:"phase"`
	Axis  Axis  `json:"axis"`
	Index int   `json:"index"`
}

// Hint describes the next deducible step for the UI.
type Hint struct {
	Message string      `json:"message,omitempty"`
	Phase   Phase       `json:"phase"`
	Axis    Axis        `json:"axis"`
	Index   int         `json:"index"`
	Cells   []CellCoord `json:"cells,omitempty"`
}

// Puzzle is a persisted two-phase nonogram with metadata. Solution is
// optional; when present it holds the four-symbol grid rows.
type Puzzle struct {
	ID        string   `json:"id,omitempty"`
	Seed      int64    `json:"seed,omitempty"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	Shading   ClueSet  `json:"shading"`
	Erasing   ClueSet  `json:"erasing"`
	Solution  []string `json:"solution,omitempty"`
	CreatedAt int64    `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	CreatedAt int64  `json:"createdAt"`
}
