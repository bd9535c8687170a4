package domain

import (
	"fmt"
	"strings"
)

// Board is one boolean layer under construction. Cells live in a single
// flat array indexed row*width+col, so a write through a row accessor
// is immediately visible through the column accessor and vice versa.
type Board struct {
	Width  int
	Height int
	cells  []CellState
}

// NewBoard returns an all-Unknown board.
func NewBoard(width, height int) *Board {
	return &Board{
		Width:  width,
		Height: height,
		cells:  make([]CellState, width*height),
	}
}

func (b *Board) Get(row, col int) CellState {
	return b.cells[row*b.Width+col]
}

func (b *Board) Set(row, col int, v CellState) {
	b.cells[row*b.Width+col] = v
}

// Row copies row r into dst and returns it. dst must have length Width.
func (b *Board) Row(r int, dst []CellState) []CellState {
	copy(dst, b.cells[r*b.Width:(r+1)*b.Width])
	return dst
}

// SetRow commits a full row back into the board.
func (b *Board) SetRow(r int, src []CellState) {
	copy(b.cells[r*b.Width:(r+1)*b.Width], src)
}

// Col copies column c into dst and returns it. dst must have length Height.
func (b *Board) Col(c int, dst []CellState) []CellState {
	for r := 0; r < b.Height; r++ {
		dst[r] = b.cells[r*b.Width+c]
	}
	return dst
}

// SetCol commits a full column back into the board.
func (b *Board) SetCol(c int, src []CellState) {
	for r := 0; r < b.Height; r++ {
		b.cells[r*b.Width+c] = src[r]
	}
}

// FirstUnknown returns the first Unknown cell in row-major order.
func (b *Board) FirstUnknown() (row, col int, ok bool) {
	for i, v := range b.cells {
		if v == CellUnknown {
			return i / b.Width, i % b.Width, true
		}
	}
	return 0, 0, false
}

// Unknowns counts the cells still undetermined.
func (b *Board) Unknowns() int {
	n := 0
	for _, v := range b.cells {
		if v == CellUnknown {
			n++
		}
	}
	return n
}

// Snapshot captures the cell array for later rollback.
func (b *Board) Snapshot() []CellState {
	return append([]CellState(nil), b.cells...)
}

// Restore rewinds the board to a previous snapshot.
func (b *Board) Restore(snap []CellState) {
	copy(b.cells, snap)
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{Width: b.Width, Height: b.Height, cells: b.Snapshot()}
}

// CellRows encodes the board one string per row: '#' set, '.' unset,
// '?' unknown.
func (b *Board) CellRows() []string {
	rows := make([]string, b.Height)
	var sb strings.Builder
	for r := 0; r < b.Height; r++ {
		sb.Reset()
		for c := 0; c < b.Width; c++ {
			switch b.Get(r, c) {
			case CellSet:
				sb.WriteByte('#')
			case CellUnset:
				sb.WriteByte('.')
			default:
				sb.WriteByte('?')
			}
		}
		rows[r] = sb.String()
	}
	return rows
}

// ParseBoard decodes the CellRows encoding.
func ParseBoard(rows []string) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty board")
	}
	width := len(rows[0])
	b := NewBoard(width, len(rows))
	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d: length %d, want %d", r, len(row), width)
		}
		for c := 0; c < width; c++ {
			switch row[c] {
			case '#':
				b.Set(r, c, CellSet)
			case '.':
				b.Set(r, c, CellUnset)
			case '?':
				// already Unknown
			default:
				return nil, fmt.Errorf("row %d col %d: bad cell %q", r, c, row[c])
			}
		}
	}
	return b, nil
}

// Layer couples a board with the clues constraining it.
type Layer struct {
	Board *Board
	Rows  []Clue
	Cols  []Clue
}
