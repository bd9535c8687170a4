package domain

import (
	"fmt"
	"strings"
)

// The four-symbol puzzle alphabet.
const (
	SymbolNone   rune = '-' // neither phase
	SymbolShaded rune = '1' // shading phase only
	SymbolErased rune = '2' // erasing phase only
	SymbolBoth   rune = 'X' // both phases
)

// Grid is a solved or authored two-phase nonogram picture.
type Grid [][]rune

// MergeSymbol maps a (shaded, erased) cell pair onto the grid alphabet.
func MergeSymbol(shaded, erased bool) rune {
	switch {
	case shaded && erased:
		return SymbolBoth
	case shaded:
		return SymbolShaded
	case erased:
		return SymbolErased
	default:
		return SymbolNone
	}
}

// MergeLayers combines two fully determined boards into a grid.
func MergeLayers(shaded, erased *Board) Grid {
	g := make(Grid, shaded.Height)
	for r := 0; r < shaded.Height; r++ {
		g[r] = make([]rune, shaded.Width)
		for c := 0; c < shaded.Width; c++ {
			g[r][c] = MergeSymbol(shaded.Get(r, c) == CellSet, erased.Get(r, c) == CellSet)
		}
	}
	return g
}

// GridFromStrings builds a grid from one string per row. It does not
// validate the alphabet; use clues.ParseGrids for untrusted input.
func GridFromStrings(rows []string) Grid {
	g := make(Grid, len(rows))
	for r, row := range rows {
		g[r] = []rune(row)
	}
	return g
}

func (g Grid) Height() int { return len(g) }

func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Shaded reports whether the cell belongs to the shading phase.
func (g Grid) Shaded(r, c int) bool {
	return g[r][c] == SymbolShaded || g[r][c] == SymbolBoth
}

// Erased reports whether the cell belongs to the erasing phase.
func (g Grid) Erased(r, c int) bool {
	return g[r][c] == SymbolErased || g[r][c] == SymbolBoth
}

// Strings renders the grid one string per row.
func (g Grid) Strings() []string {
	rows := make([]string, len(g))
	for r, row := range g {
		rows[r] = string(row)
	}
	return rows
}

func (g Grid) String() string {
	return strings.Join(g.Strings(), "\n")
}

// Diff lists the cells where two equally sized grids disagree.
func (g Grid) Diff(other Grid) []CellCoord {
	var out []CellCoord
	for r := range g {
		for c := range g[r] {
			if g[r][c] != other[r][c] {
				out = append(out, CellCoord{Row: r, Col: c})
			}
		}
	}
	return out
}

// Validate checks the grid is rectangular, non-empty, and uses only the
// four-symbol alphabet.
func (g Grid) Validate() error {
	if len(g) == 0 || len(g[0]) == 0 {
		return fmt.Errorf("empty grid")
	}
	width := len(g[0])
	for r, row := range g {
		if len(row) != width {
			return fmt.Errorf("row %d: width %d, want %d", r, len(row), width)
		}
		for c, cell := range row {
			switch cell {
			case SymbolNone, SymbolShaded, SymbolErased, SymbolBoth:
			default:
				return fmt.Errorf("row %d col %d: bad symbol %q", r, c, cell)
			}
		}
	}
	return nil
}
