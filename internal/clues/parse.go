package clues

import (
	"fmt"
	"strings"

	"svw.info/squaredaway/internal/domain"
)

// ParseGrids parses a puzzle text into grid layers. Layers are split on
// blank lines or "LAYER N" markers; plain single-grid input yields one
// layer. Every layer must be rectangular over the {-,1,2,X} alphabet.
func ParseGrids(text string) ([]domain.Grid, error) {
	var grids []domain.Grid
	var current []string

	flush := func() error {
		if len(current) == 0 {
			return nil
		}
		g := domain.GridFromStrings(current)
		if err := g.Validate(); err != nil {
			return fmt.Errorf("layer %d: %w", len(grids)+1, err)
		}
		grids = append(grids, g)
		current = nil
		return nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "LAYER") {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		current = append(current, line)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(grids) == 0 {
		return nil, fmt.Errorf("no grid found")
	}
	return grids, nil
}

// ParseGrid parses a single-layer puzzle text.
func ParseGrid(text string) (domain.Grid, error) {
	grids, err := ParseGrids(text)
	if err != nil {
		return nil, err
	}
	if len(grids) != 1 {
		return nil, fmt.Errorf("expected a single layer, got %d", len(grids))
	}
	return grids[0], nil
}

// Format renders grid layers back to puzzle text. Multi-layer output
// uses the "LAYER N" markers ParseGrids understands.
func Format(grids ...domain.Grid) string {
	if len(grids) == 1 {
		return grids[0].String()
	}
	parts := make([]string, len(grids))
	for i, g := range grids {
		parts[i] = fmt.Sprintf("LAYER %d\n%s", i+1, g)
	}
	return strings.Join(parts, "\n\n")
}
