package validator

import (
	"context"
	"reflect"
	"testing"

	"svw.info/squaredaway/internal/clues"
	"svw.info/squaredaway/internal/domain"
)

func puzzleFor(rows []string) *domain.Puzzle {
	g := domain.GridFromStrings(rows)
	return &domain.Puzzle{
		Width:   g.Width(),
		Height:  g.Height(),
		Shading: clues.Shading(g),
		Erasing: clues.Erasing(g),
	}
}

func TestValidateAccepted(t *testing.T) {
	rows := []string{"X1-", "2-1", "X11"}
	ok, conflicts, err := New().Validate(context.Background(), domain.GridFromStrings(rows), puzzleFor(rows))
	if err != nil {
		t.Fatal(err)
	}
	if !ok || len(conflicts) != 0 {
		t.Fatalf("valid grid rejected: ok=%v conflicts=%v", ok, conflicts)
	}
}

func TestValidateFlagsConflictingLines(t *testing.T) {
	rows := []string{"X1-", "2-1", "X11"}
	p := puzzleFor(rows)

	// Flip one cell out of the shading phase: '1' -> '-'. Its row and
	// column shading clues both break; the erasing layer is untouched.
	bad := domain.GridFromStrings([]string{"X--", "2-1", "X11"})

	ok, conflicts, err := New().Validate(context.Background(), bad, p)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("conflicting grid accepted")
	}
	want := []domain.LineRef{
		{Phase: domain.PhaseShading, Axis: domain.AxisRow, Index: 0},
		{Phase: domain.PhaseShading, Axis: domain.AxisCol, Index: 1},
	}
	if !reflect.DeepEqual(conflicts, want) {
		t.Fatalf("conflicts = %v, want %v", conflicts, want)
	}
}

func TestValidateFlagsErasingPhase(t *testing.T) {
	rows := []string{"X1", "2-"}
	p := puzzleFor(rows)

	// '2' -> '-' breaks erasing row 1 and erasing col 0 only.
	bad := domain.GridFromStrings([]string{"X1", "--"})

	ok, conflicts, err := New().Validate(context.Background(), bad, p)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("conflicting grid accepted")
	}
	for _, ref := range conflicts {
		if ref.Phase != domain.PhaseErasing {
			t.Fatalf("unexpected conflict in phase %v: %v", ref.Phase, conflicts)
		}
	}
	if len(conflicts) != 2 {
		t.Fatalf("conflicts = %v, want erasing row 1 and erasing col 0", conflicts)
	}
}

func TestValidateRejectsMalformedInput(t *testing.T) {
	p := puzzleFor([]string{"X1", "2-"})

	if _, _, err := New().Validate(context.Background(), domain.GridFromStrings([]string{"X9", "2-"}), p); err == nil {
		t.Error("bad symbol accepted")
	}
	if _, _, err := New().Validate(context.Background(), domain.GridFromStrings([]string{"X1-", "2-1", "X11"}), p); err == nil {
		t.Error("dimension mismatch accepted")
	}
	broken := *p
	broken.Shading.Rows = broken.Shading.Rows[:1]
	if _, _, err := New().Validate(context.Background(), domain.GridFromStrings([]string{"X1", "2-"}), &broken); err == nil {
		t.Error("truncated clue set accepted")
	}
}
