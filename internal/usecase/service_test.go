package usecase

import (
	"context"
	"testing"

	"svw.info/squaredaway/internal/domain"
)

func TestServiceGuardsNilDependencies(t *testing.T) {
	ctx := context.Background()
	var u Service

	if _, _, err := u.Solve(ctx, &domain.Puzzle{}); err == nil {
		t.Error("Solve without a solver")
	}
	if _, _, _, err := u.Check(ctx, &domain.Puzzle{}, nil); err == nil {
		t.Error("Check without a solver")
	}
	if _, _, err := u.FromGrid(ctx, nil); err == nil {
		t.Error("FromGrid without a generator")
	}
	if _, _, err := u.Generate(ctx, 1, 3, 3, 0.5); err == nil {
		t.Error("Generate without a generator")
	}
	if _, _, err := u.Validate(ctx, nil, &domain.Puzzle{}); err == nil {
		t.Error("Validate without a validator")
	}
	if _, _, err := u.Hint(ctx, domain.ClueSet{}, nil, domain.PhaseShading); err == nil {
		t.Error("Hint without a hinter")
	}
	if err := u.Save(ctx, &domain.Puzzle{}); err == nil {
		t.Error("Save without storage")
	}
	if _, err := u.Load(ctx, "x"); err == nil {
		t.Error("Load without storage")
	}
	if _, err := u.List(ctx); err == nil {
		t.Error("List without storage")
	}
}
