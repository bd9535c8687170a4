package usecase

import (
	"context"
	"errors"

	"svw.info/squaredaway/internal/domain"
	"svw.info/squaredaway/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, p *domain.Puzzle) (domain.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, p)
}

func (u *Service) Check(ctx context.Context, p *domain.Puzzle, reference domain.Grid) (domain.Grid, []domain.CellCoord, ports.Stats, error) {
	if u.Solver == nil {
		return nil, nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Check(ctx, p, reference)
}

func (u *Service) FromGrid(ctx context.Context, g domain.Grid) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.FromGrid(ctx, g)
}

func (u *Service) Generate(ctx context.Context, seed int64, width, height int, density float64) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, width, height, density)
}

func (u *Service) Validate(ctx context.Context, g domain.Grid, p *domain.Puzzle) (bool, []domain.LineRef, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g, p)
}

func (u *Service) Hint(ctx context.Context, cs domain.ClueSet, b *domain.Board, phase domain.Phase) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, cs, b, phase)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
