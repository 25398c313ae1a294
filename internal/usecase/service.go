package usecase

import (
	"context"
	"errors"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(s ports.Solver, g ports.Generator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Generator: g, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, numbers [4]int) ([]domain.Solution, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.FindAll(ctx, numbers)
}

func (u *Service) Build(ctx context.Context, numbers *[4]int) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Build(ctx, numbers)
}

func (u *Service) GenerateSolvable(ctx context.Context, n int) ([]*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.GenerateSolvable(ctx, n)
}

func (u *Service) Hint(ctx context.Context, numbers [4]int) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, numbers)
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
