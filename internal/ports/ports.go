package ports

import (
	"context"
	"time"

	"svw.info/twentyfour/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Checked  int
	Duration time.Duration
}

// Solver enumerates every distinct equation over four numbers that
// evaluates to the target.
type Solver interface {
	FindAll(ctx context.Context, numbers [4]int) ([]domain.Solution, Stats, error)
}

// Generator builds puzzles, drawing fresh random numbers when none are given.
type Generator interface {
	Build(ctx context.Context, numbers *[4]int) (*domain.Puzzle, Stats, error)
	GenerateSolvable(ctx context.Context, n int) ([]*domain.Puzzle, Stats, error)
}

// Hinter suggests a starting operation without revealing a full solution.
type Hinter interface {
	Hint(ctx context.Context, numbers [4]int) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
