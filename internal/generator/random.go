package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/ports"
)

// ErrAttemptsExhausted is returned when rejection sampling fails to find
// enough solvable puzzles within the attempt budget.
var ErrAttemptsExhausted = errors.New("generator: attempts exhausted before enough solvable puzzles were found")

// DefaultMaxAttempts bounds the rejection-sampling loop, per requested
// puzzle. At either digit width solvable draws are common, so the cap only
// matters if configuration ever makes solvability rare.
const DefaultMaxAttempts = 1000

// Random builds puzzles from uniformly drawn numbers. Not safe for
// concurrent use: the rng is unguarded, matching the single-threaded
// search it feeds.
type Random struct {
	Solver      ports.Solver
	Width       domain.DigitWidth
	MaxAttempts int

	seed int64
	rng  *rand.Rand
}

// NewRandom wires a generator over the given solver. The seed makes runs
// reproducible; pass time.Now().UnixNano() for fresh puzzles.
func NewRandom(s ports.Solver, width domain.DigitWidth, seed int64) *Random {
	return &Random{
		Solver:      s,
		Width:       width,
		MaxAttempts: DefaultMaxAttempts,
		seed:        seed,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// RandomFour draws four numbers independently and uniformly from the
// width's range. Repeats are allowed.
func (g *Random) RandomFour() [4]int {
	max := g.Width.Max()
	var out [4]int
	for i := range out {
		out[i] = 1 + g.rng.Intn(max)
	}
	return out
}

// Build runs the full search for the given numbers, or for a fresh random
// four when numbers is nil. An empty solution list is a valid outcome.
func (g *Random) Build(ctx context.Context, numbers *[4]int) (*domain.Puzzle, ports.Stats, error) {
	n4 := g.RandomFour()
	if numbers != nil {
		n4 = *numbers
	}
	sols, st, err := g.Solver.FindAll(ctx, n4)
	if err != nil {
		return nil, st, err
	}
	texts := make([]string, len(sols))
	for i, s := range sols {
		texts[i] = s.Text
	}
	p := &domain.Puzzle{
		Numbers:   n4,
		Solutions: texts,
		Width:     g.Width,
		Seed:      g.seed,
		CreatedAt: time.Now().UnixNano(),
	}
	return p, st, nil
}

// GenerateSolvable rejection-samples random puzzles until n solvable ones
// have been collected, discarding unsolvable draws. The attempt budget is
// MaxAttempts per requested puzzle; running out returns the puzzles found
// so far alongside ErrAttemptsExhausted.
func (g *Random) GenerateSolvable(ctx context.Context, n int) ([]*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	budget := g.MaxAttempts
	if budget <= 0 {
		budget = DefaultMaxAttempts
	}
	budget *= n

	var out []*domain.Puzzle
	checked := 0
	for attempts := 0; len(out) < n; attempts++ {
		if err := ctx.Err(); err != nil {
			return out, ports.Stats{Checked: checked, Duration: time.Since(start)}, err
		}
		if attempts >= budget {
			return out, ports.Stats{Checked: checked, Duration: time.Since(start)}, ErrAttemptsExhausted
		}
		p, st, err := g.Build(ctx, nil)
		checked += st.Checked
		if err != nil {
			return out, ports.Stats{Checked: checked, Duration: time.Since(start)}, err
		}
		if len(p.Solutions) > 0 {
			out = append(out, p)
		}
	}
	return out, ports.Stats{Checked: checked, Duration: time.Since(start)}, nil
}
