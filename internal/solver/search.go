package solver

import (
	"context"
	"log/slog"
	"time"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/ports"
)

// LevelSkips is the trace level for duplicate and division-by-zero skip
// notices, one notch noisier than per-solution announcements at Debug.
const LevelSkips = slog.LevelDebug - 4

// Searcher enumerates every distinct equation over four numbers and
// collects those that evaluate to Target. Equations are deduplicated by
// their rendered text only; mathematically equivalent forms (commuted or
// re-associated) are all kept.
type Searcher struct {
	Target float64
	// Logger gates diagnostic traces. Nil means silent.
	Logger *slog.Logger
}

// NewSearcher returns a silent searcher for the standard target.
func NewSearcher() *Searcher { return &Searcher{Target: domain.Target} }

// FindAll walks all 24 orderings x 64 operator sequences, trying either the
// parenthesis-free simple form (when the sequence has no * or /) or the four
// grouped shapes. Solutions come back in discovery order and no equation
// text appears twice. Checked counts equations actually examined, including
// division-by-zero skips but not duplicates.
func (s *Searcher) FindAll(ctx context.Context, numbers [4]int) ([]domain.Solution, ports.Stats, error) {
	start := time.Now()
	seen := make(map[string]struct{}, 2048)
	var solutions []domain.Solution
	checked := 0

	opSeqs := OperatorSequences()
	for _, ns := range Orderings(numbers) {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Checked: checked, Duration: time.Since(start)}, err
		}
		for _, ops := range opSeqs {
			if !groupingMatters(ops) {
				if err := s.try(ctx, domain.ShapeSimple, ns, ops, seen, &solutions, &checked); err != nil {
					return nil, ports.Stats{Checked: checked, Duration: time.Since(start)}, err
				}
				continue
			}
			for _, shape := range groupedShapes {
				if err := s.try(ctx, shape, ns, ops, seen, &solutions, &checked); err != nil {
					return nil, ports.Stats{Checked: checked, Duration: time.Since(start)}, err
				}
			}
		}
	}
	return solutions, ports.Stats{Checked: checked, Duration: time.Since(start)}, nil
}

// try renders one (shape, ordering, operators) candidate and, unless it is a
// duplicate or a division-by-zero skip, evaluates it against the target.
func (s *Searcher) try(ctx context.Context, shape domain.Shape, ns [4]int, ops [3]domain.Operator,
	seen map[string]struct{}, solutions *[]domain.Solution, checked *int) error {

	text := render(shape, ns, ops)
	if _, dup := seen[text]; dup {
		if s.Logger != nil {
			s.Logger.Log(ctx, LevelSkips, "skipping duplicate equation", "shape", shape.String(), "eq", text)
		}
		return nil
	}
	seen[text] = struct{}{}
	*checked++

	val, skip, err := evaluate(shape, ns, ops)
	if err != nil {
		return err
	}
	if skip {
		if s.Logger != nil {
			s.Logger.Log(ctx, LevelSkips, "skipping division by zero", "shape", shape.String(), "eq", text)
		}
		return nil
	}
	if val == s.Target {
		if s.Logger != nil {
			s.Logger.Log(ctx, slog.LevelDebug, "solution", "shape", shape.String(), "eq", text)
		}
		*solutions = append(*solutions, domain.Solution{Text: text, Shape: shape, Numbers: ns, Ops: ops})
	}
	return nil
}
