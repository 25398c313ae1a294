package solver

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/ports"
)

// ParallelSearcher fans the search out across the 24 orderings. Evaluation
// is a pure function of (shape, ordering, operators), so workers can run
// without coordination; only deduplication is order-sensitive, and it runs
// in a sequential merge pass so the output is byte-identical to Searcher's.
type ParallelSearcher struct {
	Target float64
	Logger *slog.Logger
}

// NewParallelSearcher returns a silent parallel searcher for the standard target.
func NewParallelSearcher() *ParallelSearcher { return &ParallelSearcher{Target: domain.Target} }

type candidate struct {
	text  string
	shape domain.Shape
	ns    [4]int
	ops   [3]domain.Operator
	val   float64
	skip  bool
}

// FindAll matches Searcher.FindAll exactly: same solutions, same order,
// same Checked count. Workers evaluate a few candidates that the merge later
// discards as duplicates; duplicates evaluate to the same value, so only the
// wasted work differs, never the result.
func (p *ParallelSearcher) FindAll(ctx context.Context, numbers [4]int) ([]domain.Solution, ports.Stats, error) {
	start := time.Now()
	orderings := Orderings(numbers)
	opSeqs := OperatorSequences()

	perOrdering := make([][]candidate, len(orderings))
	g, gctx := errgroup.WithContext(ctx)
	for i, ns := range orderings {
		i, ns := i, ns
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cands := make([]candidate, 0, len(opSeqs)*4)
			for _, ops := range opSeqs {
				if !groupingMatters(ops) {
					c, err := makeCandidate(domain.ShapeSimple, ns, ops)
					if err != nil {
						return err
					}
					cands = append(cands, c)
					continue
				}
				for _, shape := range groupedShapes {
					c, err := makeCandidate(shape, ns, ops)
					if err != nil {
						return err
					}
					cands = append(cands, c)
				}
			}
			perOrdering[i] = cands
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}

	// Sequential merge: global textual dedup in ordering order.
	seen := make(map[string]struct{}, 2048)
	var solutions []domain.Solution
	checked := 0
	for _, cands := range perOrdering {
		for _, c := range cands {
			if _, dup := seen[c.text]; dup {
				if p.Logger != nil {
					p.Logger.Log(ctx, LevelSkips, "skipping duplicate equation", "shape", c.shape.String(), "eq", c.text)
				}
				continue
			}
			seen[c.text] = struct{}{}
			checked++
			if c.skip {
				if p.Logger != nil {
					p.Logger.Log(ctx, LevelSkips, "skipping division by zero", "shape", c.shape.String(), "eq", c.text)
				}
				continue
			}
			if c.val == p.Target {
				if p.Logger != nil {
					p.Logger.Log(ctx, slog.LevelDebug, "solution", "shape", c.shape.String(), "eq", c.text)
				}
				solutions = append(solutions, domain.Solution{Text: c.text, Shape: c.shape, Numbers: c.ns, Ops: c.ops})
			}
		}
	}
	return solutions, ports.Stats{Checked: checked, Duration: time.Since(start)}, nil
}

func makeCandidate(shape domain.Shape, ns [4]int, ops [3]domain.Operator) (candidate, error) {
	val, skip, err := evaluate(shape, ns, ops)
	if err != nil {
		return candidate{}, err
	}
	return candidate{text: render(shape, ns, ops), shape: shape, ns: ns, ops: ops, val: val, skip: skip}, nil
}
