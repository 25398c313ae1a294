package hint

import (
	"context"
	"fmt"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/ports"
)

// FirstStep implements a minimal Hinter: it reveals the operation a solver
// would perform first in the earliest-discovered solution, without giving
// the full equation away.
type FirstStep struct {
	Solver ports.Solver
}

func NewFirstStep(s ports.Solver) *FirstStep { return &FirstStep{Solver: s} }

// Hint reports the innermost pair of the first solution, e.g. "2*5".
// Returns false when the numbers have no solution.
func (h *FirstStep) Hint(ctx context.Context, numbers [4]int) (domain.Hint, bool, error) {
	sols, _, err := h.Solver.FindAll(ctx, numbers)
	if err != nil {
		return domain.Hint{}, false, err
	}
	if len(sols) == 0 {
		return domain.Hint{}, false, nil
	}
	start := firstOperation(sols[0])
	return domain.Hint{
		Message: fmt.Sprintf("One solution starts from %s", start),
		Start:   start,
	}, true, nil
}

// firstOperation picks the sub-expression evaluated first under the
// solution's shape: the leftmost pair for the flat folds, the middle pair
// for the grouped-middle shapes.
func firstOperation(s domain.Solution) string {
	n, o := s.Numbers, s.Ops
	switch s.Shape {
	case domain.ShapeMiddleLeft, domain.ShapeMiddleRight:
		return fmt.Sprintf("%d%s%d", n[1], o[1], n[2])
	default:
		return fmt.Sprintf("%d%s%d", n[0], o[0], n[1])
	}
}
