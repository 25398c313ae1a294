package solver

import (
	"fmt"

	"svw.info/twentyfour/internal/domain"
)

// Apply evaluates one binary operation. Division is real-valued, so
// fractional intermediates are expected; the caller must guarantee b != 0
// when op is division. An operator outside the fixed set is a contract
// violation and fails fast.
func Apply(a float64, op domain.Operator, b float64) (float64, error) {
	switch op {
	case domain.OpAdd:
		return a + b, nil
	case domain.OpSub:
		return a - b, nil
	case domain.OpMul:
		return a * b, nil
	case domain.OpDiv:
		return a / b, nil
	}
	return 0, fmt.Errorf("unsupported operator %q", op.String())
}
