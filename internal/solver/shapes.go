package solver

import (
	"fmt"

	"svw.info/twentyfour/internal/domain"
)

// groupedShapes are the four templates tried when an operator sequence
// contains * or /. With only + and - grouping cannot change the result,
// so ShapeSimple stands in for all of them.
var groupedShapes = [4]domain.Shape{
	domain.ShapeSequential,
	domain.ShapePaired,
	domain.ShapeMiddleLeft,
	domain.ShapeMiddleRight,
}

// render produces the canonical textual form of a shape. This string is the
// equation's identity: two candidates are duplicates exactly when their
// renderings match.
func render(shape domain.Shape, n [4]int, o [3]domain.Operator) string {
	switch shape {
	case domain.ShapeSimple:
		return fmt.Sprintf("%d%s%d%s%d%s%d", n[0], o[0], n[1], o[1], n[2], o[2], n[3])
	case domain.ShapeSequential:
		return fmt.Sprintf("((%d%s%d)%s%d)%s%d", n[0], o[0], n[1], o[1], n[2], o[2], n[3])
	case domain.ShapePaired:
		// Right pair uses o1, the combiner is o2.
		return fmt.Sprintf("(%d%s%d)%s(%d%s%d)", n[0], o[0], n[1], o[2], n[2], o[1], n[3])
	case domain.ShapeMiddleLeft:
		return fmt.Sprintf("(%d%s(%d%s%d))%s%d", n[0], o[0], n[1], o[1], n[2], o[2], n[3])
	case domain.ShapeMiddleRight:
		return fmt.Sprintf("%d%s((%d%s%d)%s%d)", n[0], o[0], n[1], o[1], n[2], o[2], n[3])
	}
	return ""
}

// evaluate computes a shape's value. skip reports a structural division by
// zero: the equation divides by a sub-result that happens to be zero, so it
// yields no value at all. Puzzle numbers are never zero themselves, which is
// why the flat folds carry no check: their denominators are always inputs.
func evaluate(shape domain.Shape, n [4]int, o [3]domain.Operator) (val float64, skip bool, err error) {
	n0, n1, n2, n3 := float64(n[0]), float64(n[1]), float64(n[2]), float64(n[3])
	switch shape {
	case domain.ShapeSimple, domain.ShapeSequential:
		v, err := Apply(n0, o[0], n1)
		if err != nil {
			return 0, false, err
		}
		if v, err = Apply(v, o[1], n2); err != nil {
			return 0, false, err
		}
		if v, err = Apply(v, o[2], n3); err != nil {
			return 0, false, err
		}
		return v, false, nil

	case domain.ShapePaired:
		l, err := Apply(n0, o[0], n1)
		if err != nil {
			return 0, false, err
		}
		r, err := Apply(n2, o[1], n3)
		if err != nil {
			return 0, false, err
		}
		if o[2] == domain.OpDiv && r == 0 {
			return 0, true, nil
		}
		v, err := Apply(l, o[2], r)
		return v, false, err

	case domain.ShapeMiddleLeft:
		m, err := Apply(n1, o[1], n2)
		if err != nil {
			return 0, false, err
		}
		if o[0] == domain.OpDiv && m == 0 {
			return 0, true, nil
		}
		ml, err := Apply(n0, o[0], m)
		if err != nil {
			return 0, false, err
		}
		v, err := Apply(ml, o[2], n3)
		return v, false, err

	case domain.ShapeMiddleRight:
		m, err := Apply(n1, o[1], n2)
		if err != nil {
			return 0, false, err
		}
		mr, err := Apply(m, o[2], n3)
		if err != nil {
			return 0, false, err
		}
		if o[0] == domain.OpDiv && mr == 0 {
			return 0, true, nil
		}
		v, err := Apply(n0, o[0], mr)
		return v, false, err
	}
	return 0, false, fmt.Errorf("unknown shape %d", shape)
}

// groupingMatters reports whether the sequence contains * or /. Without
// them every grouping of four operands folds to the same value.
func groupingMatters(o [3]domain.Operator) bool {
	for _, op := range o {
		if op == domain.OpMul || op == domain.OpDiv {
			return true
		}
	}
	return false
}
