package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/twentyfour/internal/domain"
)

func TestRenderEachShape(t *testing.T) {
	n := [4]int{8, 4, 3, 2}
	o := [3]domain.Operator{domain.OpAdd, domain.OpMul, domain.OpSub}

	cases := []struct {
		shape domain.Shape
		want  string
	}{
		{domain.ShapeSimple, "8+4*3-2"},
		{domain.ShapeSequential, "((8+4)*3)-2"},
		// Paired renders the combiner (o2) between the pairs and o1 inside
		// the right pair.
		{domain.ShapePaired, "(8+4)-(3*2)"},
		{domain.ShapeMiddleLeft, "(8+(4*3))-2"},
		{domain.ShapeMiddleRight, "8+((4*3)-2)"},
	}
	for _, tc := range cases {
		t.Run(tc.shape.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, render(tc.shape, n, o))
		})
	}
}

func TestEvaluateShapes(t *testing.T) {
	cases := []struct {
		name  string
		shape domain.Shape
		n     [4]int
		o     [3]domain.Operator
		want  float64
	}{
		{"sequential fold", domain.ShapeSequential,
			[4]int{3, 3, 2, 2}, [3]domain.Operator{domain.OpAdd, domain.OpMul, domain.OpMul}, 24},
		{"simple fold", domain.ShapeSimple,
			[4]int{1, 7, 8, 8}, [3]domain.Operator{domain.OpAdd, domain.OpAdd, domain.OpAdd}, 24},
		{"paired", domain.ShapePaired,
			// (8+4)*(1+1): right pair is o1, combiner is o2.
			[4]int{8, 4, 1, 1}, [3]domain.Operator{domain.OpAdd, domain.OpAdd, domain.OpMul}, 24},
		{"middle left", domain.ShapeMiddleLeft,
			// (8+(4*3))+4
			[4]int{8, 4, 3, 4}, [3]domain.Operator{domain.OpAdd, domain.OpMul, domain.OpAdd}, 24},
		{"middle right", domain.ShapeMiddleRight,
			// 8*((12/6)+1)
			[4]int{8, 12, 6, 1}, [3]domain.Operator{domain.OpMul, domain.OpDiv, domain.OpAdd}, 24},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, skip, err := evaluate(tc.shape, tc.n, tc.o)
			require.NoError(t, err)
			require.False(t, skip)
			assert.Equal(t, tc.want, got)
		})
	}
}

// A zero can only arise from a sub-result, never from an input number, so
// only the shapes that divide by a sub-result can skip.
func TestEvaluateDivisionByZeroSkips(t *testing.T) {
	cases := []struct {
		name  string
		shape domain.Shape
		n     [4]int
		o     [3]domain.Operator
	}{
		{"paired: combiner divides by zero right pair", domain.ShapePaired,
			// (1+2)/(3-3)
			[4]int{1, 2, 3, 3}, [3]domain.Operator{domain.OpAdd, domain.OpSub, domain.OpDiv}},
		{"middle left: o0 divides by zero middle pair", domain.ShapeMiddleLeft,
			// (5/(2-2))+9
			[4]int{5, 2, 2, 9}, [3]domain.Operator{domain.OpDiv, domain.OpSub, domain.OpAdd}},
		{"middle right: o0 divides by zero middle-then-right", domain.ShapeMiddleRight,
			// 5/((2*2)-4)
			[4]int{5, 2, 2, 4}, [3]domain.Operator{domain.OpDiv, domain.OpMul, domain.OpSub}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, skip, err := evaluate(tc.shape, tc.n, tc.o)
			require.NoError(t, err)
			assert.True(t, skip)
		})
	}
}

func TestGroupingMatters(t *testing.T) {
	assert.False(t, groupingMatters([3]domain.Operator{domain.OpAdd, domain.OpSub, domain.OpAdd}))
	assert.True(t, groupingMatters([3]domain.Operator{domain.OpAdd, domain.OpMul, domain.OpAdd}))
	assert.True(t, groupingMatters([3]domain.Operator{domain.OpDiv, domain.OpSub, domain.OpSub}))
}
