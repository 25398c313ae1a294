package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/twentyfour/internal/domain"
)

func TestApplyBasicOperators(t *testing.T) {
	cases := []struct {
		a    float64
		op   domain.Operator
		b    float64
		want float64
	}{
		{3, domain.OpAdd, 4, 7},
		{3, domain.OpSub, 4, -1},
		{3, domain.OpMul, 4, 12},
		{24, domain.OpDiv, 4, 6},
	}
	for _, tc := range cases {
		t.Run(tc.op.String(), func(t *testing.T) {
			got, err := Apply(tc.a, tc.op, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Division is real-valued: fractional intermediates are part of the game.
func TestApplyDivisionIsFractional(t *testing.T) {
	got, err := Apply(4, domain.OpDiv, 5)
	require.NoError(t, err)
	assert.Equal(t, 4.0/5.0, got)

	// The note in the original game: 4/5=0.8, 6*5=30, 30*0.8=24.
	prod, err := Apply(6, domain.OpMul, 5)
	require.NoError(t, err)
	final, err := Apply(prod, domain.OpMul, got)
	require.NoError(t, err)
	assert.InDelta(t, 24, final, 1e-9)
}

func TestApplyUnsupportedOperatorFailsFast(t *testing.T) {
	_, err := Apply(1, domain.Operator('%'), 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported operator")
}
