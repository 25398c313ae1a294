package hint

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/twentyfour/internal/solver"
)

func TestHintForSolvableNumbers(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	h := NewFirstStep(solver.NewSearcher())
	hint, found, err := h.Hint(ctx, [4]int{3, 3, 2, 2})
	require.NoError(t, err)
	require.True(t, found)
	assert.NotEmpty(t, hint.Start)
	assert.Contains(t, hint.Message, hint.Start)
	assert.True(t, strings.ContainsAny(hint.Start, "+-*/"), "start %q should be a single operation", hint.Start)
}

func TestHintForUnsolvableNumbers(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	h := NewFirstStep(solver.NewSearcher())
	hint, found, err := h.Hint(ctx, [4]int{1, 1, 1, 1})
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, hint.Start)
}
