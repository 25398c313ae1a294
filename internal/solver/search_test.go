package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/twentyfour/internal/domain"
)

// reparse evaluates a rendered equation from scratch with ordinary
// precedence rules. Every non-simple rendering is fully parenthesized and
// the simple shape folds left to right, so this reproduces the searcher's
// arithmetic exactly and guards the renderings against drift.
func reparse(t *testing.T, eq string) float64 {
	t.Helper()
	p := &eqParser{t: t, s: eq}
	v := p.expr()
	require.Equal(t, len(eq), p.pos, "trailing input in %q", eq)
	return v
}

type eqParser struct {
	t   *testing.T
	s   string
	pos int
}

func (p *eqParser) peek() byte {
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

func (p *eqParser) expr() float64 {
	v := p.term()
	for {
		switch p.peek() {
		case '+':
			p.pos++
			v += p.term()
		case '-':
			p.pos++
			v -= p.term()
		default:
			return v
		}
	}
}

func (p *eqParser) term() float64 {
	v := p.factor()
	for {
		switch p.peek() {
		case '*':
			p.pos++
			v *= p.factor()
		case '/':
			p.pos++
			v /= p.factor()
		default:
			return v
		}
	}
}

func (p *eqParser) factor() float64 {
	if p.peek() == '(' {
		p.pos++
		v := p.expr()
		require.Equal(p.t, byte(')'), p.peek(), "missing ) in %q", p.s)
		p.pos++
		return v
	}
	start := p.pos
	for p.peek() >= '0' && p.peek() <= '9' {
		p.pos++
	}
	require.Greater(p.t, p.pos, start, "expected number at %d in %q", start, p.s)
	n := 0
	for _, c := range p.s[start:p.pos] {
		n = n*10 + int(c-'0')
	}
	return float64(n)
}

func findAll(t *testing.T, numbers [4]int) []domain.Solution {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	sols, st, err := NewSearcher().FindAll(ctx, numbers)
	require.NoError(t, err)
	require.Positive(t, st.Checked)
	return sols
}

func TestFindAllKnownSolvable(t *testing.T) {
	sols := findAll(t, [4]int{2, 4, 5, 7})
	require.NotEmpty(t, sols)
	for _, s := range sols {
		assert.Equal(t, float64(domain.Target), reparse(t, s.Text), "equation %q", s.Text)
	}
}

func TestFindAllSimpleShape(t *testing.T) {
	sols := findAll(t, [4]int{1, 7, 8, 8})
	require.NotEmpty(t, sols)
	texts := make([]string, len(sols))
	for i, s := range sols {
		texts[i] = s.Text
	}
	// The classic all-addition solution renders without parentheses.
	assert.Contains(t, texts, "1+7+8+8")
}

func TestFindAllSequentialShape(t *testing.T) {
	sols := findAll(t, [4]int{3, 3, 2, 2})
	require.NotEmpty(t, sols)
	texts := make([]string, len(sols))
	for i, s := range sols {
		texts[i] = s.Text
	}
	assert.Contains(t, texts, "((3+3)*2)*2")
}

func TestFindAllUnsolvable(t *testing.T) {
	assert.Empty(t, findAll(t, [4]int{1, 1, 1, 1}))
}

func TestFindAllNeverRepeatsEquations(t *testing.T) {
	// Heavy value repetition produces many duplicate renderings to absorb.
	for _, numbers := range [][4]int{{3, 3, 2, 2}, {8, 8, 8, 8}, {1, 7, 8, 8}} {
		seen := map[string]bool{}
		for _, s := range findAll(t, numbers) {
			require.False(t, seen[s.Text], "equation %q returned twice for %v", s.Text, numbers)
			seen[s.Text] = true
		}
	}
}

func TestFindAllNoDivisionByZeroInResults(t *testing.T) {
	for _, s := range findAll(t, [4]int{2, 4, 5, 7}) {
		val, skip, err := evaluate(s.Shape, s.Numbers, s.Ops)
		require.NoError(t, err)
		require.False(t, skip, "solution %q was built through a division by zero", s.Text)
		assert.Equal(t, float64(domain.Target), val)
	}
}

func TestFindAllIsDeterministic(t *testing.T) {
	first := findAll(t, [4]int{2, 4, 5, 7})
	second := findAll(t, [4]int{2, 4, 5, 7})
	assert.Equal(t, first, second, "same numbers must yield the same solutions in the same order")
}

func TestFindAllHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewSearcher().FindAll(ctx, [4]int{2, 4, 5, 7})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParallelMatchesSequential(t *testing.T) {
	cases := [][4]int{
		{2, 4, 5, 7},
		{3, 3, 2, 2},
		{1, 1, 1, 1},
		{1, 7, 8, 8},
	}
	for _, numbers := range cases {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		seq, seqStats, err := NewSearcher().FindAll(ctx, numbers)
		require.NoError(t, err)
		par, parStats, err := NewParallelSearcher().FindAll(ctx, numbers)
		require.NoError(t, err)
		cancel()

		assert.Equal(t, seq, par, "parallel output diverged for %v", numbers)
		assert.Equal(t, seqStats.Checked, parStats.Checked, "checked count diverged for %v", numbers)
	}
}
