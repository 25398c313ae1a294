package solver

import (
	"sync"

	"svw.info/twentyfour/internal/domain"
)

// Orderings returns all 24 arrangements of the four numbers. Positions are
// treated as distinguishable, so repeated values yield repeated orderings;
// the textual dedup in the search absorbs those later.
func Orderings(numbers [4]int) [][4]int {
	out := make([][4]int, 0, 24)
	var cur [4]int
	var used [4]bool
	var rec func(depth int)
	rec = func(depth int) {
		if depth == 4 {
			out = append(out, cur)
			return
		}
		for i := 0; i < 4; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			cur[depth] = numbers[i]
			rec(depth + 1)
			used[i] = false
		}
	}
	rec(0)
	return out
}

// The 64 operator triples are a pure function of the fixed operator set,
// computed once and shared. Callers must not mutate the returned slice.
var operatorSequences = sync.OnceValue(func() [][3]domain.Operator {
	ops := domain.Operators()
	out := make([][3]domain.Operator, 0, 64)
	for _, a := range ops {
		for _, b := range ops {
			for _, c := range ops {
				out = append(out, [3]domain.Operator{a, b, c})
			}
		}
	}
	return out
})

// OperatorSequences returns every ordered triple of operators chosen with
// repetition from the operator set: exactly 64, independent of any input.
func OperatorSequences() [][3]domain.Operator { return operatorSequences() }
