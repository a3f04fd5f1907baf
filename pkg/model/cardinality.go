package model

import (
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// atLeastOne returns the single clause (l1 v l2 v ... v ln). An empty set of literals yields no clause
func atLeastOne(literals []int64) [][]int64 {
	requirePositive(literals)
	if len(literals) == 0 {
		return [][]int64{}
	}

	clause := make([]int64, len(literals))
	copy(clause, literals)
	return [][]int64{clause}
}

// atMostOne uses the pairwise encoding: (-li v -lj) for every i < j
func atMostOne(literals []int64) [][]int64 {
	requirePositive(literals)
	clauses := make([][]int64, 0, len(literals)*(len(literals)-1)/2)
	for i := range len(literals) {
		for j := i + 1; j < len(literals); j++ {
			clauses = append(clauses, []int64{-literals[i], -literals[j]})
		}
	}
	return clauses
}

// atMostK forbids every subset of k+1 literals from being simultaneously true.
// It generates C(n, k+1) clauses, which is only affordable for small k (or k close to n)
func atMostK(literals []int64, k int) [][]int64 {
	if k < 0 { // Nothing may be true, not even an empty set
		return [][]int64{{}}
	}
	return lo.Map(combinations(literals, k+1), func(subset []int64, _ int) []int64 {
		return negate(subset)
	})
}

// atLeastK states that at most n-k of the negated literals are true
func atLeastK(literals []int64, k int) [][]int64 {
	if k <= 0 {
		return [][]int64{}
	}
	return atMostK(negate(literals), len(literals)-k)
}

func negate(literals []int64) []int64 {
	return lo.Map(literals, func(literal int64, _ int) int64 { return -literal })
}

func requirePositive(literals []int64) {
	if literal, ok := lo.Find(literals, func(literal int64) bool { return literal <= 0 }); ok {
		log.Panicf("expected positive literals, found %v", literal)
	}
}
