package ildrank

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// rankAscending assigns 1-based ranks by ascending value. A run of exactly
// equal values shares no rank: the run's rank block is dealt to its members
// as a uniform-random permutation drawn from rng, or from the package-level
// math/rand source when rng is nil.
func rankAscending(values []float64, rng *rand.Rand) []int {
	vals := append([]float64(nil), values...)
	idx := make([]int, len(vals))
	floats.Argsort(vals, idx)

	ranks := make([]int, len(vals))
	for lo := 0; lo < len(vals); {
		hi := lo + 1
		for hi < len(vals) && vals[hi] == vals[lo] {
			hi++
		}
		if hi-lo == 1 {
			ranks[idx[lo]] = lo + 1
		} else {
			for k, p := range perm(rng, hi-lo) {
				ranks[idx[lo+k]] = lo + 1 + p
			}
		}
		lo = hi
	}
	return ranks
}

// invertRanks flips ascending ranks so rank 1 marks the largest value:
// inverted = 1 + total − ascending.
func invertRanks(ranks []int) []int {
	inverted := make([]int, len(ranks))
	for i, r := range ranks {
		inverted[i] = 1 + len(ranks) - r
	}
	return inverted
}

func perm(rng *rand.Rand, n int) []int {
	if rng != nil {
		return rng.Perm(n)
	}
	return rand.Perm(n)
}
