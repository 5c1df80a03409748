package ildrank

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// EffectSize is one label's squared Pearson correlation against the group
// values: how well that single distance separates the groups, in [0, 1].
type EffectSize struct {
	Label    string
	RSquared float64
}

// EncodeGroups converts categorical group labels to the numeric coding the
// ranker correlates against, assigning 0, 1, 2, ... by order of first
// appearance. Effect sizes are invariant under affine recodings, so any
// consistent coding of a two-level grouping is equivalent.
func EncodeGroups(labels []string) []float64 {
	codes := make(map[string]float64, 2)
	groups := make([]float64, len(labels))
	for i, label := range labels {
		code, ok := codes[label]
		if !ok {
			code = float64(len(codes))
			codes[label] = code
		}
		groups[i] = code
	}
	return groups
}

// effectSizes computes the squared correlation of each distance column
// against the group vector, in label order. A non-finite correlation (a
// zero-variance column or group vector, or a single-row population)
// contributes 0: such a distance cannot separate the groups. Squared
// correlations a few ulps above 1 are capped at 1.
func effectSizes(dist *mat.Dense, groups []float64) []float64 {
	n, m := dist.Dims()
	effects := make([]float64, m)
	col := make([]float64, n)
	for c := 0; c < m; c++ {
		mat.Col(col, c, dist)
		r := stat.Correlation(col, groups, nil)
		if math.IsNaN(r) || math.IsInf(r, 0) {
			continue
		}
		e := r * r
		if e > 1 {
			e = 1
		}
		effects[c] = e
	}
	return effects
}

// effectOrder returns column indices in canonical importance order:
// descending effect size, equal effects keeping label order.
func effectOrder(effects []float64) []int {
	order := make([]int, len(effects))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return effects[order[a]] > effects[order[b]]
	})
	return order
}

// effectCutoff is the empirical quantile of the effect sizes at probability
// q: the lowest effect with at least fraction q of the effects at or below
// it. Selection keeps labels strictly above this value.
func effectCutoff(effects []float64, q float64) float64 {
	sorted := append([]float64(nil), effects...)
	sort.Float64s(sorted)
	return stat.Quantile(q, stat.Empirical, sorted, nil)
}
