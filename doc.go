// Package ildrank ranks the pairwise inter-landmark distances (ILDs) of
// labeled point configurations by how well each distance separates two
// groups.
//
// A configuration is an ordered set of P landmarks in 2 or 3 dimensions; a
// population is an ordered slice of configurations sharing one landmark
// scheme. Extract derives the Euclidean distance between every unordered
// landmark pair within each configuration, producing an N×M distance table
// (M = P(P−1)/2) whose columns carry canonical "i-j" pair labels. Rank
// correlates each distance with a numeric group value across the population,
// keeps the distances whose squared correlation strictly exceeds an upper
// quantile cutoff, and cross-references each one against its change between
// a designated reference and target configuration, both as a raw
// target/reference ratio and as a rank over all labels.
//
// Basic usage:
//
//	cfg := ildrank.DefaultConfig()
//	cfg.Quantile = 0.9
//	sel, err := ildrank.Rank(population, groups, reference, target, cfg)
//	// sel.Selected holds the most group-separating distances
//	// sel.EffectSizes ranks every label by descending effect size
//	// sel.Baseline pairs each label's reference and target distance
//
// For precomputed distance tables:
//
//	sel, err := ildrank.RankPrecomputed(pop, groups, refTable, tgtTable, cfg)
//
// # Reproducibility
//
// Exact ties in the baseline-change ranking are broken by uniform-random
// assignment. Callers needing reproducible output supply a seeded source:
//
//	cfg.Rand = rand.New(rand.NewSource(1))
package ildrank
