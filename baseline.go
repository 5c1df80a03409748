package ildrank

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats/scalar"
)

// baselinePrec is the decimal precision applied to reference and target
// distances before any comparison, mean, ratio, or deviation, so tie
// behavior is reproducible. reportPrec is the precision of effect sizes
// and ratios reported on selected distances.
const (
	baselinePrec = 6
	reportPrec   = 7
)

// BaselineDistance pairs one label's reference and target distance.
// Reference and Target carry values rounded to baselinePrec decimals; Mean
// is their average and Ratio is Target/Reference. When Reference is 0 the
// ratio is Undefined: the flag is set and Ratio holds +Inf (Target > 0) or
// NaN (Target == 0), kept visibly distinct rather than folded into the
// defined values.
type BaselineDistance struct {
	Label     string
	Reference float64
	Target    float64
	Mean      float64
	Ratio     float64
	Undefined bool
}

// newBaseline builds the per-label baseline table, in label order, from the
// two rows of the reference/target pair extraction.
func newBaseline(labels []string, ref, tgt []float64) []BaselineDistance {
	base := make([]BaselineDistance, len(labels))
	for c, label := range labels {
		r := scalar.Round(ref[c], baselinePrec)
		t := scalar.Round(tgt[c], baselinePrec)
		base[c] = BaselineDistance{
			Label:     label,
			Reference: r,
			Target:    t,
			Mean:      (r + t) / 2,
			Ratio:     t / r,
			Undefined: r == 0,
		}
	}
	return base
}

// deviations returns |1 − ratio| per label in label order, rounded to
// baselinePrec. An undefined ratio deviates by +Inf: a baseline that
// cannot be compared ranks as the most extreme change.
func deviations(base []BaselineDistance) []float64 {
	devs := make([]float64, len(base))
	for c, b := range base {
		if b.Undefined {
			devs[c] = math.Inf(1)
			continue
		}
		devs[c] = scalar.Round(math.Abs(1-b.Ratio), baselinePrec)
	}
	return devs
}

// sortByRatio orders a copy of the baseline table by ascending ratio with
// labels carried (ratio-rank order). Undefined ratios sort last, keeping
// label order among themselves.
func sortByRatio(base []BaselineDistance) []BaselineDistance {
	sorted := append([]BaselineDistance(nil), base...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Undefined != sorted[j].Undefined {
			return !sorted[i].Undefined
		}
		if sorted[i].Undefined {
			return false
		}
		return sorted[i].Ratio < sorted[j].Ratio
	})
	return sorted
}
