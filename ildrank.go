package ildrank

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats/scalar"
)

// Config controls group-separation ranking.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Quantile is the selection probability in (0,1): the effect-size
	// cutoff is the empirical quantile of all effect sizes at this value,
	// and only distances strictly above the cutoff are selected. 0.95
	// keeps roughly the top 5% most group-predictive distances.
	// Default: 0.95.
	Quantile float64

	// Rand breaks exact ties in the baseline-change ranking by
	// uniform-random assignment. nil uses the package-level math/rand
	// source, so tied ranks vary between runs; supply a seeded *rand.Rand
	// for reproducible output. Default: nil.
	Rand *rand.Rand
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{Quantile: 0.95}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg Config) error {
	if !(cfg.Quantile > 0 && cfg.Quantile < 1) {
		return fmt.Errorf("ildrank: Quantile must be in (0,1), got %v", cfg.Quantile)
	}
	return nil
}

// SelectedDistance is one selected label's annotation set.
type SelectedDistance struct {
	// Label names the landmark pair, e.g. "3-7"; ParseLabel recovers the
	// landmark indices.
	Label string

	// EffectSize is the label's squared group correlation, rounded to 7
	// decimals.
	EffectSize float64

	// Ratio is the target distance over the reference distance, rounded
	// to 7 decimals. An undefined ratio keeps its flagged value (+Inf or
	// NaN).
	Ratio float64

	// RatioUndefined marks a zero reference distance.
	RatioUndefined bool

	// Rank orders all labels by baseline change: 1 marks the largest
	// |1 − Ratio| deviation.
	Rank int

	// Percentile is Rank as a 0–100 percentile of the label count,
	// rounded to the nearest integer.
	Percentile int
}

// Selection is the ranked output. It is the only value that outlives a
// ranking call; consumers, including renderers, read it without modifying
// it.
type Selection struct {
	// Selected lists the labels whose effect size strictly exceeds the
	// quantile cutoff, in canonical importance order (descending effect
	// size).
	Selected []SelectedDistance

	// EffectSizes ranks every label by descending effect size.
	EffectSizes []EffectSize

	// Baseline is the full reference/target distance table in ratio-rank
	// order: ascending ratio, undefined ratios last, labels carried.
	Baseline []BaselineDistance

	// Population is the population distance table the effect sizes were
	// computed from.
	Population *DistanceTable

	// Quantile is the selection probability used; Cutoff is the effect
	// size at that empirical quantile.
	Quantile float64
	Cutoff   float64

	// Reference and Target are the baseline coordinate arrays, carried
	// through for rendering. nil when ranking started from precomputed
	// distance tables.
	Reference Configuration
	Target    Configuration
}

// PairIndices returns the selected labels' 1-based landmark index pairs in
// selection order: the reverse mapping a renderer needs to draw selected
// pairs as segments over the base shape.
func (s *Selection) PairIndices() ([][2]int, error) {
	pairs := make([][2]int, len(s.Selected))
	for k, sd := range s.Selected {
		i, j, err := ParseLabel(sd.Label)
		if err != nil {
			return nil, err
		}
		pairs[k] = [2]int{i, j}
	}
	return pairs, nil
}

// Rank extracts the population's inter-landmark distances and the
// reference/target pair's distances, then ranks every distance by how well
// it separates the groups. groups holds one numeric group value per
// configuration, aligned positionally (EncodeGroups converts categorical
// labels). The returned Selection carries the reference and target
// coordinates for downstream rendering.
//
// Returns ErrEmptySelection when no distance's effect size strictly
// exceeds the cutoff.
func Rank(population []Configuration, groups []float64, reference, target Configuration, cfg Config) (*Selection, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	pop, err := Extract(population)
	if err != nil {
		return nil, err
	}
	pair, err := ExtractPair(reference, target)
	if err != nil {
		return nil, err
	}
	if err := matchLabels(pop.Labels, pair.Labels, "reference/target pair"); err != nil {
		return nil, err
	}

	sel, err := rankTables(pop, groups, pair.Dist.RawRowView(0), pair.Dist.RawRowView(1), cfg)
	if err != nil {
		return nil, err
	}
	sel.Reference = reference
	sel.Target = target
	return sel, nil
}

// RankPrecomputed ranks precomputed distance tables: pop is the N×M
// population table, ref and tgt the 1×M reference and target tables, all
// sharing one label order. Tables join by label; disagreement in length or
// identity is a dimension mismatch. Coordinates are not recoverable from
// distances, so the returned Selection's Reference and Target are nil.
func RankPrecomputed(pop *DistanceTable, groups []float64, ref, tgt *DistanceTable, cfg Config) (*Selection, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	for _, in := range []struct {
		table *DistanceTable
		name  string
	}{{pop, "population"}, {ref, "reference"}, {tgt, "target"}} {
		if err := validateTable(in.table, in.name); err != nil {
			return nil, err
		}
	}
	if r, _ := ref.Dist.Dims(); r != 1 {
		return nil, fmt.Errorf("%w: reference table has %d rows, want 1", ErrDimensionMismatch, r)
	}
	if r, _ := tgt.Dist.Dims(); r != 1 {
		return nil, fmt.Errorf("%w: target table has %d rows, want 1", ErrDimensionMismatch, r)
	}
	if err := matchLabels(pop.Labels, ref.Labels, "reference"); err != nil {
		return nil, err
	}
	if err := matchLabels(pop.Labels, tgt.Labels, "target"); err != nil {
		return nil, err
	}
	return rankTables(pop, groups, ref.Dist.RawRowView(0), tgt.Dist.RawRowView(0), cfg)
}

// rankTables runs the ranking pipeline over label-aligned inputs: baseline
// pairing and ratios, per-label effect sizes, quantile cutoff, deviation
// ranks, and Selection assembly.
func rankTables(pop *DistanceTable, groups []float64, ref, tgt []float64, cfg Config) (*Selection, error) {
	n, m := pop.Dist.Dims()
	if len(groups) != n {
		return nil, fmt.Errorf("%w: %d group values for %d configurations",
			ErrDimensionMismatch, len(groups), n)
	}

	base := newBaseline(pop.Labels, ref, tgt)
	effects := effectSizes(pop.Dist, groups)
	order := effectOrder(effects)
	cutoff := effectCutoff(effects, cfg.Quantile)
	ranks := invertRanks(rankAscending(deviations(base), cfg.Rand))

	ranking := make([]EffectSize, m)
	for k, c := range order {
		ranking[k] = EffectSize{Label: pop.Labels[c], RSquared: effects[c]}
	}

	var selected []SelectedDistance
	for _, c := range order {
		if effects[c] <= cutoff {
			break // order is descending; nothing further can pass
		}
		selected = append(selected, SelectedDistance{
			Label:          pop.Labels[c],
			EffectSize:     scalar.Round(effects[c], reportPrec),
			Ratio:          scalar.Round(base[c].Ratio, reportPrec),
			RatioUndefined: base[c].Undefined,
			Rank:           ranks[c],
			Percentile:     percentile(ranks[c], m),
		})
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w (quantile %v, cutoff %v)", ErrEmptySelection, cfg.Quantile, cutoff)
	}

	return &Selection{
		Selected:    selected,
		EffectSizes: ranking,
		Baseline:    sortByRatio(base),
		Population:  pop,
		Quantile:    cfg.Quantile,
		Cutoff:      cutoff,
	}, nil
}

// percentile converts an inverted deviation rank into a 0–100 percentile
// of the label count, rounded to the nearest integer.
func percentile(rank, total int) int {
	return int(math.Round(float64(rank) / float64(total) * 100))
}

// validateTable checks a table for a nil or empty matrix and for
// label/column agreement.
func validateTable(t *DistanceTable, name string) error {
	if t == nil || t.Dist == nil {
		return fmt.Errorf("ildrank: %s table is nil", name)
	}
	_, m := t.Dist.Dims()
	if m == 0 {
		return fmt.Errorf("%w: %s table has no distance columns", ErrDegenerateInput, name)
	}
	if len(t.Labels) != m {
		return fmt.Errorf("%w: %s table has %d columns but %d labels",
			ErrDimensionMismatch, name, m, len(t.Labels))
	}
	return nil
}

// matchLabels verifies that got carries exactly the population's label
// sequence.
func matchLabels(want, got []string, name string) error {
	if len(got) != len(want) {
		return fmt.Errorf("%w: %s has %d labels, population has %d",
			ErrDimensionMismatch, name, len(got), len(want))
	}
	for c := range want {
		if got[c] != want[c] {
			return fmt.Errorf("%w: %s label %d is %q, population has %q",
				ErrDimensionMismatch, name, c, got[c], want[c])
		}
	}
	return nil
}
