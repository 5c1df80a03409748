package ildrank

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Configuration is one shape instance: an ordered sequence of landmarks,
// each a coordinate in 2 or 3 dimensions. Configurations are treated as
// immutable once handed to this package.
type Configuration [][]float64

// DistanceTable holds pairwise inter-landmark distances. Dist has one row
// per configuration and one column per landmark pair; column c holds the
// distance for Labels[c]. Every table produced in a run shares the same
// label order, so downstream joins do not rest on positional trust alone.
type DistanceTable struct {
	Dist   *mat.Dense
	Labels []string
}

// Row returns configuration r's distances as a 1×M table sharing the
// receiver's labels.
func (t *DistanceTable) Row(r int) *DistanceTable {
	_, m := t.Dist.Dims()
	row := make([]float64, m)
	mat.Row(row, r, t.Dist)
	return &DistanceTable{Dist: mat.NewDense(1, m, row), Labels: t.Labels}
}

// Extract computes the Euclidean distance between every unordered landmark
// pair within each configuration of the population. The returned table
// preserves configuration order on rows and PairLabels order on columns.
//
// All configurations must share the same landmark count P >= 2 and
// coordinate dimension, and the population must not be empty.
func Extract(population []Configuration) (*DistanceTable, error) {
	if err := validateShapes(population); err != nil {
		return nil, err
	}
	labels := PairLabels(len(population[0]))
	m := len(labels)
	data := make([]float64, len(population)*m)
	for r, config := range population {
		distanceRow(data[r*m:(r+1)*m], config)
	}
	return &DistanceTable{Dist: mat.NewDense(len(population), m, data), Labels: labels}, nil
}

// ExtractPair computes the 2×M reference/target distance table: row 0 holds
// the reference configuration's distances, row 1 the target's. Both rows
// use the same label order as any population table with the same P.
func ExtractPair(reference, target Configuration) (*DistanceTable, error) {
	return Extract([]Configuration{reference, target})
}

// distanceRow fills dst with the configuration's pairwise distances in
// PairLabels order.
func distanceRow(dst []float64, config Configuration) {
	c := 0
	for i := 0; i < len(config)-1; i++ {
		for j := i + 1; j < len(config); j++ {
			dst[c] = floats.Distance(config[i], config[j], 2)
			c++
		}
	}
}

// validateShapes checks the population's landmark scheme: at least one
// configuration, at least 2 landmarks, identical landmark count and
// dimension everywhere, dimension 2 or 3.
func validateShapes(population []Configuration) error {
	if len(population) == 0 {
		return fmt.Errorf("%w: population is empty", ErrDegenerateInput)
	}
	p := len(population[0])
	if p < 2 {
		return fmt.Errorf("%w: %d landmarks, need at least 2", ErrDegenerateInput, p)
	}
	d := len(population[0][0])
	if d != 2 && d != 3 {
		return fmt.Errorf("ildrank: landmarks must be 2- or 3-dimensional, got %d", d)
	}
	for r, config := range population {
		if len(config) != p {
			return fmt.Errorf("%w: configuration %d has %d landmarks, want %d",
				ErrShapeMismatch, r, len(config), p)
		}
		for i, pt := range config {
			if len(pt) != d {
				return fmt.Errorf("%w: configuration %d landmark %d is %d-dimensional, want %d",
					ErrShapeMismatch, r, i, len(pt), d)
			}
		}
	}
	return nil
}
