package ildrank

import (
	"sync"

	"gonum.org/v1/gonum/mat"
)

// ExtractParallel computes the same distance table as Extract using
// multiple goroutines. Configuration rows are split into contiguous chunks,
// one per worker; workers <= 1 falls back to the serial path.
//
// The result is identical to Extract: same rows, same columns, same values.
func ExtractParallel(population []Configuration, workers int) (*DistanceTable, error) {
	if workers <= 1 || len(population) <= 1 {
		return Extract(population)
	}
	if err := validateShapes(population); err != nil {
		return nil, err
	}
	labels := PairLabels(len(population[0]))
	m := len(labels)
	n := len(population)
	data := make([]float64, n*m)

	// Row chunks do not overlap, so workers write disjoint slices and need
	// no synchronization beyond the WaitGroup.
	var wg sync.WaitGroup
	rowsPerWorker := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := min(start+rowsPerWorker, n)
		if start >= n {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for r := start; r < end; r++ {
				distanceRow(data[r*m:(r+1)*m], population[r])
			}
		}(start, end)
	}
	wg.Wait()

	return &DistanceTable{Dist: mat.NewDense(n, m, data), Labels: labels}, nil
}
