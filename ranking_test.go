package ildrank

import (
	"math"
	"math/rand"
	"sort"
	"testing"
)

// --- rankAscending tests ---

func TestRankAscending_Distinct(t *testing.T) {
	// No ties, so no randomness is involved.
	ranks := rankAscending([]float64{0.3, 0.1, 0.2}, nil)
	want := []int{3, 1, 2}
	for i := range want {
		if ranks[i] != want[i] {
			t.Errorf("rank[%d]: got %d, want %d", i, ranks[i], want[i])
		}
	}
}

func TestRankAscending_IsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ranks := rankAscending([]float64{5, 2, 2, 9, 2, 5}, rng)
	sorted := append([]int(nil), ranks...)
	sort.Ints(sorted)
	for i, r := range sorted {
		if r != i+1 {
			t.Fatalf("ranks %v are not a permutation of 1..%d", ranks, len(ranks))
		}
	}
}

func TestRankAscending_TiesShareRankBlock(t *testing.T) {
	// The two tied values split ranks {1, 2} between them; the distinct
	// larger value always ranks 3.
	rng := rand.New(rand.NewSource(7))
	ranks := rankAscending([]float64{1, 5, 1}, rng)

	if ranks[1] != 3 {
		t.Errorf("distinct value: got rank %d, want 3", ranks[1])
	}
	got := []int{ranks[0], ranks[2]}
	sort.Ints(got)
	if got[0] != 1 || got[1] != 2 {
		t.Errorf("tied values: got ranks %v, want {1, 2}", []int{ranks[0], ranks[2]})
	}
}

func TestRankAscending_TieBreakDeterministicWithSeed(t *testing.T) {
	values := []float64{3, 3, 3, 1, 1, 2}
	a := rankAscending(values, rand.New(rand.NewSource(42)))
	b := rankAscending(values, rand.New(rand.NewSource(42)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different ranks: %v vs %v", a, b)
		}
	}
}

func TestRankAscending_AllTied(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	ranks := rankAscending([]float64{2, 2, 2, 2}, rng)
	sorted := append([]int(nil), ranks...)
	sort.Ints(sorted)
	for i, r := range sorted {
		if r != i+1 {
			t.Fatalf("ranks %v are not a permutation of 1..4", ranks)
		}
	}
}

func TestRankAscending_InfRanksLast(t *testing.T) {
	ranks := rankAscending([]float64{0.5, math.Inf(1), 0.2}, nil)
	if ranks[1] != 3 {
		t.Errorf("+Inf: got rank %d, want 3", ranks[1])
	}
	if ranks[2] != 1 || ranks[0] != 2 {
		t.Errorf("finite values: got ranks [%d, %d], want [2, 1]", ranks[0], ranks[2])
	}
}

func TestRankAscending_TiedInfsSplitBlock(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	ranks := rankAscending([]float64{math.Inf(1), 0.1, math.Inf(1)}, rng)
	if ranks[1] != 1 {
		t.Errorf("finite value: got rank %d, want 1", ranks[1])
	}
	got := []int{ranks[0], ranks[2]}
	sort.Ints(got)
	if got[0] != 2 || got[1] != 3 {
		t.Errorf("tied +Inf: got ranks %v, want {2, 3}", []int{ranks[0], ranks[2]})
	}
}

func TestRankAscending_DoesNotMutateInput(t *testing.T) {
	values := []float64{0.3, 0.1, 0.2}
	rankAscending(values, nil)
	if values[0] != 0.3 || values[1] != 0.1 || values[2] != 0.2 {
		t.Errorf("input mutated: %v", values)
	}
}

func TestRankAscending_NilRand(t *testing.T) {
	// nil falls back to the package-level source; ranks must still be a
	// permutation.
	ranks := rankAscending([]float64{1, 1, 1}, nil)
	sorted := append([]int(nil), ranks...)
	sort.Ints(sorted)
	for i, r := range sorted {
		if r != i+1 {
			t.Fatalf("ranks %v are not a permutation of 1..3", ranks)
		}
	}
}

// --- invertRanks tests ---

func TestInvertRanks(t *testing.T) {
	got := invertRanks([]int{1, 2, 3})
	want := []int{3, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("inverted[%d]: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestInvertRanks_RoundTrip(t *testing.T) {
	ranks := []int{4, 1, 3, 2}
	twice := invertRanks(invertRanks(ranks))
	for i := range ranks {
		if twice[i] != ranks[i] {
			t.Errorf("double inversion[%d]: got %d, want %d", i, twice[i], ranks[i])
		}
	}
}

func TestInvertRanks_SingleEntry(t *testing.T) {
	got := invertRanks([]int{1})
	if got[0] != 1 {
		t.Errorf("got %d, want 1", got[0])
	}
}
