package ildrank

import (
	"fmt"
	"strconv"
	"strings"
)

// PairLabels returns the canonical labels for every unordered landmark pair
// of a P-landmark configuration: "1-2", "1-3", ..., "1-P", "2-3", and so on,
// i ascending then j ascending, landmarks numbered from 1. The enumeration
// order is fixed: every distance table in a run shares it, so tables join
// column-wise by position as well as by label. Returns nil when p < 2.
func PairLabels(p int) []string {
	if p < 2 {
		return nil
	}
	labels := make([]string, 0, p*(p-1)/2)
	for i := 1; i < p; i++ {
		for j := i + 1; j <= p; j++ {
			labels = append(labels, strconv.Itoa(i)+"-"+strconv.Itoa(j))
		}
	}
	return labels
}

// ParseLabel recovers the 1-based landmark indices (i, j) from a pair label
// "i-j". This is the reverse mapping renderers use to locate the two
// landmarks a ranked distance refers to.
func ParseLabel(label string) (i, j int, err error) {
	first, second, ok := strings.Cut(label, "-")
	if !ok {
		return 0, 0, fmt.Errorf("ildrank: malformed pair label %q", label)
	}
	i, err = strconv.Atoi(first)
	if err != nil {
		return 0, 0, fmt.Errorf("ildrank: malformed pair label %q", label)
	}
	j, err = strconv.Atoi(second)
	if err != nil {
		return 0, 0, fmt.Errorf("ildrank: malformed pair label %q", label)
	}
	if i < 1 || j <= i {
		return 0, 0, fmt.Errorf("ildrank: pair label %q violates 1 <= i < j", label)
	}
	return i, j, nil
}
