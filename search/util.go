package search

import "golang.org/x/exp/constraints"

// max and min are small generic helpers over ordered types, used by
// the time-budget formula — this package predates the language's
// built-in min/max.
func max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// abs returns the absolute value of a signed number.
func abs[T constraints.Signed](a T) T {
	if a < 0 {
		return -a
	}
	return a
}
