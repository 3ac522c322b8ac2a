package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// FloorMod reduces n into [0, m) for any sign of n. The % operator truncates
// toward zero, which would leave negative results for negative n.
func FloorMod[A constraints.Integer](n A, m A) A {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

func Abs[A constraints.Signed](n A) A {
	if n < 0 {
		return -n
	}
	return n
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}
