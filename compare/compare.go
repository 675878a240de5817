// Package compare provides comparison helpers shared by the containers in
// this module, shaped so they plug into the callback parameters of
// list.Sort, list.Merge and list.Unique.
package compare

import "golang.org/x/exp/constraints"

// Function is a comparison function for ordered types.
func Function[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Less reports whether a orders strictly before b. It is a strict weak
// ordering over any ordered type.
func Less[T constraints.Ordered](a, b T) bool { return a < b }

// Equal reports whether a and b are equal.
func Equal[T comparable](a, b T) bool { return a == b }
