// Package coloring - the Assignment value type and the coloring metric.
//
// Contract:
//   - Colors are 1-based: valid entries lie in [1,k].
//   - Hamming treats assignments as points of a metric space; it is symmetric,
//     non-negative, and zero exactly for identical sequences.
//   - Returns only sentinel errors; never panics at runtime.
package coloring

// Assignment maps vertex index to a color in [1,k].
type Assignment []int

// Clone returns a detached value copy of the assignment.
func (a Assignment) Clone() Assignment {
	if a == nil {
		return nil
	}
	cp := make(Assignment, len(a))
	copy(cp, a)

	return cp
}

// Validate checks that a has exactly n entries, each in [1,k].
//
// Complexity: O(n).
func Validate(a Assignment, n, k int) error {
	if len(a) != n {
		return ErrAssignmentLength
	}
	var i int
	for i = 0; i < n; i++ {
		if a[i] < 1 || a[i] > k {
			return ErrColorRange
		}
	}

	return nil
}

// Hamming returns the number of positions at which a and b differ.
// A length mismatch contributes the surplus positions in full, so the result
// stays a metric over sequences of any length: symmetric, non-negative, and
// zero only for identical inputs.
//
// Complexity: O(max(len(a), len(b))).
func Hamming(a, b []int) int {
	common := len(a)
	if len(b) < common {
		common = len(b)
	}

	// Surplus positions of the longer sequence all count as differing.
	d := len(a) + len(b) - 2*common

	var i int
	for i = 0; i < common; i++ {
		if a[i] != b[i] {
			d++
		}
	}

	return d
}

// WithinRadius reports whether Hamming(a, b) ≤ radius.
//
// Complexity: O(max(len(a), len(b))) worst case; returns early once the
// running count exceeds radius.
func WithinRadius(a, b []int, radius int) bool {
	if radius < 0 {
		return false
	}

	common := len(a)
	if len(b) < common {
		common = len(b)
	}
	d := len(a) + len(b) - 2*common

	var i int
	for i = 0; i < common; i++ {
		if a[i] != b[i] {
			d++
			if d > radius {
				return false
			}
		}
	}

	return d <= radius
}
