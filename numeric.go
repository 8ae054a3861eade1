package permgen

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
)

// Permutation is an ordering of the values 1..n, n = len(p).
type Permutation []int

// Identity returns the permutation 1, 2, ..., n.
func Identity(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i + 1
	}
	return p
}

// Validate checks that the values of p are exactly the set {1..n}.
func (p Permutation) Validate() error {
	n := len(p)
	if n == 0 {
		return fmt.Errorf("%w: empty permutation", ErrInvalidPermutation)
	}

	seen := hashset.New()
	for i, v := range p {
		if v < 1 || v > n {
			return fmt.Errorf("%w: value %d at index %d outside 1..%d", ErrInvalidPermutation, v, i, n)
		}
		if seen.Contains(v) {
			return fmt.Errorf("%w: value %d repeated at index %d", ErrInvalidPermutation, v, i)
		}
		seen.Add(v)
	}
	return nil
}

// Equal reports whether p and q hold the same values in the same order.
func (p Permutation) Equal(q Permutation) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Inverse returns the permutation q with q[p[i]-1] = i+1. p must be valid.
func (p Permutation) Inverse() Permutation {
	q := make(Permutation, len(p))
	for i, v := range p {
		q[v-1] = i + 1
	}
	return q
}

// Clone returns an independent copy of p.
func (p Permutation) Clone() Permutation {
	q := make(Permutation, len(p))
	copy(q, p)
	return q
}

// indexOf returns the position of v in p, or -1.
func indexOf(p Permutation, v int) int {
	for i, x := range p {
		if x == v {
			return i
		}
	}
	return -1
}

// countSmaller counts the elements of values below than.
func countSmaller(values []int, than int) int {
	count := 0
	for _, v := range values {
		if v < than {
			count++
		}
	}
	return count
}
