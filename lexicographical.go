package permgen

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
)

// encodeLexicographical returns the Lehmer code of p: for every position but
// the last, how many later elements are smaller.
func encodeLexicographical(p Permutation) []int {
	numbers := make([]int, len(p)-1)
	for i := range numbers {
		numbers[i] = countSmaller(p[i+1:], p[i])
	}
	return numbers
}

// decodeLexicographical places, left to right, the (num+1)-th smallest value
// not yet used. The last position takes the one value left over.
func decodeLexicographical(numbers []int, n int) (Permutation, error) {
	unused := treeset.NewWithIntComparator()
	for v := 1; v <= n; v++ {
		unused.Add(v)
	}

	p := make(Permutation, n)
	for i, num := range numbers {
		v, ok := nthSmallest(unused, num)
		if !ok {
			return nil, fmt.Errorf("%w: %d at place %d with %d values left", ErrDigitOutOfRange, num, i, unused.Size())
		}
		p[i] = v
		unused.Remove(v)
	}

	if unused.Size() != 1 {
		return nil, fmt.Errorf("%w: %d values left for the last place", ErrLengthMismatch, unused.Size())
	}
	p[n-1] = unused.Values()[0].(int)
	return p, nil
}

// nthSmallest returns the value at zero-based index k of the ordered set.
func nthSmallest(set *treeset.Set, k int) (int, bool) {
	it := set.Iterator()
	for i := 0; it.Next(); i++ {
		if i == k {
			return it.Value().(int), true
		}
	}
	return 0, false
}
