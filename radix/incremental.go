package radix

import (
	"math/big"
)

// checkIncremental is the construction hook for explicit incremental arrays.
// The factorial system has no fixed length, so any non-negative array is
// accepted.
func checkIncremental(numbers []int, digits int) error {
	return nil
}

// encodeIncremental writes natural in the factorial number system. The
// result is only as long as the value needs; zero encodes to no digits.
func encodeIncremental(natural *big.Int, _ int) ([]int, error) {
	// Find the smallest i with i! > natural.
	i := 1
	fac := big.NewInt(1)
	for fac.Cmp(natural) <= 0 {
		i++
		fac.Mul(fac, big.NewInt(int64(i)))
	}

	// Step back to (i-1)!, the weight of the most significant place.
	fac.Quo(fac, big.NewInt(int64(i)))
	i--

	numbers := make([]int, 0, i)
	rem := new(big.Int).Set(natural)
	q, r := new(big.Int), new(big.Int)
	for i > 0 {
		q.QuoRem(rem, fac, r)
		rem.Set(r)
		numbers = append(numbers, int(q.Int64()))
		fac.Quo(fac, big.NewInt(int64(i)))
		i--
	}
	return numbers, nil
}

// decodeIncremental reads numbers back; the last place has weight 1! and
// each place to its left multiplies the weight by the next radix.
func decodeIncremental(numbers []int, _ int) *big.Int {
	length := len(numbers)
	return mixedRadixEncode(numbers, func(i int) int {
		return length - i + 1
	})
}
