package radix

import (
	"fmt"
	"math/big"
)

// checkDecremental rejects arrays that do not fit the fixed digits-1 width.
func checkDecremental(numbers []int, digits int) error {
	if len(numbers) > digits-1 {
		return fmt.Errorf("%w: %d places for digits=%d", ErrTooManyDigits, len(numbers), digits)
	}
	return nil
}

// encodeDecremental peels places off natural starting with radix digits at
// the least significant end. It fails when the radix reaches zero with
// value left over.
func encodeDecremental(natural *big.Int, digits int) ([]int, error) {
	k := digits
	rem := new(big.Int).Set(natural)
	kBig, q, m := new(big.Int), new(big.Int), new(big.Int)

	var numbers []int
	for rem.Sign() > 0 {
		if k < 1 {
			return nil, fmt.Errorf("%w: %s with digits=%d", ErrInsufficientDigits, natural, digits)
		}
		kBig.SetInt64(int64(k))
		q.QuoRem(rem, kBig, m)
		rem.Set(q)
		numbers = append(numbers, int(m.Int64()))
		k--
	}

	// Collected least significant first.
	reverse(numbers)
	return numbers, nil
}

// decodeDecremental reads numbers back. The first stored place has radix
// digits-len+1 and each following place one more.
func decodeDecremental(numbers []int, digits int) *big.Int {
	base := digits - len(numbers) + 1
	return mixedRadixEncode(numbers, func(i int) int {
		return base + i
	})
}
