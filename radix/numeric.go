// Package radix provides the factorial-type mixed-radix number systems that
// back every permutation mapping in permgen.
//
// Two systems are implemented:
//
//   - Incremental: the classic factorial number system. The least significant
//     place has radix 2, the next radix 3, and so on. A number is only as long
//     as its value requires.
//   - Decremental: a fixed-length system for a given digit budget. The least
//     significant place has radix `digits`, the next `digits-1`, down to
//     radix 2 at the most significant place.
//
// Both systems convert a digit array to and from a natural number (its rank)
// and implement addition and subtraction by going through that rank.
package radix

import (
	"math/big"
)

// Factorial returns n! as a big integer. Factorial of a negative number is
// treated as 1.
func Factorial(n int) *big.Int {
	result := big.NewInt(1)
	for i := 2; i <= n; i++ {
		result.Mul(result, big.NewInt(int64(i)))
	}
	return result
}

// Capacity returns the exclusive upper bound of naturals that fit in
// digits-1 places. Both systems use the radices 2..digits, so this is
// digits!.
func Capacity(digits int) *big.Int {
	return Factorial(digits)
}

// mixedRadixEncode folds digits into a natural number. radixOf returns the
// radix of the place holding numbers[i].
func mixedRadixEncode(numbers []int, radixOf func(i int) int) *big.Int {
	result := big.NewInt(0)
	for i, digit := range numbers {
		result.Mul(result, big.NewInt(int64(radixOf(i))))
		result.Add(result, big.NewInt(int64(digit)))
	}
	return result
}

// cloneDigits returns an independent copy of numbers.
func cloneDigits(numbers []int) []int {
	out := make([]int, len(numbers))
	copy(out, numbers)
	return out
}

// leftPad prefixes numbers with zeros until it is at least width long.
func leftPad(numbers []int, width int) []int {
	if len(numbers) >= width {
		return numbers
	}
	padded := make([]int, width)
	copy(padded[width-len(numbers):], numbers)
	return padded
}

// reverse reverses numbers in place.
func reverse(numbers []int) {
	for i, j := 0, len(numbers)-1; i < j; i, j = i+1, j-1 {
		numbers[i], numbers[j] = numbers[j], numbers[i]
	}
}
