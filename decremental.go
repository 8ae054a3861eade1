package permgen

// encodeDecrementalBased walks values from 2 up to n and records how many
// smaller values sit to the right of each.
func encodeDecrementalBased(p Permutation) []int {
	n := len(p)
	numbers := make([]int, 0, n-1)
	for v := 2; v <= n; v++ {
		pos := indexOf(p, v)
		numbers = append(numbers, countSmaller(p[pos+1:], v))
	}
	return numbers
}

// decodeDecrementalBased reads the digits back to front, so values are still
// placed from n down to 2.
func decodeDecrementalBased(numbers []int, n int) (Permutation, error) {
	slots := make(Permutation, n)
	for i := len(numbers) - 1; i >= 0; i-- {
		if err := fillSlot(slots, numbers[i], false, i+2); err != nil {
			return nil, err
		}
	}
	return fillLast(slots)
}
