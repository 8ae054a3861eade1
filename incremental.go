package permgen

// encodeIncrementalBased walks values from n down to 2 and records how many
// smaller values sit to the right of each.
func encodeIncrementalBased(p Permutation) []int {
	n := len(p)
	numbers := make([]int, 0, n-1)
	for v := n; v >= 2; v-- {
		pos := indexOf(p, v)
		numbers = append(numbers, countSmaller(p[pos+1:], v))
	}
	return numbers
}

// decodeIncrementalBased places n, n-1, ..., 2 in stored order, each one
// skipping as many empty slots from the right as its digit says.
func decodeIncrementalBased(numbers []int, n int) (Permutation, error) {
	slots := make(Permutation, n)
	for i, num := range numbers {
		if err := fillSlot(slots, num, false, n-i); err != nil {
			return nil, err
		}
	}
	return fillLast(slots)
}
