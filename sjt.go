package permgen

// encodeSJT records, for each value t from 2 up to n, how many smaller values
// lie on the side of t given by sjtLeftward: to its left when leftward, to
// its right otherwise.
func encodeSJT(p Permutation) []int {
	n := len(p)
	numbers := make([]int, n-1)
	for t := 2; t <= n; t++ {
		i := t - 2
		pos := indexOf(p, t)
		if sjtLeftward(numbers, i) {
			numbers[i] = countSmaller(p[:pos], t)
		} else {
			numbers[i] = countSmaller(p[pos+1:], t)
		}
	}
	return numbers
}

// decodeSJT places values n down to 2. The direction for each is recomputed
// from the lower digits, which are all known up front.
func decodeSJT(numbers []int, n int) (Permutation, error) {
	slots := make(Permutation, n)
	for i := len(numbers) - 1; i >= 0; i-- {
		if err := fillSlot(slots, numbers[i], sjtLeftward(numbers, i), i+2); err != nil {
			return nil, err
		}
	}
	return fillLast(slots)
}

// sjtLeftward reports the scan direction of value i+2. Value 2 always counts
// to the right. An odd value follows the parity of the digit just below it;
// an even value follows the parity of the two digits below it. Odd parity
// means leftward.
func sjtLeftward(numbers []int, i int) bool {
	if i == 0 {
		return false
	}
	parity := numbers[i-1]
	if i%2 == 0 {
		parity += numbers[i-2]
	}
	return parity%2 == 1
}
