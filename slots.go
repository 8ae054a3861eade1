package permgen

import "fmt"

// fillSlot writes target into the (skip+1)-th empty slot met while scanning
// slots from the right end, or from the left end when fromLeft is set. A
// zero marks an empty slot.
func fillSlot(slots Permutation, skip int, fromLeft bool, target int) error {
	n := len(slots)
	seen := 0
	for k := 0; k < n; k++ {
		j := n - 1 - k
		if fromLeft {
			j = k
		}
		if slots[j] != 0 {
			continue
		}
		if seen == skip {
			slots[j] = target
			return nil
		}
		seen++
	}
	return fmt.Errorf("%w: only %d empty slots left for %d, skip %d", ErrDigitOutOfRange, seen, target, skip)
}

// fillLast writes 1 into the single slot still empty once every larger value
// has been placed.
func fillLast(slots Permutation) (Permutation, error) {
	if err := fillSlot(slots, 0, true, 1); err != nil {
		return nil, err
	}
	return slots, nil
}
