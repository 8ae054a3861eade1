package permgen

import (
	"fmt"
	"math/big"

	"github.com/Harry-Chen/permutation-generator/radix"
)

// Rank returns the position of p in the ordering induced by s, in [0, n!).
func (s Scheme) Rank(p Permutation) (*big.Int, error) {
	num, err := s.FromPermutation(p)
	if err != nil {
		return nil, err
	}
	return num.Natural(), nil
}

// Unrank returns the permutation of size n at position rank in the ordering
// induced by s.
func (s Scheme) Unrank(n int, rank *big.Int) (Permutation, error) {
	c, err := s.codec()
	if err != nil {
		return nil, err
	}
	if err := checkRank(n, rank); err != nil {
		return nil, err
	}

	num, err := radix.FromNatural(c.kind, rank, n)
	if err != nil {
		return nil, err
	}
	return s.ToPermutation(num)
}

// Step moves delta positions from p through the ordering induced by s. A
// negative delta moves backward. Leaving [0, n!) fails with ErrBadRank.
func (s Scheme) Step(p Permutation, delta *big.Int) (Permutation, error) {
	if delta == nil {
		return nil, fmt.Errorf("%w: nil delta", ErrBadRank)
	}
	from, err := s.FromPermutation(p)
	if err != nil {
		return nil, err
	}

	n := len(p)
	magnitude := new(big.Int).Abs(delta)
	if magnitude.Cmp(radix.Capacity(n)) >= 0 {
		return nil, fmt.Errorf("%w: step %s over %d! permutations", ErrBadRank, delta, n)
	}
	offset, err := radix.FromNatural(s.Kind(), magnitude, n)
	if err != nil {
		return nil, err
	}

	var to radix.Number
	if delta.Sign() < 0 {
		to, err = from.Sub(offset)
	} else {
		to, err = from.Add(offset)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRank, err)
	}
	if err := checkRank(n, to.Natural()); err != nil {
		return nil, err
	}
	return s.ToPermutation(to)
}

// Distance returns rank(b) - rank(a) under s. a and b must have equal size.
func (s Scheme) Distance(a, b Permutation) (*big.Int, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: sizes %d and %d", ErrLengthMismatch, len(a), len(b))
	}
	ra, err := s.Rank(a)
	if err != nil {
		return nil, err
	}
	rb, err := s.Rank(b)
	if err != nil {
		return nil, err
	}
	return rb.Sub(rb, ra), nil
}

// Enumerate calls fn with every permutation of size n in rank order under
// s, stopping early when fn returns false.
func (s Scheme) Enumerate(n int, fn func(rank *big.Int, p Permutation) bool) error {
	if n < 1 {
		return fmt.Errorf("%w: size %d", ErrInvalidPermutation, n)
	}
	total := radix.Capacity(n)
	for rank := big.NewInt(0); rank.Cmp(total) < 0; rank.Add(rank, big.NewInt(1)) {
		p, err := s.Unrank(n, rank)
		if err != nil {
			return err
		}
		if !fn(new(big.Int).Set(rank), p) {
			return nil
		}
	}
	return nil
}

func checkRank(n int, rank *big.Int) error {
	if n < 1 {
		return fmt.Errorf("%w: size %d", ErrInvalidPermutation, n)
	}
	if rank == nil || rank.Sign() < 0 || rank.Cmp(radix.Capacity(n)) >= 0 {
		return fmt.Errorf("%w: %v not in [0, %d!)", ErrBadRank, rank, n)
	}
	return nil
}
