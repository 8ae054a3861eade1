package permgen

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harry-Chen/permutation-generator/radix"
)

func TestFromPermutation_KnownDigits(t *testing.T) {
	p := MustParsePermutation("83674521")

	tests := []struct {
		scheme Scheme
		kind   radix.Kind
		digits []int
		rank   int64
	}{
		{Lexicographical, radix.Incremental, []int{7, 2, 4, 4, 2, 2, 1}, 37313},
		{IncrementalBased, radix.Incremental, []int{7, 4, 4, 2, 2, 2, 1}, 38705},
		{DecrementalBased, radix.Decremental, []int{1, 2, 2, 2, 4, 4, 7}, 37895},
		{SJTDirectional, radix.Decremental, []int{1, 0, 1, 2, 1, 2, 0}, 22584},
	}

	for _, tt := range tests {
		t.Run(tt.scheme.String(), func(t *testing.T) {
			num, err := tt.scheme.FromPermutation(p)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, num.Kind())
			assert.Equal(t, 8, num.Digits())
			assert.Equal(t, tt.digits, num.Numbers())
			assert.Equal(t, tt.rank, num.Natural().Int64())

			back, err := tt.scheme.ToPermutation(num)
			require.NoError(t, err)
			assert.Equal(t, "83674521", back.String())
		})
	}
}

func TestLexicographical_DecodesLehmerDigits(t *testing.T) {
	num, err := radix.FromDigits(radix.Incremental, []int{7, 2, 4, 4, 2, 2, 1}, 8)
	require.NoError(t, err)

	p, err := Lexicographical.ToPermutation(num)
	require.NoError(t, err)
	assert.Equal(t, Permutation{8, 3, 6, 7, 4, 5, 2, 1}, p)
}

func TestRoundTrip_AllPermutations(t *testing.T) {
	for _, scheme := range Schemes() {
		for n := 1; n <= 7; n++ {
			err := scheme.Enumerate(n, func(rank *big.Int, p Permutation) bool {
				num, err := scheme.FromPermutation(p)
				require.NoError(t, err)
				require.Equal(t, 0, num.Natural().Cmp(rank), "%s n=%d p=%s", scheme, n, p)

				back, err := scheme.ToPermutation(num)
				require.NoError(t, err)
				require.True(t, back.Equal(p), "%s n=%d p=%s back=%s", scheme, n, p, back)
				return true
			})
			require.NoError(t, err)
		}
	}
}

func TestBijection_Coverage(t *testing.T) {
	const n = 6
	total := int(radix.Capacity(n).Int64())

	for _, scheme := range Schemes() {
		t.Run(scheme.String(), func(t *testing.T) {
			seenRanks := make(map[int64]bool, total)
			seenPerms := make(map[string]bool, total)
			for _, p := range allPermutations(n) {
				rank, err := scheme.Rank(p)
				require.NoError(t, err)
				require.True(t, rank.Sign() >= 0 && rank.Int64() < int64(total))
				require.False(t, seenRanks[rank.Int64()], "collision at %s", rank)
				seenRanks[rank.Int64()] = true
				seenPerms[p.String()] = true
			}
			assert.Len(t, seenRanks, total)
			assert.Len(t, seenPerms, total)
		})
	}
}

func TestUnrank_Orders(t *testing.T) {
	tests := map[Scheme][]string{
		Lexicographical:  {"123", "132", "213", "231", "312", "321"},
		IncrementalBased: {"123", "213", "132", "231", "312", "321"},
		DecrementalBased: {"123", "132", "312", "213", "231", "321"},
		SJTDirectional:   {"123", "132", "312", "321", "231", "213"},
	}

	for scheme, want := range tests {
		t.Run(scheme.String(), func(t *testing.T) {
			var got []string
			err := scheme.Enumerate(3, func(_ *big.Int, p Permutation) bool {
				got = append(got, p.String())
				return true
			})
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestSJT_AdjacentTranspositions(t *testing.T) {
	for n := 2; n <= 6; n++ {
		var prev Permutation
		err := SJTDirectional.Enumerate(n, func(_ *big.Int, p Permutation) bool {
			if prev != nil {
				require.Equal(t, 1, adjacentSwaps(prev, p), "n=%d %s -> %s", n, prev, p)
			}
			prev = p
			return true
		})
		require.NoError(t, err)
	}
}

func TestLexicographical_DictionaryOrder(t *testing.T) {
	var prev Permutation
	err := Lexicographical.Enumerate(5, func(_ *big.Int, p Permutation) bool {
		if prev != nil {
			require.Less(t, prev.String(), p.String())
		}
		prev = p
		return true
	})
	require.NoError(t, err)
}

func TestFromPermutation_Invalid(t *testing.T) {
	tests := []struct {
		name string
		p    Permutation
	}{
		{"empty", Permutation{}},
		{"repeat", Permutation{1, 2, 2}},
		{"gap", Permutation{1, 2, 4}},
		{"zero", Permutation{0, 1, 2}},
		{"negative", Permutation{-1, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, scheme := range Schemes() {
				_, err := scheme.FromPermutation(tt.p)
				assert.ErrorIs(t, err, ErrInvalidPermutation, scheme.String())
			}
		})
	}
}

func TestToPermutation_WrongKind(t *testing.T) {
	inc, err := radix.FromUint64(radix.Incremental, 5, 4)
	require.NoError(t, err)
	dec, err := radix.FromUint64(radix.Decremental, 5, 4)
	require.NoError(t, err)

	_, err = Lexicographical.ToPermutation(dec)
	assert.ErrorIs(t, err, ErrWrongKind)
	_, err = IncrementalBased.ToPermutation(dec)
	assert.ErrorIs(t, err, ErrWrongKind)
	_, err = DecrementalBased.ToPermutation(inc)
	assert.ErrorIs(t, err, ErrWrongKind)
	_, err = SJTDirectional.ToPermutation(inc)
	assert.ErrorIs(t, err, ErrWrongKind)
}

func TestToPermutation_OutOfRange(t *testing.T) {
	// 5 sits in a place of radix 5.
	bad, err := radix.FromDigits(radix.Incremental, []int{7, 2, 4, 5, 3, 1, 0}, 8)
	require.NoError(t, err)
	_, err = Lexicographical.ToPermutation(bad)
	assert.ErrorIs(t, err, ErrDigitOutOfRange)
	_, err = IncrementalBased.ToPermutation(bad)
	assert.ErrorIs(t, err, ErrDigitOutOfRange)

	badDec, err := radix.FromDigits(radix.Decremental, []int{2, 0, 0}, 4)
	require.NoError(t, err)
	_, err = DecrementalBased.ToPermutation(badDec)
	assert.ErrorIs(t, err, ErrDigitOutOfRange)
	_, err = SJTDirectional.ToPermutation(badDec)
	assert.ErrorIs(t, err, ErrDigitOutOfRange)
}

func TestToPermutation_TooLong(t *testing.T) {
	grown, err := radix.FromUint64(radix.Incremental, 24, 4)
	require.NoError(t, err)

	_, err = Lexicographical.ToPermutation(grown)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestUnknownScheme(t *testing.T) {
	_, err := Scheme(42).FromPermutation(Identity(3))
	assert.ErrorIs(t, err, ErrUnknownScheme)

	_, err = Scheme(42).ToPermutation(radix.Number{})
	assert.ErrorIs(t, err, ErrUnknownScheme)

	assert.Equal(t, "Scheme(42)", Scheme(42).String())
}

func TestParseScheme(t *testing.T) {
	tests := map[string]Scheme{
		"lexicographical": Lexicographical,
		"LEX":             Lexicographical,
		"inc":             IncrementalBased,
		"decremental":     DecrementalBased,
		" sjt ":           SJTDirectional,
		"directional":     SJTDirectional,
	}
	for name, want := range tests {
		got, err := ParseScheme(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseScheme("bogus")
	assert.ErrorIs(t, err, ErrUnknownScheme)
}

func TestFillSlot(t *testing.T) {
	slots := Permutation{0, 5, 0, 0}

	require.NoError(t, fillSlot(slots, 1, false, 4))
	assert.Equal(t, Permutation{0, 5, 4, 0}, slots)

	require.NoError(t, fillSlot(slots, 0, true, 3))
	assert.Equal(t, Permutation{3, 5, 4, 0}, slots)

	err := fillSlot(slots, 1, false, 2)
	assert.ErrorIs(t, err, ErrDigitOutOfRange)
	assert.Equal(t, Permutation{3, 5, 4, 0}, slots)
}

// allPermutations returns every permutation of 1..n via Heap's algorithm.
func allPermutations(n int) []Permutation {
	var out []Permutation
	var generate func(k int, a Permutation)
	generate = func(k int, a Permutation) {
		if k == 1 {
			out = append(out, a.Clone())
			return
		}
		generate(k-1, a)
		for i := 0; i < k-1; i++ {
			if k%2 == 0 {
				a[i], a[k-1] = a[k-1], a[i]
			} else {
				a[0], a[k-1] = a[k-1], a[0]
			}
			generate(k-1, a)
		}
	}
	generate(n, Identity(n))
	return out
}

// adjacentSwaps returns 1 when b is a with one pair of neighbors swapped,
// and 0 otherwise.
func adjacentSwaps(a, b Permutation) int {
	for i := 0; i+1 < len(a); i++ {
		if a[i] != b[i] {
			if a[i] == b[i+1] && a[i+1] == b[i] && a[i+2:].String() == b[i+2:].String() {
				return 1
			}
			return 0
		}
	}
	return 0
}
