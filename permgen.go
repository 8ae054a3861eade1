// Package permgen maps permutations of 1..n to mixed-radix "intermediate
// numbers" and back, so that permutations can be ranked, unranked and
// stepped through with ordinary integer arithmetic.
//
// Four mappings are provided:
//
//   - Lexicographical: the Lehmer code, read as an incremental-based number.
//     Ranks follow dictionary order.
//   - IncrementalBased: for each value from n down to 2, the count of smaller
//     values to its right, read as an incremental-based number.
//   - DecrementalBased: the same counts taken for values 2 up to n, read as a
//     decremental-based number.
//   - SJTDirectional: counts taken toward a per-value direction derived from
//     the parity of earlier digits, read as a decremental-based number. Ranks
//     follow the Steinhaus-Johnson-Trotter adjacent-transposition order.
//
// The number systems live in the radix subpackage. A typical round trip:
//
//	p := permgen.MustParsePermutation("83674521")
//
//	num, err := permgen.Lexicographical.FromPermutation(p)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// num is Inc(7244221), rank 37313
//
//	offset, _ := radix.FromUint64(radix.Incremental, 2020, len(p))
//	next, err := num.Add(offset)
//	if err != nil {
//		log.Fatal(err)
//	}
//	q, err := permgen.Lexicographical.ToPermutation(next)
//	// q is 86457231
//
// Every function is a pure computation over its arguments and is safe for
// concurrent use.
package permgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Harry-Chen/permutation-generator/radix"
)

// Scheme selects one of the permutation mappings.
type Scheme int

const (
	// Lexicographical is the Lehmer-code mapping.
	Lexicographical Scheme = iota

	// IncrementalBased counts by descending value into an incremental number.
	IncrementalBased

	// DecrementalBased counts by ascending value into a decremental number.
	DecrementalBased

	// SJTDirectional is the adjacent-transposition mapping.
	SJTDirectional
)

// codec is the behavior table entry for one Scheme.
type codec struct {
	name    string
	aliases []string
	kind    radix.Kind
	// encode returns the digit array for a validated permutation.
	encode func(p Permutation) []int
	// decode rebuilds the permutation of size n from range-checked digits.
	decode func(numbers []int, n int) (Permutation, error)
}

var codecs = map[Scheme]codec{
	Lexicographical: {
		name:    "lexicographical",
		aliases: []string{"lex", "lehmer"},
		kind:    radix.Incremental,
		encode:  encodeLexicographical,
		decode:  decodeLexicographical,
	},
	IncrementalBased: {
		name:    "incremental",
		aliases: []string{"inc", "incremental-based"},
		kind:    radix.Incremental,
		encode:  encodeIncrementalBased,
		decode:  decodeIncrementalBased,
	},
	DecrementalBased: {
		name:    "decremental",
		aliases: []string{"dec", "decremental-based"},
		kind:    radix.Decremental,
		encode:  encodeDecrementalBased,
		decode:  decodeDecrementalBased,
	},
	SJTDirectional: {
		name:    "sjt",
		aliases: []string{"directional", "johnson-trotter"},
		kind:    radix.Decremental,
		encode:  encodeSJT,
		decode:  decodeSJT,
	},
}

// Schemes lists every mapping in declaration order.
func Schemes() []Scheme {
	return []Scheme{Lexicographical, IncrementalBased, DecrementalBased, SJTDirectional}
}

// ParseScheme resolves a scheme by name or alias, ignoring case.
func ParseScheme(name string) (Scheme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range Schemes() {
		c := codecs[s]
		if name == c.name {
			return s, nil
		}
		for _, alias := range c.aliases {
			if name == alias {
				return s, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

func (s Scheme) codec() (codec, error) {
	c, ok := codecs[s]
	if !ok {
		return codec{}, fmt.Errorf("%w: %d", ErrUnknownScheme, int(s))
	}
	return c, nil
}

// String returns the canonical name of s.
func (s Scheme) String() string {
	if c, ok := codecs[s]; ok {
		return c.name
	}
	return "Scheme(" + strconv.Itoa(int(s)) + ")"
}

// Kind returns the number system s encodes into.
func (s Scheme) Kind() radix.Kind {
	return codecs[s].kind
}

// FromPermutation encodes p. p must be exactly a permutation of 1..len(p).
func (s Scheme) FromPermutation(p Permutation) (radix.Number, error) {
	c, err := s.codec()
	if err != nil {
		return radix.Number{}, err
	}
	if err := p.Validate(); err != nil {
		return radix.Number{}, err
	}
	return radix.FromDigits(c.kind, c.encode(p), len(p))
}

// ToPermutation decodes num into the permutation of size num.Digits(). num
// must be of the system the scheme encodes into, exactly digits-1 places
// long, with every digit below the radix of its place.
func (s Scheme) ToPermutation(num radix.Number) (Permutation, error) {
	c, err := s.codec()
	if err != nil {
		return nil, err
	}
	if num.Kind() != c.kind {
		return nil, fmt.Errorf("%w: %s expects %s, got %s", ErrWrongKind, c.name, c.kind, num.Kind())
	}

	n := num.Digits()
	numbers := num.Numbers()
	if len(numbers) != n-1 {
		return nil, fmt.Errorf("%w: %d places for a permutation of %d", ErrLengthMismatch, len(numbers), n)
	}
	if err := checkPlaces(c.kind, numbers, n); err != nil {
		return nil, err
	}
	return c.decode(numbers, n)
}

// checkPlaces verifies each digit against the radix of its place. For
// incremental numbers place i holds radix n-i; for decremental numbers it
// holds radix i+2.
func checkPlaces(kind radix.Kind, numbers []int, n int) error {
	for i, d := range numbers {
		limit := i + 2
		if kind == radix.Incremental {
			limit = n - i
		}
		if d >= limit {
			return fmt.Errorf("%w: digit %d at place %d must be below %d", ErrDigitOutOfRange, d, i, limit)
		}
	}
	return nil
}
