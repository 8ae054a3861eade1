package permgen

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePermutation reads a permutation from text. A run of decimal digits
// such as "83674521" is read one digit per element, which covers n <= 9.
// Larger permutations are written with separators between elements, for
// example "10,3,1,9,2,8,4,7,5,6" or "10 3 1 9 2 8 4 7 5 6". Any character
// that is not a digit counts as a separator.
//
// The result is validated with Permutation.Validate.
func ParsePermutation(s string) (Permutation, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidPermutation)
	}

	var p Permutation
	if hasSeparator(s) {
		fields := strings.FieldsFunc(s, isSeparator)
		p = make(Permutation, 0, len(fields))
		for _, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPermutation, field, err)
			}
			p = append(p, v)
		}
	} else {
		p = make(Permutation, 0, len(s))
		for _, r := range s {
			p = append(p, int(r-'0'))
		}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// MustParsePermutation is ParsePermutation for literals known to be valid.
// It panics on error.
func MustParsePermutation(s string) Permutation {
	p, err := ParsePermutation(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String renders p as compact digits when every element is a single digit
// and as a comma-separated list otherwise.
func (p Permutation) String() string {
	wide := false
	for _, v := range p {
		if v < 0 || v > 9 {
			wide = true
			break
		}
	}

	var b strings.Builder
	for i, v := range p {
		if wide && i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

func isSeparator(r rune) bool {
	return r < '0' || r > '9'
}

func hasSeparator(s string) bool {
	return strings.IndexFunc(s, isSeparator) >= 0
}
