package radix

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Kind selects one of the two factorial-type number systems.
type Kind int

const (
	// Incremental is the factorial number system with radices 2, 3, 4, ...
	// from the least significant place upward.
	Incremental Kind = iota

	// Decremental is the fixed-length system whose least significant place
	// has radix digits and whose radices shrink toward the most significant
	// place.
	Decremental
)

// String returns the short display name used by Number.String.
func (k Kind) String() string {
	switch k {
	case Incremental:
		return "Inc"
	case Decremental:
		return "Dec"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// system is the behavior table entry for one Kind.
type system struct {
	// check validates an explicit digit array on construction.
	check func(numbers []int, digits int) error
	// encode turns a non-negative natural into digits, most significant first.
	encode func(natural *big.Int, digits int) ([]int, error)
	// decode is the inverse of encode.
	decode func(numbers []int, digits int) *big.Int
}

var systems = map[Kind]system{
	Incremental: {
		check:  checkIncremental,
		encode: encodeIncremental,
		decode: decodeIncremental,
	},
	Decremental: {
		check:  checkDecremental,
		encode: encodeDecremental,
		decode: decodeDecremental,
	},
}

func (k Kind) system() (system, error) {
	sys, ok := systems[k]
	if !ok {
		return system{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return sys, nil
}

// Number is a digit array tagged with its number system and digit budget.
// The zero value is not usable; build numbers with FromDigits, ParseNumber
// or FromNatural. A Number is immutable and safe to share between goroutines.
type Number struct {
	kind    Kind
	digits  int
	numbers []int
}

// FromDigits wraps an explicit digit array, most significant digit first.
// Arrays shorter than digits-1 are left-padded with zeros. The array is
// copied, so the caller may reuse it.
func FromDigits(kind Kind, numbers []int, digits int) (Number, error) {
	sys, err := kind.system()
	if err != nil {
		return Number{}, err
	}
	if digits < 1 {
		return Number{}, fmt.Errorf("%w: got %d", ErrBadDigits, digits)
	}
	for i, d := range numbers {
		if d < 0 {
			return Number{}, fmt.Errorf("%w: %d at index %d", ErrNegativeDigit, d, i)
		}
	}
	if err := sys.check(numbers, digits); err != nil {
		return Number{}, err
	}

	return Number{
		kind:    kind,
		digits:  digits,
		numbers: leftPad(cloneDigits(numbers), digits-1),
	}, nil
}

// ParseNumber builds a Number from a string of decimal digits such as
// "1222447", one digit per place.
func ParseNumber(kind Kind, s string, digits int) (Number, error) {
	numbers := make([]int, 0, len(s))
	for i, r := range s {
		if r < '0' || r > '9' {
			return Number{}, fmt.Errorf("%w: %q at offset %d", ErrBadNumeral, r, i)
		}
		numbers = append(numbers, int(r-'0'))
	}
	return FromDigits(kind, numbers, digits)
}

// FromNatural encodes natural under the radix schedule of kind. Zero is a
// valid natural and encodes to all-zero digits.
func FromNatural(kind Kind, natural *big.Int, digits int) (Number, error) {
	sys, err := kind.system()
	if err != nil {
		return Number{}, err
	}
	if digits < 1 {
		return Number{}, fmt.Errorf("%w: got %d", ErrBadDigits, digits)
	}
	if natural == nil {
		return Number{}, fmt.Errorf("%w: nil natural", ErrNegativeNatural)
	}
	if natural.Sign() < 0 {
		return Number{}, fmt.Errorf("%w: got %s", ErrNegativeNatural, natural)
	}

	numbers, err := sys.encode(natural, digits)
	if err != nil {
		return Number{}, err
	}

	return Number{
		kind:    kind,
		digits:  digits,
		numbers: leftPad(numbers, digits-1),
	}, nil
}

// FromUint64 is FromNatural for a machine-sized natural.
func FromUint64(kind Kind, natural uint64, digits int) (Number, error) {
	return FromNatural(kind, new(big.Int).SetUint64(natural), digits)
}

// Kind returns the number system of n.
func (n Number) Kind() Kind { return n.kind }

// Digits returns the digit budget (the permutation size) of n.
func (n Number) Digits() int { return n.digits }

// Len returns the number of stored places.
func (n Number) Len() int { return len(n.numbers) }

// Numbers returns a copy of the digit array, most significant first.
func (n Number) Numbers() []int { return cloneDigits(n.numbers) }

// Natural returns the rank encoded by n.
func (n Number) Natural() *big.Int {
	sys, err := n.kind.system()
	if err != nil {
		return new(big.Int)
	}
	return sys.decode(n.numbers, n.digits)
}

// Uint64 returns the rank of n and whether it fits in a uint64.
func (n Number) Uint64() (uint64, bool) {
	natural := n.Natural()
	return natural.Uint64(), natural.IsUint64()
}

// Cmp compares the ranks of n and other and returns -1, 0 or +1.
func (n Number) Cmp(other Number) int {
	return n.Natural().Cmp(other.Natural())
}

// Equal reports whether n and other have the same kind, digit budget and
// digit array.
func (n Number) Equal(other Number) bool {
	if n.kind != other.kind || n.digits != other.digits || len(n.numbers) != len(other.numbers) {
		return false
	}
	for i := range n.numbers {
		if n.numbers[i] != other.numbers[i] {
			return false
		}
	}
	return true
}

// Add returns the number whose rank is the sum of the ranks of n and other.
func (n Number) Add(other Number) (Number, error) {
	if err := n.compatible(other); err != nil {
		return Number{}, err
	}
	sum := new(big.Int).Add(n.Natural(), other.Natural())
	return FromNatural(n.kind, sum, n.digits)
}

// Sub returns the number whose rank is the rank of n minus the rank of
// other. It fails with ErrUnderflow when other ranks above n.
func (n Number) Sub(other Number) (Number, error) {
	if err := n.compatible(other); err != nil {
		return Number{}, err
	}
	lhs, rhs := n.Natural(), other.Natural()
	if lhs.Cmp(rhs) < 0 {
		return Number{}, fmt.Errorf("%w: %s - %s", ErrUnderflow, lhs, rhs)
	}
	return FromNatural(n.kind, lhs.Sub(lhs, rhs), n.digits)
}

func (n Number) compatible(other Number) error {
	if n.kind != other.kind || n.digits != other.digits {
		return fmt.Errorf("%w: %s/%d vs %s/%d", ErrKindMismatch, n.kind, n.digits, other.kind, other.digits)
	}
	return nil
}

// String renders n as Inc(7245310) or Dec(...). Places holding a value of
// 10 or more switch the body to a comma-separated list.
func (n Number) String() string {
	sep := ""
	for _, d := range n.numbers {
		if d > 9 {
			sep = ","
			break
		}
	}
	parts := make([]string, len(n.numbers))
	for i, d := range n.numbers {
		parts[i] = strconv.Itoa(d)
	}
	return n.kind.String() + "(" + strings.Join(parts, sep) + ")"
}
