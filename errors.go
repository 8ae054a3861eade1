package permgen

import "errors"

// Sentinel errors returned by the permutation mappings.
var (
	// ErrInvalidPermutation indicates input that is not exactly a
	// permutation of 1..n for its own length n.
	ErrInvalidPermutation = errors.New("permgen: must be a valid permutation of 1 to n")

	// ErrWrongKind indicates a number whose system does not match the one
	// the mapping decodes.
	ErrWrongKind = errors.New("permgen: number system does not match mapping")

	// ErrLengthMismatch indicates a digit array that is not digits-1 places
	// long, or two permutations of different sizes.
	ErrLengthMismatch = errors.New("permgen: length mismatch")

	// ErrDigitOutOfRange indicates a digit at or above the radix of its place.
	ErrDigitOutOfRange = errors.New("permgen: digit out of range for its place")

	// ErrUnknownScheme indicates a Scheme value or name that names no mapping.
	ErrUnknownScheme = errors.New("permgen: unknown mapping scheme")

	// ErrBadRank indicates a rank outside [0, n!).
	ErrBadRank = errors.New("permgen: rank out of range")
)
