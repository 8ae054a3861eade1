package radix

import "errors"

// Sentinel errors returned by the number systems.
var (
	// ErrBadDigits indicates a digit budget below 1.
	ErrBadDigits = errors.New("radix: digits must be at least 1")

	// ErrNegativeNatural indicates an attempt to encode a negative natural.
	ErrNegativeNatural = errors.New("radix: natural must be non-negative")

	// ErrNegativeDigit indicates a digit array holding a negative element.
	ErrNegativeDigit = errors.New("radix: digit must be non-negative")

	// ErrInsufficientDigits indicates that the decremental radix schedule ran
	// out before the natural was fully consumed.
	ErrInsufficientDigits = errors.New("radix: digits not enough for decremental-based number")

	// ErrTooManyDigits indicates a decremental digit array longer than digits-1.
	ErrTooManyDigits = errors.New("radix: digit array longer than digits-1")

	// ErrKindMismatch indicates arithmetic between numbers of different kinds
	// or digit budgets.
	ErrKindMismatch = errors.New("radix: operands must share kind and digits")

	// ErrUnderflow indicates a subtraction whose result would be negative.
	ErrUnderflow = errors.New("radix: subtraction underflow")

	// ErrBadNumeral indicates a digit string holding a non-digit character.
	ErrBadNumeral = errors.New("radix: numeral must contain only decimal digits")

	// ErrUnknownKind indicates a Kind outside Incremental and Decremental.
	ErrUnknownKind = errors.New("radix: unknown number system kind")
)
