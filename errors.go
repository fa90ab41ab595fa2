package orderkey

import "errors"

var (
	// ErrInvalidSymbol is returned when text holds a character outside the Alphabet.
	ErrInvalidSymbol = errors.New("orderkey: invalid symbol")

	// ErrNoRoomBetweenEqualKeys is returned when bisecting two keys that compare equal.
	ErrNoRoomBetweenEqualKeys = errors.New("orderkey: no room between equal keys")

	// ErrCarryExhausted is returned when a carry ripples past the first digit.
	ErrCarryExhausted = errors.New("orderkey: carry exhausted")

	// ErrCannotDecreaseFurther is returned by BisectBefore on the smallest key.
	ErrCannotDecreaseFurther = errors.New("orderkey: cannot decrease further")

	// ErrDigitOutOfRange is returned when a generated key holds a digit above MaxDigit.
	ErrDigitOutOfRange = errors.New("orderkey: digit out of range")

	// ErrVariantMismatch is returned when keys of different variants are combined.
	ErrVariantMismatch = errors.New("orderkey: variant mismatch")

	// ErrOutOfOrder is returned when bounds are not in ascending order.
	ErrOutOfOrder = errors.New("orderkey: bounds out of order")

	// ErrBucketMismatch is returned when bisecting lexoranks of different buckets.
	ErrBucketMismatch = errors.New("orderkey: bucket mismatch")
)
