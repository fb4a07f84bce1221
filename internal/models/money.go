package models

import "math"

// Money represents a non-negative monetary amount in minor currency units.
// It is immutable after construction.
type Money struct {
	cents int64
}

// NewMoney creates a Money value from a minor-unit amount.
// Amounts above math.MaxInt64 cannot widen to the signed balance
// accumulator and are rejected rather than wrapped.
func NewMoney(cents uint64) (Money, error) {
	if cents > math.MaxInt64 {
		return Money{}, ErrInvalidAmount
	}
	return Money{cents: int64(cents)}, nil
}

// Cents returns the amount in minor currency units.
func (m Money) Cents() int64 {
	return m.cents
}
