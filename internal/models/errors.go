package models

import "errors"

// Domain errors that can be returned by value-type constructors
var (
	// ErrInvalidAmount indicates an amount that cannot be represented as a
	// non-negative value of the signed balance accumulator type
	ErrInvalidAmount = errors.New("invalid amount")
)
