package models

import (
	"time"

	"github.com/google/uuid"
)

// OperationType represents the direction of a ledger operation
type OperationType string

const (
	OperationTypeDeposit  OperationType = "DEPOSIT"
	OperationTypeWithdraw OperationType = "WITHDRAW"
)

// Operation represents a single ledger entry. Once appended to an account
// it is never edited or removed.
type Operation struct {
	Timestamp time.Time
	Type      OperationType
	Amount    Money
	Sequence  uint64
	ID        uuid.UUID
}

// SignedValue returns the operation's contribution to the account balance:
// positive for deposits, negative for withdrawals.
func (o Operation) SignedValue() int64 {
	if o.Type == OperationTypeWithdraw {
		return -o.Amount.Cents()
	}
	return o.Amount.Cents()
}
