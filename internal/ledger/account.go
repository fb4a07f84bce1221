package ledger

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mockbank/ledger/internal/models"
)

// DefaultOverdraftLimit is the minimum permitted balance expressed as a
// positive number of minor units: withdrawals may drive the balance down
// to -DefaultOverdraftLimit but never below it.
const DefaultOverdraftLimit int64 = 50

// Ledger exposes the account's public contract
type Ledger interface {
	Deposit(amount models.Money, at time.Time)
	Withdraw(amount models.Money, at time.Time) error
	Balance() int64
	Statement() models.Statement
}

// Account is an append-only log of signed monetary operations with an
// overdraft floor enforced at write time. It owns its operations
// exclusively and is not safe for concurrent mutation; callers in a
// multi-goroutine environment must serialize access externally, since the
// balance check and append in Withdraw are not atomic.
type Account struct {
	operations     []models.Operation
	nextSequence   uint64
	overdraftLimit int64
}

var _ Ledger = (*Account)(nil)

// NewAccount creates an empty account with the default overdraft floor.
func NewAccount() *Account {
	return NewAccountWithOverdraft(DefaultOverdraftLimit)
}

// NewAccountWithOverdraft creates an empty account whose balance may drop
// to -limit minor units before withdrawals are refused.
func NewAccountWithOverdraft(limit int64) *Account {
	return &Account{overdraftLimit: limit}
}

// Balance returns the sum of signed values over all operations in
// insertion order. It has no side effects.
func (a *Account) Balance() int64 {
	var balance int64
	for _, op := range a.operations {
		balance += op.SignedValue()
	}
	return balance
}

// Deposit appends a deposit operation. It always succeeds: Money is
// non-negative by construction.
func (a *Account) Deposit(amount models.Money, at time.Time) {
	a.append(models.OperationTypeDeposit, amount, at)
}

// Withdraw appends a withdrawal operation unless it would drive the
// balance below the overdraft floor. The floor is inclusive: a withdrawal
// landing the balance exactly at -limit is permitted. On rejection the
// log is left untouched.
func (a *Account) Withdraw(amount models.Money, at time.Time) error {
	if a.Balance()-amount.Cents() < -a.overdraftLimit {
		return &Error{
			Code:    ErrCodeInsufficientFunds,
			Message: "insufficient funds",
		}
	}
	a.append(models.OperationTypeWithdraw, amount, at)
	return nil
}

// Statement derives the statement in two passes: running balances are
// folded in insertion order so they stay historically faithful, then the
// lines are re-sorted by timestamp descending for presentation. Lines
// sharing a timestamp order newest-appended first. Collapsing this into a
// single sort-then-fold pass would corrupt running balances whenever
// insertion order and timestamp order diverge.
func (a *Account) Statement() models.Statement {
	type entry struct {
		line     models.StatementLine
		sequence uint64
	}

	entries := make([]entry, 0, len(a.operations))
	var balance int64
	for _, op := range a.operations {
		balance += op.SignedValue()
		entries = append(entries, entry{
			line: models.StatementLine{
				Timestamp: op.Timestamp,
				Amount:    op.SignedValue(),
				Balance:   balance,
			},
			sequence: op.Sequence,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].line.Timestamp.Equal(entries[j].line.Timestamp) {
			return entries[i].line.Timestamp.After(entries[j].line.Timestamp)
		}
		return entries[i].sequence > entries[j].sequence
	})

	lines := make([]models.StatementLine, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.line)
	}

	return models.Statement{Lines: lines}
}

func (a *Account) append(opType models.OperationType, amount models.Money, at time.Time) {
	a.operations = append(a.operations, models.Operation{
		ID:        uuid.New(),
		Sequence:  a.nextSequence,
		Type:      opType,
		Amount:    amount,
		Timestamp: at,
	})
	a.nextSequence++
}
