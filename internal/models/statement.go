package models

import "time"

// StatementLine is a derived view of one operation: its signed amount and
// the balance of the account immediately after that operation was applied
// in insertion order.
type StatementLine struct {
	Timestamp time.Time
	Amount    int64
	Balance   int64
}

// Statement is a read-only projection of the ledger, ordered by timestamp
// descending. It is recomputed from the full log on every request.
type Statement struct {
	Lines []StatementLine
}
