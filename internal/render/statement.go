// Package render formats statements as fixed-width text tables. The column
// layout is part of the external contract: "Date" centered in 30 columns,
// "Amount" and "Balance" right-aligned in 10, joined by " | ".
package render

import (
	"fmt"
	"strings"

	"github.com/mockbank/ledger/internal/models"
)

const (
	dateWidth      = 30
	amountWidth    = 10
	timestampFormat = "2006-01-02 15:04:05.000000"
)

// Header returns the statement table header row.
func Header() string {
	return fmt.Sprintf("%s | %*s | %*s",
		center("Date", dateWidth), amountWidth, "Amount", amountWidth, "Balance")
}

// Line formats one statement line. Timestamps are rendered in UTC with
// microsecond precision.
func Line(line models.StatementLine) string {
	return fmt.Sprintf("%s | %*d | %*d",
		center(line.Timestamp.UTC().Format(timestampFormat), dateWidth),
		amountWidth, line.Amount, amountWidth, line.Balance)
}

// Render returns the full table: header plus one row per statement line,
// most recent first, joined by newlines.
func Render(statement models.Statement) string {
	rows := make([]string, 0, len(statement.Lines)+1)
	rows = append(rows, Header())
	for _, line := range statement.Lines {
		rows = append(rows, Line(line))
	}
	return strings.Join(rows, "\n")
}

// center pads s with spaces to width w, putting the extra space on the
// right when the padding is odd.
func center(s string, w int) string {
	if len(s) >= w {
		return s
	}
	left := (w - len(s)) / 2
	right := w - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
