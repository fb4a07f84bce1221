package ledger

import "fmt"

// Error represents a business rule rejection with a code
type Error struct {
	Err     error
	Message string
	Code    string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *Error) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeInsufficientFunds = "insufficient_funds"
)
