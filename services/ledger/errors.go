package ledger

import "fmt"

// LedgerError is the typed error surfaced by ledger operations.
type LedgerError struct {
	Code    string
	Message string
}

func (e *LedgerError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrInvalidAmount rejects non-positive payout amounts before any
// write happens.
func ErrInvalidAmount(amount float64) error {
	return &LedgerError{
		Code:    "invalidAmount",
		Message: fmt.Sprintf("payment amount must be positive, got %.2f", amount),
	}
}

func ErrNotFound(id string) error {
	return &LedgerError{Code: "collaboratorNotFound", Message: fmt.Sprintf("collaborator %s not found", id)}
}

func ErrInvalidStatus(status string) error {
	return &LedgerError{Code: "invalidStatus", Message: fmt.Sprintf("payout status must be paid or scheduled, got %q", status)}
}
