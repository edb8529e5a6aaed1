package ledger

import "errors"

// ErrInsufficientFundsOrInvalidAmount matches every rejected debit, whichever the cause.
var ErrInsufficientFundsOrInvalidAmount = errors.New("insufficient funds or invalid amount")

// Amount errors. Both also match ErrInsufficientFundsOrInvalidAmount.
var (
	ErrInvalidAmount     error = &debitError{msg: "amount must be greater than zero"}
	ErrInsufficientFunds error = &debitError{msg: "insufficient funds"}
)

// PIN rotation errors.
var (
	ErrCredentialMismatch   = errors.New("current PIN is incorrect")
	ErrConfirmationMismatch = errors.New("new PIN and confirmation do not match")
)

type debitError struct {
	msg string
}

func (e *debitError) Error() string {
	return e.msg
}

func (e *debitError) Is(target error) bool {
	return target == ErrInsufficientFundsOrInvalidAmount
}
