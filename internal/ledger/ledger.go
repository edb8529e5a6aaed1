// Package ledger holds the state of a single ATM account: its balance and its PIN.
//
// A Ledger is owned by one caller and is not safe for concurrent use. Every
// operation either commits fully or leaves the ledger untouched.
package ledger

import (
	"crypto/subtle"
	"fmt"

	"github.com/Veraticus/tally/internal/model"
	"github.com/shopspring/decimal"
)

// Config holds the values a ledger starts with.
type Config struct {
	InitialBalance decimal.Decimal
	InitialPIN     model.PIN
}

// DefaultConfig returns a zero balance and the default PIN.
func DefaultConfig() Config {
	return Config{
		InitialBalance: decimal.Zero,
		InitialPIN:     model.DefaultPIN,
	}
}

// Ledger is a single-account balance and credential holder.
type Ledger struct {
	balance decimal.Decimal
	pin     model.PIN
}

// New creates a ledger from cfg. An empty InitialPIN falls back to model.DefaultPIN.
func New(cfg Config) (*Ledger, error) {
	if cfg.InitialBalance.IsNegative() {
		return nil, fmt.Errorf("initial balance %s: %w", cfg.InitialBalance, ErrInvalidAmount)
	}

	pin := cfg.InitialPIN
	if pin == "" {
		pin = model.DefaultPIN
	}
	if err := pin.Validate(); err != nil {
		return nil, fmt.Errorf("initial PIN: %w", err)
	}

	return &Ledger{
		balance: cfg.InitialBalance,
		pin:     pin,
	}, nil
}

// Authenticate reports whether candidate matches the current PIN.
// It keeps no attempt count; lockout policy belongs to the caller.
func (l *Ledger) Authenticate(candidate model.PIN) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(l.pin)) == 1
}

// Balance returns the current balance.
func (l *Ledger) Balance() decimal.Decimal {
	return l.balance
}

// Credit adds amount to the balance and returns the new balance.
func (l *Ledger) Credit(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return l.balance, ErrInvalidAmount
	}

	l.balance = l.balance.Add(amount)
	return l.balance, nil
}

// Debit subtracts amount from the balance and returns the new balance.
// The balance never goes below zero.
func (l *Ledger) Debit(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return l.balance, ErrInvalidAmount
	}
	if amount.GreaterThan(l.balance) {
		return l.balance, ErrInsufficientFunds
	}

	l.balance = l.balance.Sub(amount)
	return l.balance, nil
}

// RotatePIN replaces the PIN with next when current matches and next equals confirm.
// The current PIN is checked before the confirmation.
func (l *Ledger) RotatePIN(current, next, confirm model.PIN) error {
	if !l.Authenticate(current) {
		return ErrCredentialMismatch
	}
	if next != confirm {
		return ErrConfirmationMismatch
	}
	if err := next.Validate(); err != nil {
		return fmt.Errorf("new PIN: %w", err)
	}

	l.pin = next
	return nil
}
