package model

import (
	"errors"
	"fmt"
	"strings"
)

// PIN length bounds accepted by ParsePIN.
const (
	MinPINLength = 4
	MaxPINLength = 12
)

// DefaultPIN is the credential an account starts with when none is configured.
const DefaultPIN PIN = "1234"

// ErrInvalidPIN is returned when text cannot be used as a PIN.
var ErrInvalidPIN = errors.New("invalid PIN")

// PIN is a numeric account credential. It is kept as text so leading zeros stay significant.
type PIN string

// ParsePIN trims s and validates it as a PIN.
func ParsePIN(s string) (PIN, error) {
	s = strings.TrimSpace(s)
	if len(s) < MinPINLength || len(s) > MaxPINLength {
		return "", fmt.Errorf("%w: must be %d to %d digits", ErrInvalidPIN, MinPINLength, MaxPINLength)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: must contain only digits", ErrInvalidPIN)
		}
	}
	return PIN(s), nil
}

// Validate reports whether p is a well-formed PIN.
func (p PIN) Validate() error {
	_, err := ParsePIN(string(p))
	return err
}

// String masks the PIN so it never ends up in logs or error messages.
func (p PIN) String() string {
	return strings.Repeat("*", len(p))
}
