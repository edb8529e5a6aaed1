package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Veraticus/tally/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewPrompter(strings.NewReader(input), out), out
}

func TestPrompter_Choice(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectError error
		invalidSeen bool
	}{
		{name: "valid choice", input: "2\n", expected: "2"},
		{name: "case insensitive", input: "Q\n", expected: "q"},
		{name: "invalid then valid", input: "9\n\n1\n", expected: "1", invalidSeen: true},
		{name: "input ends", input: "", expectError: ErrInputTerminated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestPrompter(tt.input)

			choice, err := p.Choice(context.Background(), "Choose", []string{"1", "2", "q"})
			if tt.expectError != nil {
				require.ErrorIs(t, err, tt.expectError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, choice)
			assert.Contains(t, out.String(), "Choose")
			assert.Equal(t, tt.invalidSeen, strings.Contains(out.String(), "Invalid option. Please try again."))
		})
	}
}

func TestPrompter_CancelledContext(t *testing.T) {
	p, _ := newTestPrompter("1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Line(ctx, "Anything")
	assert.ErrorIs(t, err, ErrInputCancelled)
}

func TestPrompter_Text(t *testing.T) {
	p, out := newTestPrompter("\n   \nPen\n")

	name, err := p.Text(context.Background(), "Enter item name")
	require.NoError(t, err)
	assert.Equal(t, "Pen", name)
	assert.Equal(t, 2, strings.Count(out.String(), "Value cannot be empty."))
}

func TestPrompter_Amount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		retries  int
	}{
		{name: "integer", input: "500\n", expected: "500"},
		{name: "decimal", input: "19.99\n", expected: "19.99"},
		{name: "dollar sign", input: "$20\n", expected: "20"},
		{name: "negative passes through", input: "-5\n", expected: "-5"},
		{name: "garbage then number", input: "ten\n10\n", expected: "10", retries: 1},
		{name: "exponent notation rejected", input: "1e200000000\n5\n", expected: "5", retries: 1},
		{name: "upper-case exponent rejected", input: "2E3\n$7.50\n", expected: "7.50", retries: 1},
		{name: "too many digits rejected", input: "1234567890123456789012345\n12\n", expected: "12", retries: 1},
		{name: "bare dollar sign rejected", input: "$\n3\n", expected: "3", retries: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestPrompter(tt.input)

			amount, err := p.Amount(context.Background(), "Enter amount")
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(amount), "got %s", amount)
			assert.Equal(t, tt.retries, strings.Count(out.String(), "Please enter a number"))
		})
	}
}

func TestPrompter_AmountRendersPromptly(t *testing.T) {
	p, out := newTestPrompter("1e200000000\n99999999999999999999.99\n")

	amount, err := p.Amount(context.Background(), "Enter deposit amount")
	require.NoError(t, err)
	assert.Equal(t, "$99999999999999999999.99", FormatMoney(amount))
	assert.Equal(t, 1, strings.Count(out.String(), "Please enter a number"))
}

func TestPrompter_Price(t *testing.T) {
	p, out := newTestPrompter("-1\n1.5\n")

	price, err := p.Price(context.Background(), "Enter price")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1.5").Equal(price))
	assert.Contains(t, out.String(), "Price cannot be negative.")
}

func TestPrompter_Quantity(t *testing.T) {
	p, out := newTestPrompter("many\n-3\n1.5\n7\n")

	qty, err := p.Quantity(context.Background(), "Enter quantity")
	require.NoError(t, err)
	assert.Equal(t, 7, qty)
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter a whole number."))
	assert.Contains(t, out.String(), "Quantity cannot be negative.")
}

func TestPrompter_PIN(t *testing.T) {
	p, _ := newTestPrompter("0042\n12x4\n")

	pin, err := p.PIN(context.Background(), "Enter your PIN")
	require.NoError(t, err)
	assert.Equal(t, model.PIN("0042"), pin)

	_, err = p.PIN(context.Background(), "Enter your PIN")
	assert.ErrorIs(t, err, model.ErrInvalidPIN)

	_, err = p.PIN(context.Background(), "Enter your PIN")
	assert.ErrorIs(t, err, ErrInputTerminated)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$1500.00", FormatMoney(decimal.RequireFromString("1500.0")))
	assert.Equal(t, "$0.10", FormatMoney(decimal.RequireFromString("0.1")))
}
