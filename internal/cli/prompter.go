package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/Veraticus/tally/internal/model"
	"github.com/shopspring/decimal"
)

// ErrInputTerminated is returned when the input stream ends while a prompt is waiting.
var ErrInputTerminated = errors.New("input terminated")

// Prompter reads line-oriented answers to menu prompts.
type Prompter struct {
	reader *NonBlockingReader
	writer io.Writer
}

// NewPrompter creates a prompter reading from reader and writing prompts to writer.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &Prompter{
		reader: NewNonBlockingReader(reader),
		writer: writer,
	}
}

// Writer returns where the prompter renders output.
func (p *Prompter) Writer() io.Writer {
	return p.writer
}

// Say writes one line of output.
func (p *Prompter) Say(line string) error {
	if _, err := fmt.Fprintln(p.writer, line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Line prints prompt and returns the trimmed answer, which may be empty.
func (p *Prompter) Line(ctx context.Context, prompt string) (string, error) {
	if ctx.Err() != nil {
		return "", ErrInputCancelled
	}

	if _, err := fmt.Fprint(p.writer, FormatPrompt(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := p.reader.ReadLine(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrInputTerminated
		}
		return "", err
	}
	return line, nil
}

// Choice prompts until the answer is one of valid (case-insensitive).
func (p *Prompter) Choice(ctx context.Context, prompt string, valid []string) (string, error) {
	for {
		input, err := p.Line(ctx, prompt)
		if err != nil {
			return "", err
		}

		choice := strings.ToLower(input)
		if slices.Contains(valid, choice) {
			return choice, nil
		}

		if err := p.Say(FormatError("Invalid option. Please try again.")); err != nil {
			return "", err
		}
	}
}

// Text prompts until a non-empty answer is given.
func (p *Prompter) Text(ctx context.Context, prompt string) (string, error) {
	for {
		input, err := p.Line(ctx, prompt)
		if err != nil {
			return "", err
		}
		if input != "" {
			return input, nil
		}

		if err := p.Say(FormatError("Value cannot be empty. Please try again.")); err != nil {
			return "", err
		}
	}
}

// Amount prompts until the answer parses as a decimal. Sign is not checked here;
// the ledger decides which amounts it accepts.
func (p *Prompter) Amount(ctx context.Context, prompt string) (decimal.Decimal, error) {
	for {
		input, err := p.Line(ctx, prompt)
		if err != nil {
			return decimal.Zero, err
		}

		if amount, ok := parseAmount(input); ok {
			return amount, nil
		}

		if err := p.Say(FormatError("Please enter a number, e.g. 25.00")); err != nil {
			return decimal.Zero, err
		}
	}
}

// maxAmountLength caps the characters of an amount answer, "$" excluded.
const maxAmountLength = 24

// parseAmount accepts plain decimal notation with an optional "$" prefix.
// Exponent notation is refused.
func parseAmount(input string) (decimal.Decimal, bool) {
	input = strings.TrimPrefix(input, "$")
	if input == "" || len(input) > maxAmountLength || strings.ContainsAny(input, "eE") {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// Price prompts until the answer is a non-negative decimal.
func (p *Prompter) Price(ctx context.Context, prompt string) (decimal.Decimal, error) {
	for {
		price, err := p.Amount(ctx, prompt)
		if err != nil {
			return decimal.Zero, err
		}
		if !price.IsNegative() {
			return price, nil
		}

		if err := p.Say(FormatError("Price cannot be negative. Please try again.")); err != nil {
			return decimal.Zero, err
		}
	}
}

// Quantity prompts until the answer is a non-negative whole number.
func (p *Prompter) Quantity(ctx context.Context, prompt string) (int, error) {
	for {
		input, err := p.Line(ctx, prompt)
		if err != nil {
			return 0, err
		}

		qty, err := strconv.Atoi(input)
		switch {
		case err != nil:
			err = p.Say(FormatError("Please enter a whole number."))
		case qty < 0:
			err = p.Say(FormatError("Quantity cannot be negative. Please try again."))
		default:
			return qty, nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// PIN prompts once and parses the answer. A malformed PIN is returned as an error
// wrapping model.ErrInvalidPIN so the caller can decide whether it costs an attempt.
func (p *Prompter) PIN(ctx context.Context, prompt string) (model.PIN, error) {
	input, err := p.Line(ctx, prompt)
	if err != nil {
		return "", err
	}
	return model.ParsePIN(input)
}
