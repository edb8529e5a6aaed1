package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/service"
	"github.com/google/uuid"
)

// ErrLockedOut is returned when every PIN attempt failed.
var ErrLockedOut = errors.New("locked out after too many incorrect PIN attempts")

const defaultPINAttempts = 3

// ATM menu options.
const (
	atmCheckBalance = "1"
	atmDeposit      = "2"
	atmWithdraw     = "3"
	atmChangePIN    = "4"
	atmExit         = "5"
)

var atmOptions = []string{atmCheckBalance, atmDeposit, atmWithdraw, atmChangePIN, atmExit}

// ATMOptions tunes an ATMMenu.
type ATMOptions struct {
	Logger         *slog.Logger
	MaxPINAttempts int
}

// ATMMenu is the interactive loop in front of an account ledger.
// It owns the PIN lockout policy; the ledger itself never counts attempts.
type ATMMenu struct {
	ledger      service.AccountLedger
	prompter    *Prompter
	logger      *slog.Logger
	maxAttempts int
}

// NewATMMenu creates an ATM menu. Each menu gets its own session ID in the logs.
func NewATMMenu(l service.AccountLedger, prompter *Prompter, opts ATMOptions) *ATMMenu {
	if opts.MaxPINAttempts < 1 {
		opts.MaxPINAttempts = defaultPINAttempts
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &ATMMenu{
		ledger:      l,
		prompter:    prompter,
		maxAttempts: opts.MaxPINAttempts,
		logger:      opts.Logger.With("menu", "atm", "session", uuid.NewString()),
	}
}

// Run gates the session behind the PIN check and then serves the menu until Exit.
func (m *ATMMenu) Run(ctx context.Context) error {
	ctx = common.WithLogger(ctx, m.logger)
	common.LogInfo(ctx, "ATM session started", nil)

	if err := m.login(ctx); err != nil {
		return err
	}

	for {
		if err := m.showMenu(); err != nil {
			return err
		}

		choice, err := m.prompter.Choice(ctx, "Choose an option", atmOptions)
		if err != nil {
			return err
		}
		common.LogDebug(ctx, "ATM option selected", common.Fields{"option": choice})

		switch choice {
		case atmCheckBalance:
			err = m.checkBalance()
		case atmDeposit:
			err = m.deposit(ctx)
		case atmWithdraw:
			err = m.withdraw(ctx)
		case atmChangePIN:
			err = m.changePIN(ctx)
		case atmExit:
			common.LogInfo(ctx, "ATM session ended", nil)
			return m.prompter.Say(FormatInfo("Thank you for using the ATM. Goodbye!"))
		}
		if err != nil {
			return err
		}
	}
}

func (m *ATMMenu) login(ctx context.Context) error {
	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		pin, err := m.prompter.PIN(ctx, "Enter your PIN")
		if err != nil && !errors.Is(err, model.ErrInvalidPIN) {
			return err
		}

		if err == nil && m.ledger.Authenticate(pin) {
			common.LogInfo(ctx, "PIN accepted", common.Fields{"attempt": attempt})
			return m.prompter.Say(FormatSuccess("PIN accepted."))
		}

		remaining := m.maxAttempts - attempt
		common.LogInfo(ctx, "PIN rejected", common.Fields{"attempt": attempt, "remaining": remaining})
		if err := m.prompter.Say(FormatError(fmt.Sprintf("Incorrect PIN. You have %d attempt(s) left.", remaining))); err != nil {
			return err
		}
	}

	common.LogInfo(ctx, "ATM session locked out", common.Fields{"attempts": m.maxAttempts})
	if err := m.prompter.Say(FormatWarning("Too many incorrect attempts. Exiting...")); err != nil {
		return err
	}
	return ErrLockedOut
}

func (m *ATMMenu) showMenu() error {
	lines := []string{
		"",
		FormatTitle(ATMIcon, "ATM Menu:"),
		"1. Check Balance",
		"2. Deposit Money",
		"3. Withdraw Money",
		"4. Change PIN",
		"5. Exit",
	}
	for _, line := range lines {
		if err := m.prompter.Say(line); err != nil {
			return err
		}
	}
	return nil
}

func (m *ATMMenu) checkBalance() error {
	return m.prompter.Say(FormatInfo("Your current balance is: " + FormatMoney(m.ledger.Balance())))
}

func (m *ATMMenu) deposit(ctx context.Context) error {
	amount, err := m.prompter.Amount(ctx, "Enter deposit amount")
	if err != nil {
		return err
	}

	balance, err := m.ledger.Credit(amount)
	if err != nil {
		common.LogDebug(ctx, "Deposit rejected", common.Fields{"amount": amount.String(), "reason": err.Error()})
		return m.prompter.Say(FormatError("Invalid deposit amount."))
	}

	common.LogInfo(ctx, "Deposit completed", common.Fields{"amount": amount.String(), "balance": balance.String()})
	return m.prompter.Say(FormatSuccess(fmt.Sprintf("Successfully deposited %s. New balance: %s",
		FormatMoney(amount), FormatMoney(balance))))
}

func (m *ATMMenu) withdraw(ctx context.Context) error {
	amount, err := m.prompter.Amount(ctx, "Enter withdrawal amount")
	if err != nil {
		return err
	}

	balance, err := m.ledger.Debit(amount)
	if err != nil {
		common.LogDebug(ctx, "Withdrawal rejected", common.Fields{"amount": amount.String(), "reason": err.Error()})
		switch {
		case errors.Is(err, ledger.ErrInsufficientFunds):
			return m.prompter.Say(FormatError("Insufficient funds."))
		case errors.Is(err, ledger.ErrInvalidAmount):
			return m.prompter.Say(FormatError("Invalid withdrawal amount."))
		default:
			return m.prompter.Say(FormatError("Insufficient funds or invalid amount."))
		}
	}

	common.LogInfo(ctx, "Withdrawal completed", common.Fields{"amount": amount.String(), "balance": balance.String()})
	return m.prompter.Say(FormatSuccess(fmt.Sprintf("Successfully withdrew %s. New balance: %s",
		FormatMoney(amount), FormatMoney(balance))))
}

// changePIN asks for the new PIN only once the current one has been verified.
func (m *ATMMenu) changePIN(ctx context.Context) error {
	current, err := m.prompter.PIN(ctx, "Enter your current PIN")
	if err != nil && !errors.Is(err, model.ErrInvalidPIN) {
		return err
	}
	if err != nil || !m.ledger.Authenticate(current) {
		common.LogInfo(ctx, "PIN change rejected", common.Fields{"reason": "incorrect current PIN"})
		return m.prompter.Say(FormatError("Incorrect PIN. Cannot change PIN."))
	}

	next, err := m.prompter.PIN(ctx, "Enter your new PIN")
	if err != nil {
		return m.pinFormatError(err)
	}
	confirm, err := m.prompter.PIN(ctx, "Confirm your new PIN")
	if err != nil {
		return m.pinFormatError(err)
	}

	err = m.ledger.RotatePIN(current, next, confirm)
	switch {
	case err == nil:
		common.LogInfo(ctx, "PIN changed", nil)
		return m.prompter.Say(FormatSuccess("PIN changed successfully."))
	case errors.Is(err, ledger.ErrConfirmationMismatch):
		common.LogInfo(ctx, "PIN change rejected", common.Fields{"reason": "confirmation mismatch"})
		return m.prompter.Say(FormatError("PINs do not match. Try again."))
	case errors.Is(err, ledger.ErrCredentialMismatch):
		return m.prompter.Say(FormatError("Incorrect PIN. Cannot change PIN."))
	default:
		return m.pinFormatError(err)
	}
}

func (m *ATMMenu) pinFormatError(err error) error {
	if !errors.Is(err, model.ErrInvalidPIN) {
		return err
	}
	return m.prompter.Say(FormatError(fmt.Sprintf("A PIN must be %d to %d digits. PIN not changed.",
		model.MinPINLength, model.MaxPINLength)))
}
