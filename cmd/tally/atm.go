package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/config"
	"github.com/Veraticus/tally/internal/ledger"
	"github.com/spf13/cobra"
)

const atmFarewell = "Thank you for using the ATM. Goodbye!"

func (a *app) atmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "atm",
		Short: "Run the ATM simulator",
		Long: `Start an interactive ATM session for a single account.

The session opens with a PIN check. After too many wrong PINs the ATM exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			acct, err := ledger.New(a.cfg.ATM.LedgerConfig())
			if err != nil {
				return common.NewUserError("Could not open the account", err)
			}

			out := cmd.OutOrStdout()
			handler := cli.NewInterruptHandler(out, atmFarewell)
			ctx, stop := handler.HandleInterrupts(cmd.Context())
			defer stop()

			menu := cli.NewATMMenu(acct, cli.NewPrompter(cmd.InOrStdin(), out), cli.ATMOptions{
				MaxPINAttempts: a.cfg.ATM.MaxPINAttempts,
				Logger:         slog.Default(),
			})

			if err := finishSession(menu.Run(ctx), handler, out, atmFarewell); err != nil {
				return fmt.Errorf("atm session: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().String("balance", "0", "starting account balance")
	cmd.Flags().String("pin", "1234", "starting PIN")
	cmd.Flags().Int("max-pin-attempts", config.DefaultMaxPINAttempts, "wrong PINs allowed before lockout")

	_ = a.v.BindPFlag(config.KeyInitialBalance, cmd.Flags().Lookup("balance"))
	_ = a.v.BindPFlag(config.KeyInitialPIN, cmd.Flags().Lookup("pin"))
	_ = a.v.BindPFlag(config.KeyMaxPINAttempts, cmd.Flags().Lookup("max-pin-attempts"))

	return cmd
}
