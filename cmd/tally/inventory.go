package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/inventory"
	"github.com/spf13/cobra"
)

func (a *app) inventoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "inventory",
		Aliases: []string{"inv"},
		Short:   "Run the inventory tracker",
		Long:    `Start an interactive inventory session. The catalog starts empty and lives only for this session.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			handler := cli.NewInterruptHandler(out, "Exiting...")
			ctx, stop := handler.HandleInterrupts(cmd.Context())
			defer stop()

			menu := cli.NewInventoryMenu(inventory.NewCatalog(), cli.NewPrompter(cmd.InOrStdin(), out), slog.Default())

			if err := finishSession(menu.Run(ctx), handler, out, "Exiting..."); err != nil {
				return fmt.Errorf("inventory session: %w", err)
			}
			return nil
		},
	}
}
