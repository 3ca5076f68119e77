package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/chargeslot/app"
)

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "List available timeslots",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(ctx context.Context, svc *app.Service) error {
			if err := svc.LoadState(ctx); err != nil {
				return fmt.Errorf("load state: %w", err)
			}
			svc.PrintSlots(cmd.OutOrStdout())
			return nil
		})
	},
}

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Print the wait queue rebuilt from the saved bookings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(ctx context.Context, svc *app.Service) error {
			if err := svc.LoadState(ctx); err != nil {
				return fmt.Errorf("load state: %w", err)
			}
			for i, u := range svc.Station.Queue() {
				role := "user"
				if u.Admin {
					role = "admin"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s (%s)\n", i+1, u.ID, role)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(slotsCmd, queueCmd)
}
