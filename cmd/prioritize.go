package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/chargeslot/app"
	"github.com/kilianp07/chargeslot/core/model"
)

var prioritizeAdmin bool

var prioritizeCmd = &cobra.Command{
	Use:   "prioritize <user>",
	Short: "Move a user to the front of the wait queue",
	Long: `Load the station state and move the user to the front of the wait queue
rebuilt from the bookings. The notice is appended to the station journal.

The queue itself is not persisted: every run rebuilds it from the saved
bookings, so the new order only lasts for this invocation.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(ctx context.Context, svc *app.Service) error {
			if err := svc.LoadState(ctx); err != nil {
				return fmt.Errorf("load state: %w", err)
			}
			_, notice := svc.Station.Prioritize(ctx, model.User{ID: args[0], Admin: prioritizeAdmin})
			fmt.Fprintln(cmd.OutOrStdout(), notice)
			return nil
		})
	},
}

func init() {
	prioritizeCmd.Flags().BoolVar(&prioritizeAdmin, "admin", true, "the user is an admin")
	rootCmd.AddCommand(prioritizeCmd)
}
