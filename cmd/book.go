package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kilianp07/chargeslot/app"
	"github.com/kilianp07/chargeslot/core/model"
)

var (
	bookUser  string
	bookAdmin string
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book a timeslot interactively",
	Long: `Load the station state, list the available timeslots and book the
selected one after confirmation. The admin is then moved to the front of the
wait queue.`,
	Args: cobra.NoArgs,
	RunE: runBook,
}

func init() {
	bookCmd.Flags().StringVarP(&bookUser, "user", "u", "ExternalUser2", "user booking the timeslot")
	bookCmd.Flags().StringVar(&bookAdmin, "admin", "Admin1", "admin prioritized after the booking")
	rootCmd.AddCommand(bookCmd)
}

func runBook(cmd *cobra.Command, args []string) error {
	return withService(cmd, func(ctx context.Context, svc *app.Service) error {
		session := app.BookingSession{
			User:  model.User{ID: bookUser},
			Admin: model.User{ID: bookAdmin, Admin: true},
		}
		return session.Run(ctx, svc, app.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout()))
	})
}
