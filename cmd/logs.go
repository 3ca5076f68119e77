package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/chargeslot/app"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Journal maintenance commands",
}

var logsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a journal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(ctx context.Context, svc *app.Service) error {
			lines, err := svc.Journal.Read(ctx, args[0])
			if err != nil {
				return err
			}
			for _, l := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}
			return nil
		})
	},
}

var logsMoveCmd = &cobra.Command{
	Use:   "move <src> <dst>",
	Short: "Rename a journal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(ctx context.Context, svc *app.Service) error {
			return svc.Journal.Move(ctx, args[0], args[1])
		})
	},
}

var logsArchiveCmd = &cobra.Command{
	Use:   "archive <name>",
	Short: "Move a journal to the archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(ctx context.Context, svc *app.Service) error {
			return svc.Journal.Archive(ctx, args[0])
		})
	},
}

var logsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Archive a journal and drop its rotated backups",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(ctx context.Context, svc *app.Service) error {
			return svc.Journal.Delete(ctx, args[0])
		})
	},
}

func init() {
	logsCmd.AddCommand(logsShowCmd, logsMoveCmd, logsArchiveCmd, logsDeleteCmd)
	rootCmd.AddCommand(logsCmd)
}
