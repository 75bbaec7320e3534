package cli

import (
	"context"
	"fmt"

	dluluapp "github.com/GeekPO11/dlulu/internal/app"
	"github.com/GeekPO11/dlulu/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newConflictsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "Resolve scheduling conflicts",
	}
	cmd.AddCommand(newConflictsProposeCmd(app))
	return cmd
}

func newConflictsProposeCmd(app *App) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "propose <event-id>",
		Short: "Propose alternative slots for a conflicting event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Conflicts.Propose(context.Background(), dluluapp.ConflictRequest{
				EventID: args[0],
				Reason:  reason,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProposals(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Why the event needs to move")
	return cmd
}
