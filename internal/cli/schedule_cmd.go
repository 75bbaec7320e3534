package cli

import (
	"context"
	"fmt"

	dluluapp "github.com/GeekPO11/dlulu/internal/app"
	"github.com/GeekPO11/dlulu/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	var sessionMin int

	cmd := &cobra.Command{
		Use:   "schedule <goal-id>",
		Short: "Plan sessions for a goal's remaining work",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var stop func()
			if app.interactive() {
				stop = formatter.StartSpinner("asking the planner for a strategy...")
			}

			resp, err := app.Schedule.ScheduleGoal(context.Background(), dluluapp.ScheduleRequest{
				GoalID:           args[0],
				TargetSessionMin: sessionMin,
			})
			if stop != nil {
				stop()
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&sessionMin, "session-min", 0, "Override the session length in minutes")
	return cmd
}
