package cli

import (
	"context"
	"fmt"
	"time"

	dluluapp "github.com/GeekPO11/dlulu/internal/app"
	"github.com/GeekPO11/dlulu/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Work with the weekly master plan",
	}
	cmd.AddCommand(newPlanExpandCmd(app))
	return cmd
}

func newPlanExpandCmd(app *App) *cobra.Command {
	var startStr string

	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Expand the master plan into calendar events",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dluluapp.ExpandRequest{}
			if startStr != "" {
				start, err := time.Parse("2006-01-02", startStr)
				if err != nil {
					return fmt.Errorf("parsing --start: %w", err)
				}
				req.StartDate = &start
			}

			var stop func()
			if app.interactive() {
				stop = formatter.StartSpinner("building the weekly plan...")
			}
			resp, err := app.MasterPlan.Expand(context.Background(), req)
			if stop != nil {
				stop()
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatExpand(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&startStr, "start", "", "Week to start from (YYYY-MM-DD, default: this week)")
	return cmd
}
