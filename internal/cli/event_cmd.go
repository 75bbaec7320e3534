package cli

import (
	"context"
	"fmt"
	"time"

	dluluapp "github.com/GeekPO11/dlulu/internal/app"
	"github.com/GeekPO11/dlulu/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newEventCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage calendar events",
	}
	cmd.AddCommand(
		newEventListCmd(app),
		newEventRescheduleCmd(app),
		newEventSkipCmd(app),
		newEventCompleteCmd(app),
	)
	return cmd
}

func newEventListCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List upcoming events",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			events, err := app.Events.ListEvents(context.Background(), now, now.AddDate(0, 0, days))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEventList(events))
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "How many days ahead to list")
	return cmd
}

func newEventRescheduleCmd(app *App) *cobra.Command {
	var startStr string
	var durationMin int

	cmd := &cobra.Command{
		Use:   "reschedule <event-id>",
		Short: "Move an event to a new slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := time.ParseInLocation("2006-01-02 15:04", startStr, time.Local)
			if err != nil {
				return fmt.Errorf("parsing --start: %w", err)
			}
			if durationMin <= 0 {
				durationMin = 60
			}

			moved, err := app.Events.RescheduleEvent(context.Background(), args[0], dluluapp.RescheduleRequest{
				StartAt: start,
				EndAt:   start.Add(time.Duration(durationMin) * time.Minute),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %q to %s\n",
				moved.Title, formatter.EventTime(moved.StartAt, moved.EndAt, moved.AllDay))
			return nil
		},
	}

	cmd.Flags().StringVar(&startStr, "start", "", "New start (YYYY-MM-DD HH:mm, local time)")
	cmd.Flags().IntVar(&durationMin, "duration", 0, "Duration in minutes (default: 60)")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func newEventSkipCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "skip <event-id>",
		Short: "Skip an event without rescheduling it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Events.SkipEvent(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Event skipped.")
			return nil
		},
	}
}

func newEventCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <event-id>",
		Short: "Mark an event as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Events.CompleteEvent(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Event completed.")
			return nil
		},
	}
}
