package cli

import (
	"github.com/GeekPO11/dlulu/internal/app"
	"github.com/spf13/cobra"
)

// App holds the use-case interfaces the CLI commands run against.
type App struct {
	Goals      app.GoalUseCase
	Focus      app.FocusUseCase
	Schedule   app.ScheduleUseCase
	MasterPlan app.MasterPlanUseCase
	Conflicts  app.ConflictUseCase
	Events     app.EventUseCase

	// IsInteractive reports whether stdin is a terminal; interactive
	// commands fall back to plain output when it is nil or false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "dlulu" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "dlulu",
		Short: "Goal planner and daily focus selector",
	}

	root.AddCommand(
		newGoalCmd(app),
		newFocusCmd(app),
		newScheduleCmd(app),
		newPlanCmd(app),
		newConflictsCmd(app),
		newEventCmd(app),
	)

	return root
}
