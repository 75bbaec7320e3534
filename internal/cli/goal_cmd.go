package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	dluluapp "github.com/GeekPO11/dlulu/internal/app"
	"github.com/GeekPO11/dlulu/internal/cli/formatter"
	"github.com/GeekPO11/dlulu/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals",
	}
	cmd.AddCommand(
		newGoalNewCmd(app),
		newGoalListCmd(app),
		newGoalAdvanceCmd(app),
		newGoalProgressCmd(app),
		newGoalArchiveCmd(app),
	)
	return cmd
}

func newGoalNewCmd(app *App) *cobra.Command {
	var title, archetype, preferred string
	var cadence, sessionMin, energy int

	cmd := &cobra.Command{
		Use:   "new [title]",
		Short: "Create a goal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				title = args[0]
			}

			// In a terminal, collect anything missing through a form.
			if app.interactive() && title == "" {
				vals := &goalFormValues{}
				if err := goalForm(vals).Run(); err != nil {
					return err
				}
				title = vals.title
				archetype = vals.archetype
				preferred = vals.preferred
				cadence = vals.cadenceInt()
				sessionMin = vals.sessionInt()
			}

			goal, err := app.Goals.CreateGoal(context.Background(), dluluapp.CreateGoalRequest{
				Title:              title,
				Archetype:          domain.Archetype(archetype),
				CadencePerWeek:     cadence,
				SessionDurationMin: sessionMin,
				PreferredTimeOfDay: domain.TimeOfDay(preferred),
				EnergyCost:         energy,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created goal %s (%s)\n", goal.Title, goal.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&archetype, "archetype", "", "Goal archetype (HABIT_BUILDING, DEEP_WORK_PROJECT, SKILL_ACQUISITION, MAINTENANCE)")
	cmd.Flags().StringVar(&preferred, "time", "", "Preferred time of day (morning, afternoon, evening)")
	cmd.Flags().IntVar(&cadence, "cadence", 0, "Sessions per week")
	cmd.Flags().IntVar(&sessionMin, "session-min", 0, "Default session length in minutes")
	cmd.Flags().IntVar(&energy, "energy", 0, "Energy cost 1-5")

	return cmd
}

// goalFormValues backs the interactive form. Numeric fields go through
// string inputs with validation, matching huh's input model.
type goalFormValues struct {
	title     string
	archetype string
	preferred string
	cadence   string
	session   string
}

func (v *goalFormValues) cadenceInt() int { return parseIntOrZero(v.cadence) }
func (v *goalFormValues) sessionInt() int { return parseIntOrZero(v.session) }

func parseIntOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func goalForm(v *goalFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What do you want to achieve?").
				Placeholder("Learn conversational Italian").
				Value(&v.title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("What kind of goal is it?").
				Options(
					huh.NewOption("Deep work project", string(domain.ArchetypeDeepWorkProject)),
					huh.NewOption("Skill acquisition", string(domain.ArchetypeSkillAcquisition)),
					huh.NewOption("Habit building", string(domain.ArchetypeHabitBuilding)),
					huh.NewOption("Maintenance", string(domain.ArchetypeMaintenance)),
				).
				Value(&v.archetype),
			huh.NewSelect[string]().
				Title("When do you work best?").
				Options(
					huh.NewOption("Morning", string(domain.TimeMorning)),
					huh.NewOption("Afternoon", string(domain.TimeAfternoon)),
					huh.NewOption("Evening", string(domain.TimeEvening)),
				).
				Value(&v.preferred),
			huh.NewInput().
				Title("Sessions per week").
				Placeholder("3").
				Value(&v.cadence).
				Validate(validateOptionalPositiveInt),
			huh.NewInput().
				Title("Minutes per session").
				Placeholder("60").
				Value(&v.session).
				Validate(validateOptionalPositiveInt),
		),
	).WithTheme(dluluHuhTheme()).WithShowHelp(false)
}

func validateOptionalPositiveInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func newGoalListCmd(app *App) *cobra.Command {
	var includeArchived bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, err := app.Goals.ListGoals(context.Background(), includeArchived)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGoalList(goals))
			return nil
		},
	}
	cmd.Flags().BoolVar(&includeArchived, "all", false, "Include archived goals")
	return cmd
}

func newGoalAdvanceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "advance <goal-id>",
		Short: "Complete the active phase and move to the next",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal, err := app.Goals.AdvancePhase(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGoalDetail(goal))
			return nil
		},
	}
}

func newGoalProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress <goal-id> <percent>",
		Short: "Record goal progress",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pct, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parsing percent: %w", err)
			}
			if err := app.Goals.UpdateProgress(context.Background(), args[0], pct); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Progress set to %.0f%%\n", pct)
			return nil
		},
	}
}

func newGoalArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <goal-id>",
		Short: "Archive a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Goals.ArchiveGoal(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Goal archived.")
			return nil
		},
	}
}
