package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	dluluapp "github.com/GeekPO11/dlulu/internal/app"
	"github.com/GeekPO11/dlulu/internal/planner"
	"github.com/GeekPO11/dlulu/internal/repository"
	"github.com/GeekPO11/dlulu/internal/service"
	"github.com/GeekPO11/dlulu/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type downClient struct{}

func (downClient) Generate(context.Context, planner.GenerateRequest) (*planner.GenerateResponse, error) {
	return nil, errors.New("planner offline")
}

func (downClient) Available(context.Context) bool { return false }

// newTestApp wires the full stack against a per-test database with
// the planner stubbed out.
func newTestApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)
	goals := repository.NewSQLiteGoalRepo(db)
	events := repository.NewSQLiteEventRepo(db)
	profiles := repository.NewSQLiteUserProfileRepo(db)
	newID := uuid.NewString

	return &App{
		Goals:      service.NewGoalService(goals, newID),
		Focus:      service.NewFocusService(goals, events, profiles),
		Schedule:   service.NewScheduleService(goals, events, profiles, downClient{}, newID),
		MasterPlan: service.NewMasterPlanService(goals, events, profiles, downClient{}, newID),
		Conflicts:  service.NewConflictService(events, profiles),
		Events:     service.NewEventService(events, profiles),
	}
}

func runCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	root := NewRootCmd(newTestApp(t))

	names := map[string]bool{}
	for _, sub := range root.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"goal", "focus", "schedule", "plan", "conflicts", "event"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestGoalNewAndList(t *testing.T) {
	app := newTestApp(t)

	out, err := runCommand(t, app, "goal", "new", "Learn Italian", "--cadence", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Created goal Learn Italian")

	out, err = runCommand(t, app, "goal", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Learn Italian")
	assert.Contains(t, out, "4x/wk")
}

func TestFocusCmd_PlainOutput(t *testing.T) {
	app := newTestApp(t)

	out, err := runCommand(t, app, "focus", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Set up your first ambition")
}

func TestScheduleCmd_UnknownGoal(t *testing.T) {
	app := newTestApp(t)

	_, err := runCommand(t, app, "schedule", "missing")
	var appErr *dluluapp.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, dluluapp.ErrGoalNotFound, appErr.Code)
}

func TestPlanExpandCmd_NoGoals(t *testing.T) {
	app := newTestApp(t)

	_, err := runCommand(t, app, "plan", "expand")
	var appErr *dluluapp.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, dluluapp.ErrNoActiveGoals, appErr.Code)
}

func TestEventLifecycleThroughCommands(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	// Seed a goal with work, then schedule it through the command.
	goal, err := app.Goals.CreateGoal(ctx, dluluapp.CreateGoalRequest{
		Title: "Ship the thing",
		Phases: testutil.NewTestGoal("seed",
			testutil.WithPhases(testutil.NewTestPhase("Build", "Write code", "Write docs")),
		).Phases,
	})
	require.NoError(t, err)

	out, err := runCommand(t, app, "schedule", goal.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "placed")

	events, err := app.Events.ListEvents(ctx, time.Now(), time.Now().AddDate(0, 0, 30))
	require.NoError(t, err)
	require.NotEmpty(t, events)

	out, err = runCommand(t, app, "event", "complete", events[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "completed")
}
