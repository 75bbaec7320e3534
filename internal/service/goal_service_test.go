package service

import (
	"context"
	"testing"

	"github.com/GeekPO11/dlulu/internal/app"
	"github.com/GeekPO11/dlulu/internal/domain"
	"github.com/GeekPO11/dlulu/internal/repository"
	"github.com/GeekPO11/dlulu/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoalFixture(t *testing.T) (app.GoalUseCase, repository.GoalRepo) {
	t.Helper()
	db := testutil.NewTestDB(t)
	goals := repository.NewSQLiteGoalRepo(db)
	return NewGoalService(goals, sequentialIDs("g")), goals
}

func TestGoalService_CreateAppliesDefaults(t *testing.T) {
	svc, _ := newGoalFixture(t)

	goal, err := svc.CreateGoal(context.Background(), app.CreateGoalRequest{
		Title: "  Learn woodworking  ",
		Phases: []domain.Phase{
			{Title: "Tools", Milestones: []domain.Milestone{{Title: "First cuts", Tasks: []domain.Task{{Title: "Buy saw"}}}}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Learn woodworking", goal.Title)
	assert.Equal(t, domain.ArchetypeDeepWorkProject, goal.Archetype)
	assert.Equal(t, 3, goal.CadencePerWeek)
	assert.Equal(t, 60, goal.SessionDurationMin)
	assert.Equal(t, domain.TimeMorning, goal.PreferredTimeOfDay)
	assert.Equal(t, domain.PhaseActive, goal.Phases[0].Status)
	assert.NotEmpty(t, goal.Phases[0].ID)
	assert.NotEmpty(t, goal.Phases[0].Milestones[0].Tasks[0].ID)
}

func TestGoalService_CreateValidation(t *testing.T) {
	svc, _ := newGoalFixture(t)
	ctx := context.Background()

	_, err := svc.CreateGoal(ctx, app.CreateGoalRequest{Title: "   "})
	var appErr *app.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, app.ErrInvalidArgument, appErr.Code)

	_, err = svc.CreateGoal(ctx, app.CreateGoalRequest{Title: "X", Archetype: "SPRINT"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, app.ErrInvalidArgument, appErr.Code)
}

func TestGoalService_AdvancePhase(t *testing.T) {
	svc, goals := newGoalFixture(t)
	ctx := context.Background()

	goal := testutil.NewTestGoal("Two phases",
		testutil.WithPhases(testutil.NewTestPhase("First", "A"), testutil.NewTestPhase("Second", "B")),
	)
	goal.Phases[1].Status = domain.PhasePending
	require.NoError(t, goals.Create(ctx, goal))

	advanced, err := svc.AdvancePhase(ctx, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, advanced.CurrentPhaseIndex)
	assert.Equal(t, domain.PhaseCompleted, advanced.Phases[0].Status)
	assert.Equal(t, domain.PhaseActive, advanced.Phases[1].Status)

	// Advancing past the last phase finishes the goal.
	done, err := svc.AdvancePhase(ctx, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalDone, done.Status)
	assert.Equal(t, float64(100), done.ProgressPct)
}

func TestGoalService_UpdateProgressBounds(t *testing.T) {
	svc, goals := newGoalFixture(t)
	ctx := context.Background()

	goal := testutil.NewTestGoal("Track me")
	require.NoError(t, goals.Create(ctx, goal))

	require.NoError(t, svc.UpdateProgress(ctx, goal.ID, 42))

	var appErr *app.Error
	err := svc.UpdateProgress(ctx, goal.ID, 101)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, app.ErrInvalidArgument, appErr.Code)

	got, err := goals.GetByID(ctx, goal.ID)
	require.NoError(t, err)
	assert.InDelta(t, 42, got.ProgressPct, 0.001)
}

func TestGoalService_ArchiveMissingGoal(t *testing.T) {
	svc, _ := newGoalFixture(t)

	err := svc.ArchiveGoal(context.Background(), "missing")
	var appErr *app.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, app.ErrGoalNotFound, appErr.Code)
}
