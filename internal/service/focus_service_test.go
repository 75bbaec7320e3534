package service

import (
	"context"
	"testing"
	"time"

	"github.com/GeekPO11/dlulu/internal/app"
	"github.com/GeekPO11/dlulu/internal/repository"
	"github.com/GeekPO11/dlulu/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFocusFixture(t *testing.T) (app.FocusUseCase, repository.GoalRepo, repository.EventRepo) {
	t.Helper()
	db := testutil.NewTestDB(t)
	goals := repository.NewSQLiteGoalRepo(db)
	events := repository.NewSQLiteEventRepo(db)
	profiles := repository.NewSQLiteUserProfileRepo(db)
	return NewFocusService(goals, events, profiles), goals, events
}

func TestFocusService_NoGoalsYieldsSetupSuggestion(t *testing.T) {
	svc, _, _ := newFocusFixture(t)

	resp, err := svc.Suggest(context.Background(), app.FocusRequest{})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Suggestions)
	assert.Equal(t, "setup:first-ambition", resp.Suggestions[0].ID)
}

func TestFocusService_SuggestsFromActiveGoal(t *testing.T) {
	svc, goals, _ := newFocusFixture(t)
	ctx := context.Background()

	goal := testutil.NewTestGoal("Learn piano",
		testutil.WithPhases(testutil.NewTestPhase("Basics", "Scales", "Chords")),
	)
	require.NoError(t, goals.Create(ctx, goal))

	resp, err := svc.Suggest(ctx, app.FocusRequest{})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Suggestions)
	assert.Equal(t, goal.ID, resp.Suggestions[0].GoalID)
	assert.Contains(t, resp.Suggestions[0].ID, goal.ID+":")
}

func TestFocusService_ArchivedGoalsIgnored(t *testing.T) {
	svc, goals, _ := newFocusFixture(t)
	ctx := context.Background()

	goal := testutil.NewTestGoal("Old", testutil.WithPhases(testutil.NewTestPhase("P", "T")))
	require.NoError(t, goals.Create(ctx, goal))
	require.NoError(t, goals.Archive(ctx, goal.ID))

	resp, err := svc.Suggest(ctx, app.FocusRequest{})
	require.NoError(t, err)
	assert.Equal(t, "setup:first-ambition", resp.Suggestions[0].ID)
}

func TestFocusService_TodayLoadFromStoredEvents(t *testing.T) {
	svc, _, events := newFocusFixture(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC)
	require.NoError(t, events.Create(ctx, testutil.NewTestEvent("Session", now.Add(time.Hour), 60)))
	require.NoError(t, events.Create(ctx, testutil.NewTestEvent("Session", now.Add(3*time.Hour), 30)))
	// An event tomorrow must not count toward today's load.
	require.NoError(t, events.Create(ctx, testutil.NewTestEvent("Later", now.AddDate(0, 0, 1), 60)))

	resp, err := svc.Suggest(ctx, app.FocusRequest{Now: &now})
	require.NoError(t, err)
	assert.Equal(t, 90, resp.TodayLoadMin)
}
