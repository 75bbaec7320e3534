package planner

import (
	"context"
	"testing"
	"time"

	"github.com/GeekPO11/dlulu/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyMasterPlan_ParsesPayload(t *testing.T) {
	client := &stubClient{text: `{"phaseSchedules":[{
		"goalId":"g1","phaseId":"p1","phaseTitle":"Base","startWeek":1,"endWeek":3,
		"weeklyTasks":[{"title":"Long run","day":5,"startTime":"08:00","endTime":"09:30","energyCost":4}],
		"milestoneDeadlines":[{"milestoneId":"m1","title":"10k","weekNumber":2}]}]}`}

	plan, err := WeeklyMasterPlan(context.Background(), client, []*domain.Goal{testGoal()})

	require.NoError(t, err)
	require.Len(t, plan.PhaseSchedules, 1)
	ps := plan.PhaseSchedules[0]
	assert.Equal(t, "g1", ps.GoalID)
	assert.Equal(t, 1, ps.StartWeek)
	assert.Equal(t, 3, ps.EndWeek)
	require.Len(t, ps.Templates, 1)
	assert.Equal(t, 5, ps.Templates[0].DayOffset)
	assert.Equal(t, "08:00", ps.Templates[0].StartTime)
	require.Len(t, ps.Deadlines, 1)
	assert.Equal(t, "m1", ps.Deadlines[0].MilestoneID)
}

func TestWeeklyMasterPlan_MissingArraysDefaultEmpty(t *testing.T) {
	client := &stubClient{text: `{"phaseSchedules":[{"goalId":"g1","phaseId":"p1","startWeek":1,"endWeek":2}]}`}

	plan, err := WeeklyMasterPlan(context.Background(), client, nil)

	require.NoError(t, err)
	require.Len(t, plan.PhaseSchedules, 1)
	assert.Empty(t, plan.PhaseSchedules[0].Templates)
	assert.Empty(t, plan.PhaseSchedules[0].Deadlines)
}

func TestWeeklyMasterPlan_PropagatesClientError(t *testing.T) {
	client := &stubClient{err: ErrUnavailable}

	_, err := WeeklyMasterPlan(context.Background(), client, nil)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestBuildFallbackPlan_TemplatesFromStrategyDays(t *testing.T) {
	goal := &domain.Goal{
		ID:                 "g1",
		Title:              "Run a marathon",
		SessionDurationMin: 45,
		PreferredTimeOfDay: domain.TimeMorning,
		EnergyCost:         4,
		Phases: []domain.Phase{{
			ID: "p1", Title: "Base building", StartWeek: 1, EndWeek: 4,
			Milestones: []domain.Milestone{
				{ID: "m1", Title: "5k"},
				{ID: "m2", Title: "10k"},
			},
		}},
	}

	plan := BuildFallbackPlan([]*domain.Goal{goal}, FallbackStrategy())

	require.Len(t, plan.PhaseSchedules, 1)
	ps := plan.PhaseSchedules[0]
	require.Len(t, ps.Templates, 3) // Mon, Wed, Fri
	assert.Equal(t, 0, ps.Templates[0].DayOffset)
	assert.Equal(t, "09:00", ps.Templates[0].StartTime)
	assert.Equal(t, "09:45", ps.Templates[0].EndTime)
	assert.Equal(t, 4, ps.Templates[0].EnergyCost)

	require.Len(t, ps.Deadlines, 2)
	for _, dl := range ps.Deadlines {
		assert.GreaterOrEqual(t, dl.WeekNumber, ps.StartWeek)
		assert.LessOrEqual(t, dl.WeekNumber, ps.EndWeek)
	}
}

func TestBuildFallbackPlan_CadenceTrimsDays(t *testing.T) {
	goal := testGoal()
	goal.CadencePerWeek = 1
	goal.Phases[0].StartWeek = 1
	goal.Phases[0].EndWeek = 2

	plan := BuildFallbackPlan([]*domain.Goal{goal}, FallbackStrategy())

	require.Len(t, plan.PhaseSchedules, 1)
	assert.Len(t, plan.PhaseSchedules[0].Templates, 1)
	assert.Equal(t, (int(time.Monday)+6)%7, plan.PhaseSchedules[0].Templates[0].DayOffset)
}
