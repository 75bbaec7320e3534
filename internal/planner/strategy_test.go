package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GeekPO11/dlulu/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient returns a canned response or error.
type stubClient struct {
	text string
	err  error
}

func (s *stubClient) Generate(_ context.Context, _ GenerateRequest) (*GenerateResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &GenerateResponse{Text: s.text, Model: "stub"}, nil
}

func (s *stubClient) Available(context.Context) bool { return s.err == nil }

func testGoal() *domain.Goal {
	return &domain.Goal{ID: "g1", Title: "Run a marathon", Phases: []domain.Phase{{ID: "p1", Title: "Base building"}}}
}

func TestGoalStrategy_ParsesWellFormedResponse(t *testing.T) {
	client := &stubClient{text: "Here you go:\n```json\n" +
		`{"archetype":"HABIT_BUILDING","frequencyPerWeek":5,"sessionDurationMin":30,` +
		`"preferredDays":["Mon","Tue","Thu"],"groupingLogic":"ONE_PER_DAY"}` + "\n```"}

	result := GoalStrategy(context.Background(), client, testGoal())

	require.False(t, result.FallbackApplied)
	assert.Equal(t, domain.ArchetypeHabitBuilding, result.Strategy.Archetype)
	assert.Equal(t, 5, result.Strategy.FrequencyPerWeek)
	assert.Equal(t, 30, result.Strategy.SessionDurationMin)
	assert.Equal(t, []time.Weekday{time.Monday, time.Tuesday, time.Thursday}, result.Strategy.PreferredDays)
	assert.Equal(t, domain.GroupOnePerDay, result.Strategy.GroupingLogic)
}

func TestGoalStrategy_FallbackOnError(t *testing.T) {
	client := &stubClient{err: ErrTimeout}

	result := GoalStrategy(context.Background(), client, testGoal())

	assert.True(t, result.FallbackApplied)
	assert.ErrorIs(t, result.Err, ErrTimeout)
	assert.Equal(t, FallbackStrategy(), result.Strategy)
}

func TestGoalStrategy_FallbackOnGarbageOutput(t *testing.T) {
	client := &stubClient{text: "I would suggest working out more."}

	result := GoalStrategy(context.Background(), client, testGoal())

	assert.True(t, result.FallbackApplied)
	assert.True(t, errors.Is(result.Err, ErrInvalidOutput))
	assert.Equal(t, FallbackStrategy(), result.Strategy)
}

func TestGoalStrategy_FallbackOnUnknownArchetype(t *testing.T) {
	client := &stubClient{text: `{"archetype":"WISHFUL_THINKING","frequencyPerWeek":3,"sessionDurationMin":60}`}

	result := GoalStrategy(context.Background(), client, testGoal())
	assert.True(t, result.FallbackApplied)
}

func TestGoalStrategy_DegradesOutOfRangeFields(t *testing.T) {
	client := &stubClient{text: `{"archetype":"MAINTENANCE","frequencyPerWeek":99,"sessionDurationMin":5,` +
		`"preferredDays":["Funday"],"groupingLogic":"RANDOM"}`}

	result := GoalStrategy(context.Background(), client, testGoal())

	require.False(t, result.FallbackApplied)
	fallback := FallbackStrategy()
	assert.Equal(t, domain.ArchetypeMaintenance, result.Strategy.Archetype)
	assert.Equal(t, fallback.FrequencyPerWeek, result.Strategy.FrequencyPerWeek)
	assert.Equal(t, fallback.SessionDurationMin, result.Strategy.SessionDurationMin)
	assert.Equal(t, fallback.PreferredDays, result.Strategy.PreferredDays)
	assert.Equal(t, fallback.GroupingLogic, result.Strategy.GroupingLogic)
}

func TestFallbackStrategy_Shape(t *testing.T) {
	s := FallbackStrategy()
	assert.Equal(t, domain.ArchetypeDeepWorkProject, s.Archetype)
	assert.Equal(t, 3, s.FrequencyPerWeek)
	assert.Equal(t, 60, s.SessionDurationMin)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, s.PreferredDays)
	assert.Equal(t, domain.GroupBatchTasks, s.GroupingLogic)
}
