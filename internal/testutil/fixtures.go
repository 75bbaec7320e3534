package testutil

import (
	"time"

	"github.com/GeekPO11/dlulu/internal/domain"
	"github.com/google/uuid"
)

// Goal options
type GoalOption func(*domain.Goal)

func WithArchetype(a domain.Archetype) GoalOption {
	return func(g *domain.Goal) {
		g.Archetype = a
	}
}

func WithCadence(perWeek int) GoalOption {
	return func(g *domain.Goal) {
		g.CadencePerWeek = perWeek
	}
}

func WithSessionDuration(min int) GoalOption {
	return func(g *domain.Goal) {
		g.SessionDurationMin = min
	}
}

func WithPreferredTime(t domain.TimeOfDay) GoalOption {
	return func(g *domain.Goal) {
		g.PreferredTimeOfDay = t
	}
}

func WithProgress(pct float64) GoalOption {
	return func(g *domain.Goal) {
		g.ProgressPct = pct
	}
}

func WithGoalStatus(s domain.GoalStatus) GoalOption {
	return func(g *domain.Goal) {
		g.Status = s
	}
}

func WithPhases(phases ...domain.Phase) GoalOption {
	return func(g *domain.Goal) {
		g.Phases = phases
	}
}

func NewTestGoal(title string, opts ...GoalOption) *domain.Goal {
	now := time.Now().UTC()
	g := &domain.Goal{
		ID:                 uuid.New().String(),
		Title:              title,
		Status:             domain.GoalActive,
		CadencePerWeek:     3,
		SessionDurationMin: 60,
		PreferredTimeOfDay: domain.TimeMorning,
		EnergyCost:         3,
		Archetype:          domain.ArchetypeDeepWorkProject,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewTestPhase builds a phase with a single milestone holding the given
// task titles, each task schedulable and ordered as passed.
func NewTestPhase(title string, taskTitles ...string) domain.Phase {
	ms := domain.Milestone{
		ID:    uuid.New().String(),
		Title: title + " milestone",
	}
	for i, tt := range taskTitles {
		ms.Tasks = append(ms.Tasks, domain.Task{
			ID:    uuid.New().String(),
			Title: tt,
			Order: i,
		})
	}
	return domain.Phase{
		ID:         uuid.New().String(),
		Title:      title,
		Status:     domain.PhaseActive,
		StartWeek:  1,
		EndWeek:    1,
		Milestones: []domain.Milestone{ms},
	}
}

// Event options
type EventOption func(*domain.CalendarEvent)

func WithEventType(t domain.EventType) EventOption {
	return func(e *domain.CalendarEvent) {
		e.Type = t
	}
}

func WithGoalID(id string) EventOption {
	return func(e *domain.CalendarEvent) {
		e.GoalID = id
	}
}

func WithEventStatus(s domain.EventStatus) EventOption {
	return func(e *domain.CalendarEvent) {
		e.Status = s
	}
}

func NewTestEvent(title string, startAt time.Time, durationMin int, opts ...EventOption) *domain.CalendarEvent {
	now := time.Now().UTC()
	e := &domain.CalendarEvent{
		ID:        uuid.New().String(),
		Title:     title,
		StartAt:   startAt,
		EndAt:     startAt.Add(time.Duration(durationMin) * time.Minute),
		Timezone:  "UTC",
		Type:      domain.EventGoalSession,
		Status:    domain.EventScheduled,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
