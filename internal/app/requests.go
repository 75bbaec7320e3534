package app

import (
	"time"

	"github.com/GeekPO11/dlulu/internal/domain"
	"github.com/GeekPO11/dlulu/internal/planner"
	"github.com/GeekPO11/dlulu/internal/scheduler"
)

// FocusRequest asks for today's worklist. Now is optional; it defaults
// to the wall clock so tests can pin time.
type FocusRequest struct {
	Now *time.Time
}

type FocusResponse struct {
	GeneratedAt  time.Time
	TodayLoadMin int
	Suggestions  []scheduler.FocusSuggestion
}

// ScheduleRequest plans concrete sessions for one goal's remaining work.
type ScheduleRequest struct {
	GoalID           string
	Now              *time.Time
	TargetSessionMin int // overrides the strategy's session duration when > 0
}

// UnplacedSession records a session the solver could not place inside
// its retry budget. Reported, never silently dropped.
type UnplacedSession struct {
	Titles      []string
	DurationMin int
	Reason      string
}

type ScheduleResponse struct {
	GeneratedAt     time.Time
	Strategy        planner.Strategy
	FallbackApplied bool
	Events          []domain.CalendarEvent
	Unplaced        []UnplacedSession
}

// ExpandRequest expands the weekly master plan into dated events for all
// active goals, starting the week containing StartDate.
type ExpandRequest struct {
	StartDate *time.Time
	Now       *time.Time
}

// ConflictInfo pairs a proposed event with the reason it could not be
// placed as-is.
type ConflictInfo struct {
	Event  domain.CalendarEvent
	Reason string
}

type ExpandResponse struct {
	GeneratedAt     time.Time
	FallbackApplied bool
	Created         []domain.CalendarEvent
	Conflicts       []ConflictInfo
}

// ConflictRequest asks for alternative slots for one conflicting event.
type ConflictRequest struct {
	EventID string
	Reason  string
}

type ConflictResponse struct {
	Event     domain.CalendarEvent
	Reason    string
	Proposals []scheduler.Placement
}

type CreateGoalRequest struct {
	Title              string
	Archetype          domain.Archetype
	CadencePerWeek     int
	SessionDurationMin int
	PreferredTimeOfDay domain.TimeOfDay
	EnergyCost         int
	Phases             []domain.Phase
}

type RescheduleRequest struct {
	StartAt time.Time
	EndAt   time.Time
}
