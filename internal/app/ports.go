package app

import (
	"context"
	"time"

	"github.com/GeekPO11/dlulu/internal/domain"
)

type FocusUseCase interface {
	Suggest(ctx context.Context, req FocusRequest) (*FocusResponse, error)
}

type ScheduleUseCase interface {
	ScheduleGoal(ctx context.Context, req ScheduleRequest) (*ScheduleResponse, error)
}

type MasterPlanUseCase interface {
	Expand(ctx context.Context, req ExpandRequest) (*ExpandResponse, error)
}

type ConflictUseCase interface {
	Propose(ctx context.Context, req ConflictRequest) (*ConflictResponse, error)
}

type GoalUseCase interface {
	CreateGoal(ctx context.Context, req CreateGoalRequest) (*domain.Goal, error)
	ListGoals(ctx context.Context, includeArchived bool) ([]*domain.Goal, error)
	AdvancePhase(ctx context.Context, goalID string) (*domain.Goal, error)
	UpdateProgress(ctx context.Context, goalID string, progressPct float64) error
	ArchiveGoal(ctx context.Context, goalID string) error
}

type EventUseCase interface {
	ListEvents(ctx context.Context, from, to time.Time) ([]*domain.CalendarEvent, error)
	RescheduleEvent(ctx context.Context, eventID string, req RescheduleRequest) (*domain.CalendarEvent, error)
	SkipEvent(ctx context.Context, eventID string) error
	CompleteEvent(ctx context.Context, eventID string) error
}
