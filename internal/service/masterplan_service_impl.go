package service

import (
	"context"
	"time"

	"github.com/GeekPO11/dlulu/internal/app"
	"github.com/GeekPO11/dlulu/internal/domain"
	"github.com/GeekPO11/dlulu/internal/planner"
	"github.com/GeekPO11/dlulu/internal/repository"
	"github.com/GeekPO11/dlulu/internal/scheduler"
)

type masterPlanService struct {
	goals    repository.GoalRepo
	events   repository.EventRepo
	profiles repository.UserProfileRepo
	client   planner.Client
	newID    scheduler.IDGenerator
	observer UseCaseObserver
}

func NewMasterPlanService(
	goals repository.GoalRepo,
	events repository.EventRepo,
	profiles repository.UserProfileRepo,
	client planner.Client,
	newID scheduler.IDGenerator,
	observers ...UseCaseObserver,
) app.MasterPlanUseCase {
	return &masterPlanService{
		goals:    goals,
		events:   events,
		profiles: profiles,
		client:   client,
		newID:    newID,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *masterPlanService) Expand(ctx context.Context, req app.ExpandRequest) (resp *app.ExpandResponse, err error) {
	started := time.Now()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "masterplan.expand", started, err, fields) }()

	goals, err := s.goals.List(ctx, false)
	if err != nil {
		return nil, app.NewError(app.ErrInternal, err.Error())
	}
	goals = activeGoals(goals)
	if len(goals) == 0 {
		return nil, app.NewError(app.ErrNoActiveGoals, "no active goals to plan")
	}

	now := resolveNow(req.Now)
	startDate := now
	if req.StartDate != nil {
		startDate = *req.StartDate
	}

	plan, planErr := planner.WeeklyMasterPlan(ctx, s.client, goals)
	fallbackApplied := false
	if planErr != nil {
		plan = planner.BuildFallbackPlan(goals, planner.FallbackStrategy())
		fallbackApplied = true
	}

	expanded := scheduler.ExpandMasterPlan(plan, startDate, s.newID)

	horizon := lastEventEnd(expanded, startDate)
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, app.NewError(app.ErrInternal, err.Error())
	}
	existing, err := s.events.ListBetween(ctx, scheduler.WeekStart(startDate), horizon)
	if err != nil {
		return nil, app.NewError(app.ErrInternal, err.Error())
	}

	created, conflicts := partitionByValidity(expanded, existing, profile.Constraints)
	if len(created) > 0 {
		if err := s.events.CreateBatch(ctx, created); err != nil {
			return nil, app.NewError(app.ErrInternal, err.Error())
		}
	}

	fields["fallback"] = fallbackApplied
	fields["created"] = len(created)
	fields["conflicts"] = len(conflicts)

	return &app.ExpandResponse{
		GeneratedAt:     now,
		FallbackApplied: fallbackApplied,
		Created:         created,
		Conflicts:       conflicts,
	}, nil
}

// partitionByValidity keeps valid events for creation and reports the
// rest as conflicts. All-day checkpoints skip the slot check: they mark
// a date, not a time window. Accepted events join the overlap set so a
// plan cannot conflict with itself.
func partitionByValidity(
	expanded []domain.CalendarEvent,
	existing []*domain.CalendarEvent,
	cons domain.TimeConstraints,
) ([]domain.CalendarEvent, []app.ConflictInfo) {
	var created []domain.CalendarEvent
	var conflicts []app.ConflictInfo

	taken := make([]*domain.CalendarEvent, len(existing))
	copy(taken, existing)

	for i := range expanded {
		ev := expanded[i]
		if ev.AllDay {
			created = append(created, ev)
			continue
		}
		valid, reason := scheduler.ValidateSlot(&ev, taken, cons, "")
		if !valid {
			conflicts = append(conflicts, app.ConflictInfo{Event: ev, Reason: reason})
			continue
		}
		created = append(created, ev)
		accepted := ev
		taken = append(taken, &accepted)
	}
	return created, conflicts
}

func lastEventEnd(events []domain.CalendarEvent, fallback time.Time) time.Time {
	end := fallback
	for _, ev := range events {
		if ev.EndAt.After(end) {
			end = ev.EndAt
		}
	}
	return end
}
