package service

import (
	"context"
	"time"

	"github.com/GeekPO11/dlulu/internal/app"
	"github.com/GeekPO11/dlulu/internal/repository"
	"github.com/GeekPO11/dlulu/internal/scheduler"
)

type focusService struct {
	goals    repository.GoalRepo
	events   repository.EventRepo
	profiles repository.UserProfileRepo
	observer UseCaseObserver
}

func NewFocusService(
	goals repository.GoalRepo,
	events repository.EventRepo,
	profiles repository.UserProfileRepo,
	observers ...UseCaseObserver,
) app.FocusUseCase {
	return &focusService{
		goals:    goals,
		events:   events,
		profiles: profiles,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *focusService) Suggest(ctx context.Context, req app.FocusRequest) (resp *app.FocusResponse, err error) {
	started := time.Now()
	defer func() { observe(ctx, s.observer, "focus.suggest", started, err, nil) }()

	now := resolveNow(req.Now)

	goals, err := s.goals.List(ctx, false)
	if err != nil {
		return nil, app.NewError(app.ErrInternal, err.Error())
	}

	dayStart, dayEnd := dayBounds(now)
	stored, err := s.events.ListBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, app.NewError(app.ErrInternal, err.Error())
	}

	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, app.NewError(app.ErrInternal, err.Error())
	}

	todayEvents := toTodayEvents(stored)
	return &app.FocusResponse{
		GeneratedAt:  now,
		TodayLoadMin: scheduler.TodayLoadMinutes(todayEvents),
		Suggestions:  scheduler.SelectFocus(activeGoals(goals), todayEvents, *profile),
	}, nil
}
