package service

import (
	"context"
	"time"

	"github.com/GeekPO11/dlulu/internal/app"
	"github.com/GeekPO11/dlulu/internal/domain"
	"github.com/GeekPO11/dlulu/internal/repository"
	"github.com/GeekPO11/dlulu/internal/scheduler"
)

type eventService struct {
	events   repository.EventRepo
	profiles repository.UserProfileRepo
	observer UseCaseObserver
}

func NewEventService(events repository.EventRepo, profiles repository.UserProfileRepo, observers ...UseCaseObserver) app.EventUseCase {
	return &eventService{
		events:   events,
		profiles: profiles,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *eventService) ListEvents(ctx context.Context, from, to time.Time) (events []*domain.CalendarEvent, err error) {
	started := time.Now()
	defer func() { observe(ctx, s.observer, "event.list", started, err, nil) }()

	events, err = s.events.ListBetween(ctx, from, to)
	if err != nil {
		return nil, app.NewError(app.ErrInternal, err.Error())
	}
	return events, nil
}

// RescheduleEvent moves an event after re-validating the target slot
// against the user's constraints and every other event.
func (s *eventService) RescheduleEvent(ctx context.Context, eventID string, req app.RescheduleRequest) (event *domain.CalendarEvent, err error) {
	started := time.Now()
	defer func() { observe(ctx, s.observer, "event.reschedule", started, err, map[string]any{"event_id": eventID}) }()

	if !req.EndAt.After(req.StartAt) {
		return nil, app.NewError(app.ErrInvalidArgument, "end must be after start")
	}

	event, err = s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, app.NewError(app.ErrEventNotFound, "event "+eventID+" not found")
	}

	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, app.NewError(app.ErrInternal, err.Error())
	}

	dayStart, dayEnd := dayBounds(req.StartAt)
	neighbors, err := s.events.ListBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, app.NewError(app.ErrInternal, err.Error())
	}

	candidate := *event
	candidate.StartAt = req.StartAt
	candidate.EndAt = req.EndAt
	if valid, reason := scheduler.ValidateSlot(&candidate, neighbors, profile.Constraints, event.ID); !valid {
		return nil, app.NewError(app.ErrInvalidArgument, "slot rejected: "+reason)
	}

	if err = s.events.Reschedule(ctx, eventID, req.StartAt, req.EndAt); err != nil {
		return nil, app.NewError(app.ErrInternal, err.Error())
	}
	return s.events.GetByID(ctx, eventID)
}

func (s *eventService) SkipEvent(ctx context.Context, eventID string) (err error) {
	started := time.Now()
	defer func() { observe(ctx, s.observer, "event.skip", started, err, map[string]any{"event_id": eventID}) }()

	if err = s.events.MarkStatus(ctx, eventID, domain.EventSkipped); err != nil {
		return app.NewError(app.ErrEventNotFound, "event "+eventID+" not found")
	}
	return nil
}

func (s *eventService) CompleteEvent(ctx context.Context, eventID string) (err error) {
	started := time.Now()
	defer func() { observe(ctx, s.observer, "event.complete", started, err, map[string]any{"event_id": eventID}) }()

	if err = s.events.MarkStatus(ctx, eventID, domain.EventCompleted); err != nil {
		return app.NewError(app.ErrEventNotFound, "event "+eventID+" not found")
	}
	return nil
}
