package service

import (
	"context"
	"time"

	"github.com/GeekPO11/dlulu/internal/app"
	"github.com/GeekPO11/dlulu/internal/repository"
	"github.com/GeekPO11/dlulu/internal/scheduler"
)

type conflictService struct {
	events   repository.EventRepo
	profiles repository.UserProfileRepo
	observer UseCaseObserver
}

func NewConflictService(
	events repository.EventRepo,
	profiles repository.UserProfileRepo,
	observers ...UseCaseObserver,
) app.ConflictUseCase {
	return &conflictService{
		events:   events,
		profiles: profiles,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *conflictService) Propose(ctx context.Context, req app.ConflictRequest) (resp *app.ConflictResponse, err error) {
	started := time.Now()
	fields := map[string]any{"event_id": req.EventID}
	defer func() { observe(ctx, s.observer, "conflict.propose", started, err, fields) }()

	event, err := s.events.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, app.NewError(app.ErrEventNotFound, "event "+req.EventID+" not found")
	}

	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, app.NewError(app.ErrInternal, err.Error())
	}

	// The repair search walks up to a week forward from the event.
	from := event.StartAt.AddDate(0, 0, -1)
	to := event.StartAt.AddDate(0, 0, 8)
	existing, err := s.events.ListBetween(ctx, from, to)
	if err != nil {
		return nil, app.NewError(app.ErrInternal, err.Error())
	}

	proposals := scheduler.ProposeAlternatives(event, profile.Constraints, existing)
	fields["proposals"] = len(proposals)

	return &app.ConflictResponse{
		Event:     *event,
		Reason:    req.Reason,
		Proposals: proposals,
	}, nil
}
