package service

import (
	"context"
	"strings"
	"time"

	"github.com/GeekPO11/dlulu/internal/app"
	"github.com/GeekPO11/dlulu/internal/domain"
	"github.com/GeekPO11/dlulu/internal/planner"
	"github.com/GeekPO11/dlulu/internal/repository"
	"github.com/GeekPO11/dlulu/internal/scheduler"
)

// maxSlotRetries bounds the day-by-day search for a slot that clears
// both the waking window and the overlap checks.
const maxSlotRetries = 14

type scheduleService struct {
	goals    repository.GoalRepo
	events   repository.EventRepo
	profiles repository.UserProfileRepo
	client   planner.Client
	newID    scheduler.IDGenerator
	observer UseCaseObserver
}

func NewScheduleService(
	goals repository.GoalRepo,
	events repository.EventRepo,
	profiles repository.UserProfileRepo,
	client planner.Client,
	newID scheduler.IDGenerator,
	observers ...UseCaseObserver,
) app.ScheduleUseCase {
	return &scheduleService{
		goals:    goals,
		events:   events,
		profiles: profiles,
		client:   client,
		newID:    newID,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *scheduleService) ScheduleGoal(ctx context.Context, req app.ScheduleRequest) (resp *app.ScheduleResponse, err error) {
	started := time.Now()
	fields := map[string]any{"goal_id": req.GoalID}
	defer func() { observe(ctx, s.observer, "schedule.goal", started, err, fields) }()

	goal, err := s.goals.GetByID(ctx, req.GoalID)
	if err != nil {
		return nil, app.NewError(app.ErrGoalNotFound, "goal "+req.GoalID+" not found")
	}

	units := scheduler.Flatten(goal)
	if len(units) == 0 {
		return nil, app.NewError(app.ErrNothingToPlan, "goal has no schedulable work in its active phase")
	}

	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, app.NewError(app.ErrInternal, err.Error())
	}

	result := planner.GoalStrategy(ctx, s.client, goal)
	strategy := result.Strategy

	now := resolveNow(req.Now)
	targetMin := strategy.SessionDurationMin
	if req.TargetSessionMin > 0 {
		targetMin = req.TargetSessionMin
	}

	sized := s.sizeUnits(units, goal, *profile)
	sessions := scheduler.GroupSessions(sized, targetMin)

	existing, err := s.events.ListBetween(ctx, now, now.AddDate(0, 0, 60))
	if err != nil {
		return nil, app.NewError(app.ErrInternal, err.Error())
	}

	placed, unplaced := s.placeSessions(goal, sessions, *profile, existing, now)
	if len(placed) > 0 {
		if err := s.events.CreateBatch(ctx, placed); err != nil {
			return nil, app.NewError(app.ErrInternal, err.Error())
		}
	}

	fields["sessions"] = len(sessions)
	fields["placed"] = len(placed)
	fields["fallback"] = result.FallbackApplied

	return &app.ScheduleResponse{
		GeneratedAt:     now,
		Strategy:        strategy,
		FallbackApplied: result.FallbackApplied,
		Events:          placed,
		Unplaced:        unplaced,
	}, nil
}

// sizeUnits runs each unit through the duration model so the grouper
// packs recommended minutes instead of raw estimates. Daily load
// accumulates across units in flatten order.
func (s *scheduleService) sizeUnits(units []domain.ExecutionUnit, goal *domain.Goal, profile domain.UserProfile) []domain.ExecutionUnit {
	sized := make([]domain.ExecutionUnit, len(units))
	loadMin := 0
	for i, u := range units {
		rec := scheduler.ComputeDuration(scheduler.DurationInput{
			EstimatedMin:   u.EstimatedMin,
			Difficulty:     u.Difficulty,
			CognitiveType:  u.CognitiveType,
			SubTaskCount:   u.SubTaskCount,
			EnergyLevel:    profile.EnergyLevel,
			SameDayLoadMin: loadMin,
			CadencePerWeek: &goal.CadencePerWeek,
			Archetype:      goal.Archetype,
			GoalSessionMin: &goal.SessionDurationMin,
		})
		sized[i] = u
		minutes := rec.RecommendedMin
		sized[i].EstimatedMin = &minutes
		loadMin += rec.FocusMin
	}
	return sized
}

// placeSessions resolves one slot per session, one session per day at
// most. A session that clears neither the coarse day check nor the
// overlap check within the retry budget is reported, never dropped.
func (s *scheduleService) placeSessions(
	goal *domain.Goal,
	sessions []scheduler.SessionPlan,
	profile domain.UserProfile,
	existing []*domain.CalendarEvent,
	now time.Time,
) ([]domain.CalendarEvent, []app.UnplacedSession) {
	var placed []domain.CalendarEvent
	var unplaced []app.UnplacedSession

	taken := make([]*domain.CalendarEvent, len(existing))
	copy(taken, existing)

	startFrom := now.AddDate(0, 0, 1) // never schedule into the current day
	for _, session := range sessions {
		event, reason, ok := s.placeOne(goal, session, profile, taken, startFrom)
		if !ok {
			unplaced = append(unplaced, app.UnplacedSession{
				Titles:      sessionTitles(session),
				DurationMin: session.TotalMin,
				Reason:      reason,
			})
			continue
		}
		placed = append(placed, *event)
		taken = append(taken, event)
		startFrom = event.StartAt.AddDate(0, 0, 1)
	}
	return placed, unplaced
}

func (s *scheduleService) placeOne(
	goal *domain.Goal,
	session scheduler.SessionPlan,
	profile domain.UserProfile,
	taken []*domain.CalendarEvent,
	startFrom time.Time,
) (*domain.CalendarEvent, string, bool) {
	reason := "no slot inside the waking window"
	candidateDay := startFrom
	for attempt := 0; attempt < maxSlotRetries; attempt++ {
		placement, ok := scheduler.PlaceSession(session.TotalMin, profile, candidateDay)
		if !ok {
			return nil, reason, false
		}

		event := s.eventForSession(goal, session, placement)
		valid, why := scheduler.ValidateSlot(event, taken, profile.Constraints, "")
		if valid {
			return event, "", true
		}
		reason = why
		candidateDay = placement.StartAt.AddDate(0, 0, 1)
	}
	return nil, reason, false
}

func (s *scheduleService) eventForSession(goal *domain.Goal, session scheduler.SessionPlan, placement scheduler.Placement) *domain.CalendarEvent {
	now := time.Now().UTC()
	first := session.Units[0]
	return &domain.CalendarEvent{
		ID:          s.newID(),
		Title:       sessionTitle(goal, session),
		StartAt:     placement.StartAt,
		EndAt:       placement.EndAt,
		Timezone:    placement.StartAt.Location().String(),
		GoalID:      goal.ID,
		PhaseID:     first.PhaseID,
		MilestoneID: first.MilestoneID,
		Type:        domain.EventGoalSession,
		EnergyCost:  goal.EnergyCost,
		Status:      domain.EventScheduled,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func sessionTitle(goal *domain.Goal, session scheduler.SessionPlan) string {
	if len(session.Units) == 1 {
		return goal.Title + ": " + session.Units[0].Title
	}
	return goal.Title + ": " + strings.Join(sessionTitles(session), " / ")
}
