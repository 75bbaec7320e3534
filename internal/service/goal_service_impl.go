package service

import (
	"context"
	"strings"
	"time"

	"github.com/GeekPO11/dlulu/internal/app"
	"github.com/GeekPO11/dlulu/internal/domain"
	"github.com/GeekPO11/dlulu/internal/repository"
	"github.com/GeekPO11/dlulu/internal/scheduler"
)

type goalService struct {
	goals    repository.GoalRepo
	newID    scheduler.IDGenerator
	observer UseCaseObserver
}

func NewGoalService(goals repository.GoalRepo, newID scheduler.IDGenerator, observers ...UseCaseObserver) app.GoalUseCase {
	return &goalService{
		goals:    goals,
		newID:    newID,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *goalService) CreateGoal(ctx context.Context, req app.CreateGoalRequest) (goal *domain.Goal, err error) {
	started := time.Now()
	defer func() { observe(ctx, s.observer, "goal.create", started, err, nil) }()

	if strings.TrimSpace(req.Title) == "" {
		return nil, app.NewError(app.ErrInvalidArgument, "goal title is required")
	}
	if req.Archetype != "" && !domain.ValidArchetypes[string(req.Archetype)] {
		return nil, app.NewError(app.ErrInvalidArgument, "unknown archetype "+string(req.Archetype))
	}

	now := time.Now().UTC()
	goal = &domain.Goal{
		ID:                 s.newID(),
		Title:              strings.TrimSpace(req.Title),
		Status:             domain.GoalActive,
		Phases:             req.Phases,
		CadencePerWeek:     req.CadencePerWeek,
		SessionDurationMin: req.SessionDurationMin,
		PreferredTimeOfDay: req.PreferredTimeOfDay,
		EnergyCost:         req.EnergyCost,
		Archetype:          req.Archetype,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	applyGoalDefaults(goal)
	fillHierarchyIDs(goal, s.newID)

	if err = s.goals.Create(ctx, goal); err != nil {
		return nil, app.NewError(app.ErrInternal, err.Error())
	}
	return goal, nil
}

func (s *goalService) ListGoals(ctx context.Context, includeArchived bool) (goals []*domain.Goal, err error) {
	started := time.Now()
	defer func() { observe(ctx, s.observer, "goal.list", started, err, nil) }()

	goals, err = s.goals.List(ctx, includeArchived)
	if err != nil {
		return nil, app.NewError(app.ErrInternal, err.Error())
	}
	return goals, nil
}

// AdvancePhase completes the active phase and moves the pointer to the
// next one. Advancing past the last phase marks the goal done.
func (s *goalService) AdvancePhase(ctx context.Context, goalID string) (goal *domain.Goal, err error) {
	started := time.Now()
	defer func() { observe(ctx, s.observer, "goal.advance_phase", started, err, map[string]any{"goal_id": goalID}) }()

	goal, err = s.goals.GetByID(ctx, goalID)
	if err != nil {
		return nil, app.NewError(app.ErrGoalNotFound, "goal "+goalID+" not found")
	}
	if len(goal.Phases) == 0 {
		return nil, app.NewError(app.ErrInvalidArgument, "goal has no phases to advance")
	}

	idx := goal.ActivePhaseIndex()
	goal.Phases[idx].Status = domain.PhaseCompleted

	if idx+1 < len(goal.Phases) {
		goal.CurrentPhaseIndex = idx + 1
		goal.Phases[idx+1].Status = domain.PhaseActive
	} else {
		goal.Status = domain.GoalDone
		goal.ProgressPct = 100
	}

	if err = s.goals.Update(ctx, goal); err != nil {
		return nil, app.NewError(app.ErrInternal, err.Error())
	}
	return goal, nil
}

func (s *goalService) UpdateProgress(ctx context.Context, goalID string, progressPct float64) (err error) {
	started := time.Now()
	defer func() { observe(ctx, s.observer, "goal.update_progress", started, err, map[string]any{"goal_id": goalID}) }()

	if progressPct < 0 || progressPct > 100 {
		return app.NewError(app.ErrInvalidArgument, "progress must be between 0 and 100")
	}
	goal, err := s.goals.GetByID(ctx, goalID)
	if err != nil {
		return app.NewError(app.ErrGoalNotFound, "goal "+goalID+" not found")
	}
	goal.ProgressPct = progressPct
	if err = s.goals.Update(ctx, goal); err != nil {
		return app.NewError(app.ErrInternal, err.Error())
	}
	return nil
}

func (s *goalService) ArchiveGoal(ctx context.Context, goalID string) (err error) {
	started := time.Now()
	defer func() { observe(ctx, s.observer, "goal.archive", started, err, map[string]any{"goal_id": goalID}) }()

	if _, err = s.goals.GetByID(ctx, goalID); err != nil {
		return app.NewError(app.ErrGoalNotFound, "goal "+goalID+" not found")
	}
	if err = s.goals.Archive(ctx, goalID); err != nil {
		return app.NewError(app.ErrInternal, err.Error())
	}
	return nil
}

func applyGoalDefaults(g *domain.Goal) {
	if g.Archetype == "" {
		g.Archetype = domain.ArchetypeDeepWorkProject
	}
	if g.CadencePerWeek <= 0 {
		g.CadencePerWeek = 3
	}
	if g.SessionDurationMin <= 0 {
		g.SessionDurationMin = 60
	}
	if g.PreferredTimeOfDay == "" {
		g.PreferredTimeOfDay = domain.TimeMorning
	}
	if g.EnergyCost <= 0 {
		g.EnergyCost = 3
	}
	if len(g.Phases) > 0 && g.Phases[0].Status == "" {
		g.Phases[0].Status = domain.PhaseActive
	}
}

// fillHierarchyIDs assigns identifiers to any nested node created
// without one, so callers can pass bare titles.
func fillHierarchyIDs(g *domain.Goal, newID scheduler.IDGenerator) {
	for pi := range g.Phases {
		p := &g.Phases[pi]
		if p.ID == "" {
			p.ID = newID()
		}
		if p.Status == "" {
			p.Status = domain.PhasePending
		}
		for mi := range p.Milestones {
			m := &p.Milestones[mi]
			if m.ID == "" {
				m.ID = newID()
			}
			for ti := range m.Tasks {
				t := &m.Tasks[ti]
				if t.ID == "" {
					t.ID = newID()
				}
				for si := range t.SubTasks {
					if t.SubTasks[si].ID == "" {
						t.SubTasks[si].ID = newID()
					}
				}
			}
		}
	}
}
