package planner

import (
	"context"
	"fmt"

	"github.com/GeekPO11/dlulu/internal/domain"
	"github.com/GeekPO11/dlulu/internal/scheduler"
)

// masterPlanPayload is the collaborator's wire shape for a weekly
// recurrence master plan. Missing arrays decode to nil and are treated
// as empty.
type masterPlanPayload struct {
	PhaseSchedules []phaseSchedulePayload `json:"phaseSchedules"`
}

type phaseSchedulePayload struct {
	GoalID      string              `json:"goalId"`
	PhaseID     string              `json:"phaseId"`
	PhaseTitle  string              `json:"phaseTitle"`
	StartWeek   int                 `json:"startWeek"`
	EndWeek     int                 `json:"endWeek"`
	WeeklyTasks []weeklyTaskPayload `json:"weeklyTasks"`
	Deadlines   []deadlinePayload   `json:"milestoneDeadlines"`
}

type weeklyTaskPayload struct {
	Title      string `json:"title"`
	Day        int    `json:"day"` // 0 = Monday
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	EnergyCost int    `json:"energyCost"`
}

type deadlinePayload struct {
	MilestoneID string `json:"milestoneId"`
	Title       string `json:"title"`
	WeekNumber  int    `json:"weekNumber"`
}

// WeeklyMasterPlan asks the collaborator for a multi-week recurrence plan
// across the given goals. The payload is validated structurally; a failed
// call returns the error so the caller can fall back to a locally built
// plan.
func WeeklyMasterPlan(ctx context.Context, client Client, goals []*domain.Goal) (scheduler.MasterPlan, error) {
	resp, err := client.Generate(ctx, GenerateRequest{
		Task:         TaskMasterPlan,
		SystemPrompt: masterPlanSystemPrompt,
		UserPrompt:   masterPlanUserPrompt(goals),
	})
	if err != nil {
		return scheduler.MasterPlan{}, err
	}

	payload, err := DecodeJSON[masterPlanPayload](resp.Text, nil)
	if err != nil {
		return scheduler.MasterPlan{}, err
	}
	return planFromPayload(payload), nil
}

func planFromPayload(payload masterPlanPayload) scheduler.MasterPlan {
	var plan scheduler.MasterPlan
	for _, ps := range payload.PhaseSchedules {
		schedule := scheduler.PhaseSchedule{
			GoalID:     ps.GoalID,
			PhaseID:    ps.PhaseID,
			PhaseTitle: ps.PhaseTitle,
			StartWeek:  ps.StartWeek,
			EndWeek:    ps.EndWeek,
		}
		for _, wt := range ps.WeeklyTasks {
			schedule.Templates = append(schedule.Templates, scheduler.WeeklyTaskTemplate{
				Title:      wt.Title,
				DayOffset:  wt.Day,
				StartTime:  wt.StartTime,
				EndTime:    wt.EndTime,
				EnergyCost: wt.EnergyCost,
			})
		}
		for _, dl := range ps.Deadlines {
			schedule.Deadlines = append(schedule.Deadlines, scheduler.MilestoneDeadline{
				MilestoneID: dl.MilestoneID,
				Title:       dl.Title,
				WeekNumber:  dl.WeekNumber,
			})
		}
		plan.PhaseSchedules = append(plan.PhaseSchedules, schedule)
	}
	return plan
}

// BuildFallbackPlan derives a master plan locally from the goals and a
// strategy, used when the collaborator is unavailable. Each active
// phase gets one template per preferred day at the goal's preferred time
// of day, and one deadline per milestone spread across the phase's weeks.
func BuildFallbackPlan(goals []*domain.Goal, strategy Strategy) scheduler.MasterPlan {
	var plan scheduler.MasterPlan
	for _, goal := range goals {
		phase := goal.ActivePhase()
		if phase == nil {
			continue
		}
		startWeek := phase.StartWeek
		if startWeek < 1 {
			startWeek = 1
		}
		endWeek := phase.EndWeek
		if endWeek < startWeek {
			endWeek = startWeek
		}

		schedule := scheduler.PhaseSchedule{
			GoalID:     goal.ID,
			PhaseID:    phase.ID,
			PhaseTitle: phase.Title,
			StartWeek:  startWeek,
			EndWeek:    endWeek,
		}

		startHour := 18
		if goal.PreferredTimeOfDay == domain.TimeMorning {
			startHour = 9
		} else if goal.PreferredTimeOfDay == domain.TimeAfternoon {
			startHour = 14
		}
		durationMin := goal.SessionDurationMin
		if durationMin <= 0 {
			durationMin = strategy.SessionDurationMin
		}

		days := strategy.PreferredDays
		if goal.CadencePerWeek > 0 && goal.CadencePerWeek < len(days) {
			days = days[:goal.CadencePerWeek]
		}
		for _, day := range days {
			offset := (int(day) + 6) % 7 // Monday = 0
			endMin := startHour*60 + durationMin
			schedule.Templates = append(schedule.Templates, scheduler.WeeklyTaskTemplate{
				Title:      fmt.Sprintf("%s: %s", goal.Title, phase.Title),
				DayOffset:  offset,
				StartTime:  fmt.Sprintf("%02d:00", startHour),
				EndTime:    fmt.Sprintf("%02d:%02d", endMin/60, endMin%60),
				EnergyCost: goal.EnergyCost,
			})
		}

		weeks := endWeek - startWeek + 1
		for i, ms := range phase.Milestones {
			if ms.IsCompleted {
				continue
			}
			week := startWeek + (i+1)*weeks/(len(phase.Milestones)+1)
			if week > endWeek {
				week = endWeek
			}
			schedule.Deadlines = append(schedule.Deadlines, scheduler.MilestoneDeadline{
				MilestoneID: ms.ID,
				Title:       ms.Title,
				WeekNumber:  week,
			})
		}
		plan.PhaseSchedules = append(plan.PhaseSchedules, schedule)
	}
	return plan
}
