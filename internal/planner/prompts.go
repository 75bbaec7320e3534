package planner

import (
	"fmt"
	"strings"

	"github.com/GeekPO11/dlulu/internal/domain"
)

const strategySystemPrompt = `You are a scheduling strategist. Given a goal,
respond with a single JSON object and nothing else:
{"archetype":"HABIT_BUILDING|DEEP_WORK_PROJECT|SKILL_ACQUISITION|MAINTENANCE",
"frequencyPerWeek":1-7,"sessionDurationMin":15-240,
"preferredDays":["Mon","Wed","Fri"],
"groupingLogic":"BATCH_TASKS|ONE_PER_DAY|MILESTONE_PER_SESSION"}`

func strategyUserPrompt(goal *domain.Goal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Goal: %s\n", goal.Title)
	fmt.Fprintf(&b, "Progress: %.0f%%\n", goal.ProgressPct)
	if phase := goal.ActivePhase(); phase != nil {
		fmt.Fprintf(&b, "Current phase: %s (weeks %d-%d, %d milestones)\n",
			phase.Title, phase.StartWeek, phase.EndWeek, len(phase.Milestones))
	}
	b.WriteString("Choose a scheduling strategy for this goal.")
	return b.String()
}

const masterPlanSystemPrompt = `You are a scheduling planner. Respond with a
single JSON object and nothing else:
{"phaseSchedules":[{"goalId":"...","phaseId":"...","phaseTitle":"...",
"startWeek":1,"endWeek":4,
"weeklyTasks":[{"title":"...","day":0,"startTime":"09:00","endTime":"10:00","energyCost":1-5}],
"milestoneDeadlines":[{"milestoneId":"...","title":"...","weekNumber":2}]}]}
Day 0 is Monday. Weeks are 1-based from the plan start.`

func masterPlanUserPrompt(goals []*domain.Goal) string {
	var b strings.Builder
	b.WriteString("Build a weekly recurrence plan for these goals:\n")
	for _, goal := range goals {
		fmt.Fprintf(&b, "- goal %s %q (cadence %d/week, prefers %s)\n",
			goal.ID, goal.Title, goal.CadencePerWeek, goal.PreferredTimeOfDay)
		phase := goal.ActivePhase()
		if phase == nil {
			continue
		}
		fmt.Fprintf(&b, "  phase %s %q weeks %d-%d\n", phase.ID, phase.Title, phase.StartWeek, phase.EndWeek)
		for _, ms := range phase.Milestones {
			if ms.IsCompleted {
				continue
			}
			fmt.Fprintf(&b, "  milestone %s %q\n", ms.ID, ms.Title)
		}
	}
	return b.String()
}
