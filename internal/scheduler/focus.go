package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/GeekPO11/dlulu/internal/domain"
)

// MaxFocusSuggestions bounds the daily worklist.
const MaxFocusSuggestions = 6

// minGoalLinked is the threshold below which filler habits are appended.
const minGoalLinked = 3

// progressSentinel sorts items with no resolvable progress after every
// real goal (progress is a percentage, so 101 is past the range).
const progressSentinel = 101.0

// FocusSuggestion is one entry of the daily worklist. IDs are stable
// across repeated calls for unchanged input; clients cache "done" state
// against them.
type FocusSuggestion struct {
	ID           string
	GoalID       string
	Title        string
	Description  string
	Priority     domain.SuggestionPriority
	EstimatedMin int

	progress float64 // sort key
}

// TodayEvent is an already-scheduled event for the current day, with
// RFC 3339 start/end stamps as they come out of storage. Unparseable
// stamps contribute zero load rather than failing the run.
type TodayEvent struct {
	StartAt string
	EndAt   string
}

// TodayLoadMinutes sums the durations of today's parseable events.
func TodayLoadMinutes(events []TodayEvent) int {
	total := 0
	for _, ev := range events {
		start, err1 := time.Parse(time.RFC3339, ev.StartAt)
		end, err2 := time.Parse(time.RFC3339, ev.EndAt)
		if err1 != nil || err2 != nil || !end.After(start) {
			continue
		}
		total += int(end.Sub(start) / time.Minute)
	}
	return total
}

// SelectFocus produces the capped, priority-ordered worklist for today.
// With no goals it returns the single onboarding suggestion. Goals without
// phases contribute nothing. When fewer than three retained suggestions
// are goal-linked, filler habits from a fixed catalogue are appended.
func SelectFocus(goals []*domain.Goal, todayEvents []TodayEvent, profile domain.UserProfile) []FocusSuggestion {
	if len(goals) == 0 {
		return []FocusSuggestion{{
			ID:           "setup:first-ambition",
			Title:        "Set up your first ambition",
			Description:  "Pick one thing you want to be true in six months and break it down.",
			Priority:     domain.PriorityHigh,
			EstimatedMin: 20,
			progress:     progressSentinel,
		}}
	}

	loadMin := TodayLoadMinutes(todayEvents)

	var suggestions []FocusSuggestion
	for _, goal := range goals {
		if len(goal.Phases) == 0 {
			continue
		}
		phase := goal.ActivePhase()
		ms := firstIncompleteMilestone(phase)
		if ms == nil {
			suggestions = append(suggestions, FocusSuggestion{
				ID:           suggestionID(goal.ID, "", "", ""),
				GoalID:       goal.ID,
				Title:        fmt.Sprintf("Review %s", goal.Title),
				Description:  "All milestones in the current phase are done. Review progress and plan the next step.",
				Priority:     priorityForProgress(goal.ProgressPct),
				EstimatedMin: 15,
				progress:     goal.ProgressPct,
			})
			continue
		}

		task := firstSchedulableTask(ms)
		if task == nil {
			res := ComputeDuration(DurationInput{
				GoalSessionMin: nonZeroPtr(goal.SessionDurationMin),
			})
			suggestions = append(suggestions, FocusSuggestion{
				ID:           suggestionID(goal.ID, ms.ID, "", ""),
				GoalID:       goal.ID,
				Title:        ms.Title,
				Priority:     priorityForProgress(goal.ProgressPct),
				EstimatedMin: res.RecommendedMin,
				progress:     goal.ProgressPct,
			})
			continue
		}

		res := ComputeDuration(DurationInput{
			EstimatedMin:   task.EstimatedMin,
			Difficulty:     task.Difficulty,
			CognitiveType:  task.CognitiveType,
			SubTaskCount:   len(task.SubTasks),
			EnergyLevel:    profile.EnergyLevel,
			SameDayLoadMin: loadMin,
			CadencePerWeek: nonZeroPtr(goal.CadencePerWeek),
			Archetype:      goal.Archetype,
			GoalSessionMin: nonZeroPtr(goal.SessionDurationMin),
		})

		sub := firstSchedulableSubTask(task)
		title := task.Title
		subID := ""
		if sub != nil {
			title = sub.Title
			subID = sub.ID
		}
		suggestions = append(suggestions, FocusSuggestion{
			ID:           suggestionID(goal.ID, ms.ID, task.ID, subID),
			GoalID:       goal.ID,
			Title:        title,
			Priority:     priorityForProgress(goal.ProgressPct),
			EstimatedMin: res.RecommendedMin,
			progress:     goal.ProgressPct,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].progress < suggestions[j].progress
	})
	if len(suggestions) > MaxFocusSuggestions {
		suggestions = suggestions[:MaxFocusSuggestions]
	}

	return appendFillers(suggestions, todayEvents)
}

// appendFillers tops the list up with generic habit items when too few
// goal-linked suggestions survived selection.
func appendFillers(suggestions []FocusSuggestion, todayEvents []TodayEvent) []FocusSuggestion {
	goalLinked := 0
	for _, s := range suggestions {
		if s.GoalID != "" {
			goalLinked++
		}
	}
	if goalLinked >= minGoalLinked {
		return suggestions
	}

	seen := make(map[string]bool, len(suggestions))
	for _, s := range suggestions {
		seen[s.ID] = true
	}

	for _, filler := range fillerCatalogue(len(todayEvents)) {
		if len(suggestions) >= minGoalLinked {
			break
		}
		if seen[filler.ID] {
			continue
		}
		suggestions = append(suggestions, filler)
		seen[filler.ID] = true
	}
	return suggestions
}

// fillerCatalogue returns the fixed habit fillers: a movement break, and
// either a recovery break on busy days or a hydration reset otherwise.
func fillerCatalogue(todayEventCount int) []FocusSuggestion {
	fillers := []FocusSuggestion{{
		ID:           "habit:movement-break",
		Title:        "Take a movement break",
		Description:  "Stand up, stretch, walk for a few minutes.",
		Priority:     domain.PriorityLow,
		EstimatedMin: 10,
		progress:     progressSentinel,
	}}
	if todayEventCount >= 3 {
		fillers = append(fillers, FocusSuggestion{
			ID:           "habit:recovery-break",
			Title:        "Schedule a recovery break",
			Description:  "Today is already full. Block fifteen minutes with nothing in them.",
			Priority:     domain.PriorityLow,
			EstimatedMin: 15,
			progress:     progressSentinel,
		})
	} else {
		fillers = append(fillers, FocusSuggestion{
			ID:           "habit:hydration-reset",
			Title:        "Hydration and posture reset",
			Description:  "Refill water, reset your sitting position.",
			Priority:     domain.PriorityLow,
			EstimatedMin: 5,
			progress:     progressSentinel,
		})
	}
	return fillers
}

// suggestionID builds the stable 4-tuple identifier, substituting the
// m0/t0/s0 placeholders for missing levels.
func suggestionID(goalID, milestoneID, taskID, subTaskID string) string {
	return fmt.Sprintf("%s:%s:%s:%s",
		goalID,
		domain.CoalesceStr(milestoneID, "m0"),
		domain.CoalesceStr(taskID, "t0"),
		domain.CoalesceStr(subTaskID, "s0"),
	)
}

// priorityForProgress derives suggestion priority from the owning goal's
// progress alone; task difficulty does not participate.
func priorityForProgress(progressPct float64) domain.SuggestionPriority {
	switch {
	case progressPct < 35:
		return domain.PriorityHigh
	case progressPct < 70:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}

func firstIncompleteMilestone(phase *domain.Phase) *domain.Milestone {
	if phase == nil {
		return nil
	}
	ordered := make([]*domain.Milestone, 0, len(phase.Milestones))
	for i := range phase.Milestones {
		ordered = append(ordered, &phase.Milestones[i])
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})
	for _, ms := range ordered {
		if !ms.IsCompleted {
			return ms
		}
	}
	return nil
}

func firstSchedulableTask(ms *domain.Milestone) *domain.Task {
	ordered := make([]*domain.Task, 0, len(ms.Tasks))
	for i := range ms.Tasks {
		ordered = append(ordered, &ms.Tasks[i])
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})
	for _, t := range ordered {
		if t.Schedulable() {
			return t
		}
	}
	return nil
}

func firstSchedulableSubTask(task *domain.Task) *domain.SubTask {
	ordered := make([]*domain.SubTask, 0, len(task.SubTasks))
	for i := range task.SubTasks {
		ordered = append(ordered, &task.SubTasks[i])
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})
	for _, s := range ordered {
		if !s.IsCompleted && !s.Strikethrough {
			return s
		}
	}
	return nil
}

func nonZeroPtr(v int) *int {
	if v <= 0 {
		return nil
	}
	return &v
}
