package scheduler

import (
	"sort"

	"github.com/GeekPO11/dlulu/internal/domain"
)

// Flatten walks a goal's phases, milestones, and tasks in stored order and
// returns the schedulable execution units. Completed phases, completed
// milestones, and completed or struck-through tasks are skipped; a milestone
// with no tasks contributes nothing. The result ordering is stable across
// repeated calls for unchanged input.
func Flatten(goal *domain.Goal) []domain.ExecutionUnit {
	var units []domain.ExecutionUnit
	for pi := range goal.Phases {
		phase := &goal.Phases[pi]
		if phase.Status == domain.PhaseCompleted || phase.Status == domain.PhaseAbandoned {
			continue
		}
		for mi := range phase.Milestones {
			ms := &phase.Milestones[mi]
			if ms.IsCompleted {
				continue
			}
			for _, task := range sortedTasks(ms.Tasks) {
				if task.IsCompleted || task.Strikethrough {
					continue
				}
				units = append(units, unitFromTask(goal, phase, ms, task))
			}
		}
	}
	return units
}

// FlattenForMasterPlan flattens a goal for master-plan expansion. Unlike
// Flatten, a milestone with zero tasks contributes itself as a single unit.
// The two policies serve different callers and are kept separate.
func FlattenForMasterPlan(goal *domain.Goal) []domain.ExecutionUnit {
	var units []domain.ExecutionUnit
	for pi := range goal.Phases {
		phase := &goal.Phases[pi]
		if phase.Status == domain.PhaseCompleted || phase.Status == domain.PhaseAbandoned {
			continue
		}
		for mi := range phase.Milestones {
			ms := &phase.Milestones[mi]
			if ms.IsCompleted {
				continue
			}
			if len(ms.Tasks) == 0 {
				units = append(units, domain.ExecutionUnit{
					ID:          ms.ID,
					GoalID:      goal.ID,
					PhaseID:     phase.ID,
					MilestoneID: ms.ID,
					Title:       ms.Title,
					Order:       ms.Order,
				})
				continue
			}
			for _, task := range sortedTasks(ms.Tasks) {
				if task.IsCompleted || task.Strikethrough {
					continue
				}
				units = append(units, unitFromTask(goal, phase, ms, task))
			}
		}
	}
	return units
}

func unitFromTask(goal *domain.Goal, phase *domain.Phase, ms *domain.Milestone, task domain.Task) domain.ExecutionUnit {
	return domain.ExecutionUnit{
		ID:            task.ID,
		GoalID:        goal.ID,
		PhaseID:       phase.ID,
		MilestoneID:   ms.ID,
		Title:         task.Title,
		EstimatedMin:  task.EstimatedMin,
		Difficulty:    task.Difficulty,
		CognitiveType: task.CognitiveType,
		SubTaskCount:  len(task.SubTasks),
		Order:         task.Order,
	}
}

// sortedTasks orders tasks by their Order field, falling back to the
// original array index for ties.
func sortedTasks(tasks []domain.Task) []domain.Task {
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}
