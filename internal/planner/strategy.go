package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/GeekPO11/dlulu/internal/domain"
)

// Strategy is the scheduling-style object the collaborator produces for
// a goal.
type Strategy struct {
	Archetype          domain.Archetype
	FrequencyPerWeek   int
	SessionDurationMin int
	PreferredDays      []time.Weekday
	GroupingLogic      domain.GroupingLogic
}

// StrategyResult carries the strategy together with the fallback flag so
// callers can see that the collaborator call failed rather than having a
// default silently substituted.
type StrategyResult struct {
	Strategy        Strategy
	FallbackApplied bool
	Err             error // the collaborator error when FallbackApplied
}

// FallbackStrategy is the hard-coded strategy used whenever the
// collaborator call fails, times out, or is disabled.
func FallbackStrategy() Strategy {
	return Strategy{
		Archetype:          domain.ArchetypeDeepWorkProject,
		FrequencyPerWeek:   3,
		SessionDurationMin: 60,
		PreferredDays:      []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		GroupingLogic:      domain.GroupBatchTasks,
	}
}

// strategyPayload is the collaborator's wire shape for a strategy.
type strategyPayload struct {
	Archetype          string   `json:"archetype"`
	FrequencyPerWeek   int      `json:"frequencyPerWeek"`
	SessionDurationMin int      `json:"sessionDurationMin"`
	PreferredDays      []string `json:"preferredDays"`
	GroupingLogic      string   `json:"groupingLogic"`
}

// GoalStrategy asks the collaborator for a scheduling strategy. Errors
// never propagate: the result carries the fallback with FallbackApplied
// set and the original error preserved for logging.
func GoalStrategy(ctx context.Context, client Client, goal *domain.Goal) StrategyResult {
	resp, err := client.Generate(ctx, GenerateRequest{
		Task:         TaskStrategy,
		SystemPrompt: strategySystemPrompt,
		UserPrompt:   strategyUserPrompt(goal),
	})
	if err != nil {
		return StrategyResult{Strategy: FallbackStrategy(), FallbackApplied: true, Err: err}
	}

	payload, err := DecodeJSON(resp.Text, func(p strategyPayload) error {
		if !domain.ValidArchetypes[p.Archetype] {
			return fmt.Errorf("unknown archetype %q", p.Archetype)
		}
		return nil
	})
	if err != nil {
		return StrategyResult{Strategy: FallbackStrategy(), FallbackApplied: true, Err: err}
	}

	return StrategyResult{Strategy: strategyFromPayload(payload)}
}

// strategyFromPayload converts the wire shape, degrading out-of-range
// fields to the fallback's values.
func strategyFromPayload(p strategyPayload) Strategy {
	fallback := FallbackStrategy()

	s := Strategy{
		Archetype:          domain.Archetype(p.Archetype),
		FrequencyPerWeek:   p.FrequencyPerWeek,
		SessionDurationMin: p.SessionDurationMin,
		GroupingLogic:      domain.GroupingLogic(p.GroupingLogic),
	}
	if s.FrequencyPerWeek < 1 || s.FrequencyPerWeek > 7 {
		s.FrequencyPerWeek = fallback.FrequencyPerWeek
	}
	if s.SessionDurationMin < 15 || s.SessionDurationMin > 240 {
		s.SessionDurationMin = fallback.SessionDurationMin
	}
	switch s.GroupingLogic {
	case domain.GroupBatchTasks, domain.GroupOnePerDay, domain.GroupMilestonePer:
	default:
		s.GroupingLogic = fallback.GroupingLogic
	}
	for _, name := range p.PreferredDays {
		if day, ok := parseWeekday(name); ok {
			s.PreferredDays = append(s.PreferredDays, day)
		}
	}
	if len(s.PreferredDays) == 0 {
		s.PreferredDays = fallback.PreferredDays
	}
	return s
}

var weekdayNames = map[string]time.Weekday{
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
	"sun": time.Sunday, "sunday": time.Sunday,
}

func parseWeekday(name string) (time.Weekday, bool) {
	day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	return day, ok
}
