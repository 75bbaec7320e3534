package service

import (
	"time"

	"github.com/GeekPO11/dlulu/internal/domain"
	"github.com/GeekPO11/dlulu/internal/scheduler"
)

// resolveNow pins time for tests while defaulting to the wall clock.
func resolveNow(override *time.Time) time.Time {
	if override != nil {
		return *override
	}
	return time.Now().UTC()
}

// dayBounds returns [midnight, next midnight) for t in t's location.
func dayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// toTodayEvents converts stored events into the selector's wire shape.
func toTodayEvents(events []*domain.CalendarEvent) []scheduler.TodayEvent {
	out := make([]scheduler.TodayEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, scheduler.TodayEvent{
			StartAt: ev.StartAt.Format(time.RFC3339),
			EndAt:   ev.EndAt.Format(time.RFC3339),
		})
	}
	return out
}

func activeGoals(goals []*domain.Goal) []*domain.Goal {
	var out []*domain.Goal
	for _, g := range goals {
		if g.Status == domain.GoalActive {
			out = append(out, g)
		}
	}
	return out
}

func sessionTitles(plan scheduler.SessionPlan) []string {
	titles := make([]string, 0, len(plan.Units))
	for _, u := range plan.Units {
		titles = append(titles, u.Title)
	}
	return titles
}
