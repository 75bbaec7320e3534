package scheduler

import (
	"time"

	"github.com/GeekPO11/dlulu/internal/domain"
)

// WeeklyTaskTemplate is one recurring session in a phase's weekly
// pattern. DayOffset counts from Monday (0) through Sunday (6).
type WeeklyTaskTemplate struct {
	Title      string
	DayOffset  int
	StartTime  string // "HH:mm"
	EndTime    string // "HH:mm"
	EnergyCost int
}

// MilestoneDeadline marks the week a milestone should be done by.
type MilestoneDeadline struct {
	MilestoneID string
	Title       string
	WeekNumber  int
}

// PhaseSchedule is the declarative recurrence plan for one goal-phase,
// valid for weeks [StartWeek, EndWeek] inclusive (1-based from the plan's
// start date).
type PhaseSchedule struct {
	GoalID     string
	PhaseID    string
	PhaseTitle string
	StartWeek  int
	EndWeek    int
	Templates  []WeeklyTaskTemplate
	Deadlines  []MilestoneDeadline
}

// MasterPlan is the full multi-week recurrence plan across goals.
type MasterPlan struct {
	PhaseSchedules []PhaseSchedule
}

// IDGenerator supplies event identifiers; injected so expansion stays
// deterministic under test.
type IDGenerator func() string

// ExpandMasterPlan turns the declarative weekly plan into dated calendar
// events. For each phase schedule it emits one goal-session event per
// (week, template) pair and one all-day milestone checkpoint, dated the
// Friday of its week, per deadline in range. A phase spanning weeks
// [s, e] with n templates therefore yields exactly (e-s+1)*n session
// events.
func ExpandMasterPlan(plan MasterPlan, startDate time.Time, newID IDGenerator) []domain.CalendarEvent {
	monday := WeekStart(startDate)

	var events []domain.CalendarEvent
	for _, ps := range plan.PhaseSchedules {
		if ps.EndWeek < ps.StartWeek {
			continue
		}
		for week := ps.StartWeek; week <= ps.EndWeek; week++ {
			weekMonday := monday.AddDate(0, 0, 7*(week-1))

			for _, tpl := range ps.Templates {
				startMin, ok1 := ParseClock(tpl.StartTime)
				endMin, ok2 := ParseClock(tpl.EndTime)
				if !ok1 {
					startMin = 9 * 60
				}
				if !ok2 || endMin <= startMin {
					endMin = startMin + 60
				}
				day := weekMonday.AddDate(0, 0, clampInt(tpl.DayOffset, 0, 6))
				start := day.Add(time.Duration(startMin) * time.Minute)
				events = append(events, domain.CalendarEvent{
					ID:         newID(),
					Title:      domain.CoalesceStr(tpl.Title, ps.PhaseTitle),
					StartAt:    start,
					EndAt:      day.Add(time.Duration(endMin) * time.Minute),
					Timezone:   startDate.Location().String(),
					GoalID:     ps.GoalID,
					PhaseID:    ps.PhaseID,
					Type:       domain.EventGoalSession,
					EnergyCost: tpl.EnergyCost,
					Status:     domain.EventScheduled,
				})
			}

			for _, dl := range ps.Deadlines {
				if dl.WeekNumber != week {
					continue
				}
				friday := weekMonday.AddDate(0, 0, 4)
				events = append(events, domain.CalendarEvent{
					ID:          newID(),
					Title:       "Checkpoint: " + dl.Title,
					StartAt:     friday,
					EndAt:       friday.AddDate(0, 0, 1),
					Timezone:    startDate.Location().String(),
					GoalID:      ps.GoalID,
					PhaseID:     ps.PhaseID,
					MilestoneID: dl.MilestoneID,
					Type:        domain.EventMilestoneDeadline,
					Status:      domain.EventScheduled,
					AllDay:      true,
				})
			}
		}
	}
	return events
}

// WeekStart returns midnight on the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	offset := (int(midnight.Weekday()) + 6) % 7 // Monday = 0
	return midnight.AddDate(0, 0, -offset)
}
