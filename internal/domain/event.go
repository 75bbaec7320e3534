package domain

import "time"

// CalendarEvent is a concrete placed block of time. Events are never
// deleted by the scheduling core; status transitions are recorded instead.
type CalendarEvent struct {
	ID          string
	Title       string
	Description string
	StartAt     time.Time
	EndAt       time.Time
	Timezone    string // IANA name, e.g. "Europe/Berlin"

	GoalID      string
	PhaseID     string
	MilestoneID string

	Type            EventType
	EnergyCost      int
	Status          EventStatus
	RescheduleCount int
	AllDay          bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationMinutes returns the event's length in whole minutes,
// zero when the interval is degenerate.
func (e *CalendarEvent) DurationMinutes() int {
	if !e.EndAt.After(e.StartAt) {
		return 0
	}
	return int(e.EndAt.Sub(e.StartAt) / time.Minute)
}

// Overlaps reports whether two half-open intervals [StartAt, EndAt)
// intersect.
func (e *CalendarEvent) Overlaps(other *CalendarEvent) bool {
	return e.StartAt.Before(other.EndAt) && other.StartAt.Before(e.EndAt)
}

// OnDate reports whether the event starts on the given calendar date
// (compared in the event's own location).
func (e *CalendarEvent) OnDate(date time.Time) bool {
	y1, m1, d1 := e.StartAt.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
