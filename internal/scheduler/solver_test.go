package scheduler

import (
	"testing"
	"time"

	"github.com/GeekPO11/dlulu/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solverProfile(focusTime domain.TimeOfDay) domain.UserProfile {
	p := domain.DefaultUserProfile()
	p.PreferredFocusTime = focusTime
	return p
}

func TestPlaceSession_MorningPrefersNineOClock(t *testing.T) {
	from := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	placement, ok := PlaceSession(60, solverProfile(domain.TimeMorning), from)

	require.True(t, ok)
	assert.Equal(t, 9, placement.StartAt.Hour())
	assert.Equal(t, from.Day(), placement.StartAt.Day())
	assert.Equal(t, 60, int(placement.EndAt.Sub(placement.StartAt)/time.Minute))
}

func TestPlaceSession_OtherwiseAfternoon(t *testing.T) {
	from := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	placement, ok := PlaceSession(45, solverProfile(domain.TimeEvening), from)

	require.True(t, ok)
	assert.Equal(t, 14, placement.StartAt.Hour())
}

func TestPlaceSession_NeverViolatesSleepWindow(t *testing.T) {
	from := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	for _, focus := range []domain.TimeOfDay{domain.TimeMorning, domain.TimeAfternoon, domain.TimeEvening} {
		for _, duration := range []int{15, 60, 120, 180} {
			profile := solverProfile(focus)
			placement, ok := PlaceSession(duration, profile, from)
			if !ok {
				continue
			}
			startHour := placement.StartAt.Hour()
			endHour := startHour + (duration+59)/60
			assert.GreaterOrEqual(t, startHour, profile.Constraints.SleepEndHour)
			assert.LessOrEqual(t, endHour, profile.Constraints.SleepStartHour)
		}
	}
}

func TestPlaceSession_InfeasibleWhenWakingWindowTooSmall(t *testing.T) {
	profile := solverProfile(domain.TimeMorning)
	profile.Constraints.SleepEndHour = 9
	profile.Constraints.SleepStartHour = 10

	_, ok := PlaceSession(120, profile, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok, "a 2h session cannot fit a 1h waking window")
}

func event(id string, start time.Time, durationMin int) *domain.CalendarEvent {
	return &domain.CalendarEvent{
		ID:      id,
		Title:   id,
		StartAt: start,
		EndAt:   start.Add(time.Duration(durationMin) * time.Minute),
	}
}

func TestValidateSlot_RejectsOverlappingEvent(t *testing.T) {
	day := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC) // a Wednesday
	existing := []*domain.CalendarEvent{event("busy", day, 60)}

	candidate := event("new", day.Add(30*time.Minute), 60)
	ok, reason := ValidateSlot(candidate, existing, domain.DefaultTimeConstraints(), "")

	assert.False(t, ok)
	assert.Contains(t, reason, "busy")
}

func TestValidateSlot_IgnoresTheEventBeingMoved(t *testing.T) {
	day := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	existing := []*domain.CalendarEvent{event("self", day, 60)}

	ok, _ := ValidateSlot(event("self", day, 60), existing, domain.DefaultTimeConstraints(), "self")
	assert.True(t, ok)
}

func TestValidateSlot_RejectsRecurringBlock(t *testing.T) {
	cons := domain.DefaultTimeConstraints()
	cons.Blocks = []domain.TimeBlock{{
		Label:     "work",
		Days:      []time.Weekday{time.Wednesday},
		StartTime: "09:00",
		EndTime:   "17:00",
	}}

	wednesday := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	ok, reason := ValidateSlot(event("e", wednesday, 60), nil, cons, "")
	assert.False(t, ok)
	assert.Contains(t, reason, "work")

	thursday := wednesday.AddDate(0, 0, 1)
	ok, _ = ValidateSlot(event("e", thursday, 60), nil, cons, "")
	assert.True(t, ok, "block only recurs on Wednesday")
}

func TestValidateSlot_AvailabilityExceptionOverridesBlock(t *testing.T) {
	cons := domain.DefaultTimeConstraints()
	cons.Blocks = []domain.TimeBlock{{
		Label:     "work",
		Days:      []time.Weekday{time.Wednesday},
		StartTime: "09:00",
		EndTime:   "17:00",
	}}
	cons.Exceptions = []domain.TimeException{{
		Date:      "2026-03-04",
		Available: true,
		StartTime: "10:00",
		EndTime:   "12:00",
		Reason:    "day off",
	}}

	wednesday := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	ok, _ := ValidateSlot(event("e", wednesday, 60), nil, cons, "")
	assert.True(t, ok, "exception frees 10:00-12:00 on that date")

	// Outside the freed window the block still applies.
	ok, _ = ValidateSlot(event("e", wednesday.Add(4*time.Hour), 60), nil, cons, "")
	assert.False(t, ok)

	// Other dates keep the recurring pattern.
	nextWednesday := wednesday.AddDate(0, 0, 7)
	ok, _ = ValidateSlot(event("e", nextWednesday, 60), nil, cons, "")
	assert.False(t, ok)
}

func TestValidateSlot_BlockingExceptionWithoutRecurringBlock(t *testing.T) {
	cons := domain.DefaultTimeConstraints()
	cons.Exceptions = []domain.TimeException{{
		Date:      "2026-03-04",
		Available: false,
		StartTime: "10:00",
		EndTime:   "12:00",
		Reason:    "dentist",
	}}

	wednesday := time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)
	ok, reason := ValidateSlot(event("e", wednesday, 30), nil, cons, "")
	assert.False(t, ok)
	assert.Contains(t, reason, "dentist")
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		wantMin int
		wantOK  bool
	}{
		{"09:00", 540, true},
		{"23:59", 1439, true},
		{"0:05", 5, true},
		{"24:00", 0, false},
		{"nope", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		got, ok := ParseClock(tc.in)
		assert.Equal(t, tc.wantOK, ok, "input %q", tc.in)
		if ok {
			assert.Equal(t, tc.wantMin, got, "input %q", tc.in)
		}
	}
}
