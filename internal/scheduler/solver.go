package scheduler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/GeekPO11/dlulu/internal/domain"
)

// maxPlacementAttempts is the day-by-day retry budget before a session
// is reported infeasible.
const maxPlacementAttempts = 14

// Placement is a resolved slot for one session.
type Placement struct {
	StartAt time.Time
	EndAt   time.Time
}

// PlaceSession finds the first day from startFrom whose preferred-time
// slot fits entirely inside the user's waking window. This is the coarse
// day/night path: it checks the sleep window only, by whole hours;
// callers needing block and overlap awareness use ValidateSlot. Returns
// ok=false after the retry budget is exhausted so callers can report the
// session rather than lose it.
func PlaceSession(durationMin int, profile domain.UserProfile, startFrom time.Time) (Placement, bool) {
	startHour := 14
	if profile.PreferredFocusTime == domain.TimeMorning {
		startHour = 9
	}
	endHour := startHour + (durationMin+59)/60 // round up for the coarse check

	cons := profile.Constraints
	candidate := startFrom
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		if startHour >= cons.SleepEndHour && endHour <= cons.SleepStartHour {
			y, m, d := candidate.Date()
			start := time.Date(y, m, d, startHour, 0, 0, 0, candidate.Location())
			return Placement{
				StartAt: start,
				EndAt:   start.Add(time.Duration(durationMin) * time.Minute),
			}, true
		}
		candidate = candidate.AddDate(0, 0, 1)
	}
	return Placement{}, false
}

// ValidateSlot is the richer constraint predicate used by master-plan
// expansion and conflict repair. A candidate is valid iff its
// [start, end) interval intersects no existing event on the same date
// and no blocked interval for that date. ignoreEventID excludes one
// event from the overlap check (the event being moved).
func ValidateSlot(candidate *domain.CalendarEvent, existing []*domain.CalendarEvent, cons domain.TimeConstraints, ignoreEventID string) (bool, string) {
	for _, ev := range existing {
		if ev.ID == ignoreEventID {
			continue
		}
		if candidate.Overlaps(ev) {
			return false, fmt.Sprintf("overlaps %q (%s)", ev.Title, ev.StartAt.Format("15:04"))
		}
	}

	candStart := minuteOfDay(candidate.StartAt)
	candEnd := candStart + candidate.DurationMinutes()
	for _, iv := range blockedIntervals(cons, candidate.StartAt) {
		if candStart < iv.end && iv.start < candEnd {
			return false, fmt.Sprintf("falls inside blocked time %q", iv.label)
		}
	}
	return true, ""
}

// minuteInterval is a half-open [start, end) window in minutes from
// midnight.
type minuteInterval struct {
	start int
	end   int
	label string
}

// blockedIntervals resolves the blocked windows for one date: recurring
// blocks active on that weekday, minus availability exceptions for the
// date, plus blocking exceptions for the date. An exception overrides the
// recurring pattern for its date only.
func blockedIntervals(cons domain.TimeConstraints, date time.Time) []minuteInterval {
	dateStr := date.Format("2006-01-02")

	var available []minuteInterval
	var blocked []minuteInterval
	for _, ex := range cons.Exceptions {
		if ex.Date != dateStr {
			continue
		}
		iv, ok := parseInterval(ex.StartTime, ex.EndTime, domain.CoalesceStr(ex.Reason, "exception"))
		if !ok {
			continue
		}
		if ex.Available {
			available = append(available, iv)
		} else {
			blocked = append(blocked, iv)
		}
	}

	for _, block := range cons.Blocks {
		if !block.AppliesOn(date.Weekday()) {
			continue
		}
		iv, ok := parseInterval(block.StartTime, block.EndTime, block.Label)
		if !ok {
			continue
		}
		blocked = append(blocked, subtractIntervals(iv, available)...)
	}
	return blocked
}

// subtractIntervals removes the free windows from a blocked interval,
// returning the remaining blocked pieces.
func subtractIntervals(iv minuteInterval, free []minuteInterval) []minuteInterval {
	remaining := []minuteInterval{iv}
	for _, f := range free {
		var next []minuteInterval
		for _, r := range remaining {
			if f.end <= r.start || r.end <= f.start {
				next = append(next, r)
				continue
			}
			if r.start < f.start {
				next = append(next, minuteInterval{start: r.start, end: f.start, label: r.label})
			}
			if f.end < r.end {
				next = append(next, minuteInterval{start: f.end, end: r.end, label: r.label})
			}
		}
		remaining = next
	}
	return remaining
}

func parseInterval(startStr, endStr, label string) (minuteInterval, bool) {
	start, ok1 := ParseClock(startStr)
	end, ok2 := ParseClock(endStr)
	if !ok1 || !ok2 || end <= start {
		return minuteInterval{}, false
	}
	return minuteInterval{start: start, end: end, label: label}, true
}

// ParseClock parses an "HH:mm" string into minutes from midnight.
func ParseClock(s string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
