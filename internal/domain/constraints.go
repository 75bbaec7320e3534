package domain

import "time"

// TimeBlock is a named recurring window of unavailable (or reserved) time,
// e.g. work hours or a standing commitment.
type TimeBlock struct {
	ID        string
	Label     string
	Days      []time.Weekday
	StartTime string // "HH:mm"
	EndTime   string // "HH:mm"
	Flexible  bool
}

// AppliesOn reports whether the block recurs on the given weekday.
func (b *TimeBlock) AppliesOn(day time.Weekday) bool {
	for _, d := range b.Days {
		if d == day {
			return true
		}
	}
	return false
}

// TimeException overrides the recurring pattern for a single date.
// Available=true frees time a recurring block would cover;
// Available=false blocks time even when no recurring block exists.
type TimeException struct {
	ID        string
	Date      string // "2006-01-02"
	Available bool
	StartTime string // "HH:mm"
	EndTime   string // "HH:mm"
	Reason    string
}

type TimeConstraints struct {
	SleepStartHour int // hour the user goes to sleep, e.g. 23
	SleepEndHour   int // hour the user wakes, e.g. 7
	PeakStartHour  int
	PeakEndHour    int
	Blocks         []TimeBlock
	Exceptions     []TimeException
}

// DefaultTimeConstraints returns the constraint set assumed when the user
// has not configured one: sleep 23:00-07:00, peak 09:00-12:00, no blocks.
func DefaultTimeConstraints() TimeConstraints {
	return TimeConstraints{
		SleepStartHour: 23,
		SleepEndHour:   7,
		PeakStartHour:  9,
		PeakEndHour:    12,
	}
}
