package scheduler

import (
	"time"

	"github.com/GeekPO11/dlulu/internal/domain"
)

// maxRepairProposals caps the alternatives offered for one conflict.
const maxRepairProposals = 3

// repairSearchDays bounds how far ahead repair looks for a free slot.
const repairSearchDays = 7

// ProposeAlternatives generates up to three alternative slots for a
// conflicting event, each preserving the original duration and passing
// the same block/overlap validation as master-plan placement. Candidates
// are tried mechanically: later the same day in hourly steps, then the
// original time on following days. Ranking and explanation of the
// proposals belong to the caller.
func ProposeAlternatives(event *domain.CalendarEvent, cons domain.TimeConstraints, existing []*domain.CalendarEvent) []Placement {
	duration := time.Duration(event.DurationMinutes()) * time.Minute
	if duration <= 0 {
		return nil
	}

	var proposals []Placement
	tryCandidate := func(start time.Time) {
		if len(proposals) >= maxRepairProposals {
			return
		}
		candidate := domain.CalendarEvent{
			StartAt:    start,
			EndAt:      start.Add(duration),
			EnergyCost: event.EnergyCost,
		}
		if !withinWakingWindow(&candidate, cons) {
			return
		}
		if ok, _ := ValidateSlot(&candidate, existing, cons, event.ID); ok {
			proposals = append(proposals, Placement{StartAt: candidate.StartAt, EndAt: candidate.EndAt})
		}
	}

	// Same day, hourly steps after the original slot.
	for start := event.StartAt.Add(time.Hour); start.Day() == event.StartAt.Day(); start = start.Add(time.Hour) {
		tryCandidate(start)
	}

	// Following days at the original time of day.
	for day := 1; day <= repairSearchDays; day++ {
		tryCandidate(event.StartAt.AddDate(0, 0, day))
	}
	return proposals
}

// withinWakingWindow applies the coarse sleep check used by session
// placement to repair candidates.
func withinWakingWindow(ev *domain.CalendarEvent, cons domain.TimeConstraints) bool {
	startHour := ev.StartAt.Hour()
	endHour := startHour + (ev.DurationMinutes()+59)/60
	return startHour >= cons.SleepEndHour && endHour <= cons.SleepStartHour
}
