package scheduler

import "github.com/GeekPO11/dlulu/internal/domain"

// defaultUnitMin is assumed for units with no explicit estimate.
const defaultUnitMin = 30

// SessionPlan is a proposed work session batching one or more execution
// units.
type SessionPlan struct {
	Units    []domain.ExecutionUnit
	TotalMin int
}

// GroupSessions batches execution units into sessions of at most
// targetMin minutes using a single-pass greedy packer in input order.
// A unit that would overflow a non-empty session closes it and starts
// the next one; the final non-empty session is always flushed. A unit
// larger than targetMin gets a session of its own. The packer does no
// rebalancing, so the trailing session may come in under target; that
// is accepted behavior, not a defect.
func GroupSessions(units []domain.ExecutionUnit, targetMin int) []SessionPlan {
	if targetMin <= 0 {
		targetMin = defaultUnitMin * 2
	}

	var sessions []SessionPlan
	var current SessionPlan
	for _, unit := range units {
		unitMin := domain.IntFromPtrWithDefault(defaultUnitMin, unit.EstimatedMin)
		if unitMin <= 0 {
			unitMin = defaultUnitMin
		}
		if len(current.Units) > 0 && current.TotalMin+unitMin > targetMin {
			sessions = append(sessions, current)
			current = SessionPlan{}
		}
		current.Units = append(current.Units, unit)
		current.TotalMin += unitMin
	}
	if len(current.Units) > 0 {
		sessions = append(sessions, current)
	}
	return sessions
}
