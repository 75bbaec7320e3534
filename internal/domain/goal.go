package domain

import "time"

type Goal struct {
	ID                string
	Title             string
	Status            GoalStatus
	Phases            []Phase
	CurrentPhaseIndex int
	CadencePerWeek    int
	SessionDurationMin int
	PreferredTimeOfDay TimeOfDay
	EnergyCost        int // 1-5
	Archetype         Archetype
	ProgressPct       float64
	ArchivedAt        *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ActivePhaseIndex returns CurrentPhaseIndex clamped into [0, len(Phases)-1].
// Upstream data drift can leave the pointer out of range; it is clamped
// rather than rejected.
func (g *Goal) ActivePhaseIndex() int {
	if len(g.Phases) == 0 {
		return 0
	}
	idx := g.CurrentPhaseIndex
	if idx < 0 {
		return 0
	}
	if idx >= len(g.Phases) {
		return len(g.Phases) - 1
	}
	return idx
}

// ActivePhase returns the phase the goal's pointer currently targets,
// or nil when the goal has no phases.
func (g *Goal) ActivePhase() *Phase {
	if len(g.Phases) == 0 {
		return nil
	}
	return &g.Phases[g.ActivePhaseIndex()]
}

type Phase struct {
	ID         string
	GoalID     string
	Title      string
	Status     PhaseStatus
	StartWeek  int
	EndWeek    int
	Milestones []Milestone
	OrderIndex int
}

type Milestone struct {
	ID          string
	PhaseID     string
	Title       string
	IsCompleted bool
	Order       int
	Tasks       []Task
}

type Task struct {
	ID            string
	MilestoneID   string
	Title         string
	IsCompleted   bool
	Strikethrough bool
	EstimatedMin  *int
	Difficulty    *int // 1-5
	CognitiveType CognitiveType
	Order         int
	SubTasks      []SubTask
}

// Schedulable reports whether the task itself can be scheduled.
// Ancestor completion is checked by the flattener, not here.
func (t *Task) Schedulable() bool {
	return !t.IsCompleted && !t.Strikethrough
}

type SubTask struct {
	ID            string
	TaskID        string
	Title         string
	IsCompleted   bool
	Strikethrough bool
	Order         int
}
