package domain

// ExecutionUnit is a flattened, leaf-level schedulable item derived from
// a Task (or, in the master-plan fallback policy, a Milestone).
type ExecutionUnit struct {
	ID            string
	GoalID        string
	PhaseID       string
	MilestoneID   string
	Title         string
	IsCompleted   bool
	Strikethrough bool
	EstimatedMin  *int
	Difficulty    *int
	CognitiveType CognitiveType
	SubTaskCount  int
	Order         int
}
