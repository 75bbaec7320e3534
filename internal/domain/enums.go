package domain

type GoalStatus string

const (
	GoalActive   GoalStatus = "active"
	GoalPaused   GoalStatus = "paused"
	GoalDone     GoalStatus = "done"
	GoalArchived GoalStatus = "archived"
)

type PhaseStatus string

const (
	PhasePending   PhaseStatus = "pending"
	PhaseActive    PhaseStatus = "active"
	PhaseCompleted PhaseStatus = "completed"
	PhaseAbandoned PhaseStatus = "abandoned"
)

type Archetype string

const (
	ArchetypeHabitBuilding    Archetype = "HABIT_BUILDING"
	ArchetypeDeepWorkProject  Archetype = "DEEP_WORK_PROJECT"
	ArchetypeSkillAcquisition Archetype = "SKILL_ACQUISITION"
	ArchetypeMaintenance      Archetype = "MAINTENANCE"
)

// ValidArchetypes is the canonical set of accepted archetype strings.
var ValidArchetypes = map[string]bool{
	"HABIT_BUILDING": true, "DEEP_WORK_PROJECT": true,
	"SKILL_ACQUISITION": true, "MAINTENANCE": true,
}

type CognitiveType string

const (
	CognitiveDeepWork    CognitiveType = "deep_work"
	CognitiveShallowWork CognitiveType = "shallow_work"
	CognitiveLearning    CognitiveType = "learning"
	CognitiveCreative    CognitiveType = "creative"
	CognitiveAdmin       CognitiveType = "admin"
)

type EnergyLevel string

const (
	EnergyHighOctane EnergyLevel = "high_octane"
	EnergyBalanced   EnergyLevel = "balanced"
	EnergyRecovery   EnergyLevel = "recovery"
)

type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
)

type EventType string

const (
	EventGoalSession       EventType = "goal_session"
	EventMilestoneDeadline EventType = "milestone_deadline"
)

type EventStatus string

const (
	EventScheduled   EventStatus = "scheduled"
	EventRescheduled EventStatus = "rescheduled"
	EventSkipped     EventStatus = "skipped"
	EventCompleted   EventStatus = "completed"
)

type GroupingLogic string

const (
	GroupBatchTasks   GroupingLogic = "BATCH_TASKS"
	GroupOnePerDay    GroupingLogic = "ONE_PER_DAY"
	GroupMilestonePer GroupingLogic = "MILESTONE_PER_SESSION"
)

type SuggestionPriority string

const (
	PriorityHigh   SuggestionPriority = "high"
	PriorityMedium SuggestionPriority = "medium"
	PriorityLow    SuggestionPriority = "low"
)
