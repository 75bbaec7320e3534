package scheduler

import (
	"math"

	"github.com/GeekPO11/dlulu/internal/domain"
)

// Duration bounds. Downstream calendar slotting assumes 5-minute
// granularity, so every returned value is rounded to a multiple of 5.
const (
	MinFocusMin       = 15
	MaxFocusMin       = 180
	MinBufferMin      = 5
	MaxBufferMin      = 45
	MinRecommendedMin = 20
	MaxRecommendedMin = 210

	defaultBaseFocusMin = 45
	maxDailyLoadMin     = 480
)

// DurationInput carries everything the model needs. All fields are
// optional; missing values degrade to documented defaults.
type DurationInput struct {
	EstimatedMin   *int
	Difficulty     *int // 1-5
	CognitiveType  domain.CognitiveType
	SubTaskCount   int
	EnergyLevel    domain.EnergyLevel
	SameDayLoadMin int
	CadencePerWeek *int
	Archetype      domain.Archetype
	GoalSessionMin *int // goal-level default used when EstimatedMin is absent
}

// DurationResult is the model's output. RecommendedMin = FocusMin + BufferMin,
// clamped independently.
type DurationResult struct {
	FocusMin       int
	BufferMin      int
	RecommendedMin int
}

// archetypeAdjusters maps each goal archetype to its duration handler.
// A single dispatch table keeps archetype behavior in one place as the
// set grows.
var archetypeAdjusters = map[domain.Archetype]func(float64) float64{
	domain.ArchetypeHabitBuilding: func(min float64) float64 {
		// Habits favor short, repeatable sessions.
		return math.Min(min*0.9, 60)
	},
	domain.ArchetypeDeepWorkProject: func(min float64) float64 {
		return min * 1.1
	},
	domain.ArchetypeSkillAcquisition: func(min float64) float64 {
		return min
	},
	domain.ArchetypeMaintenance: func(min float64) float64 {
		// Maintenance work stays low-friction.
		return math.Min(min*0.8, 45)
	},
}

var difficultyFactor = map[int]float64{
	1: 0.9,
	2: 1.0,
	3: 1.15,
	4: 1.3,
	5: 1.35, // diminishing past 4
}

// ComputeDuration recommends focus and buffer minutes for one execution
// unit. Pure and deterministic; never returns values outside the stated
// bounds and never fails.
func ComputeDuration(input DurationInput) DurationResult {
	base := float64(domain.IntFromPtrWithDefault(defaultBaseFocusMin, input.EstimatedMin, input.GoalSessionMin))
	if base <= 0 {
		base = defaultBaseFocusMin
	}
	focus := base

	if input.Difficulty != nil {
		if f, ok := difficultyFactor[*input.Difficulty]; ok {
			focus *= f
		}
	}

	switch input.CognitiveType {
	case domain.CognitiveDeepWork:
		focus = math.Max(focus*1.2, 45)
	case domain.CognitiveCreative:
		focus = math.Max(focus*1.15, 45)
	case domain.CognitiveLearning:
		focus = math.Max(focus*1.05, 30)
	case domain.CognitiveShallowWork:
		focus *= 0.9
	case domain.CognitiveAdmin:
		focus *= 0.8
	}

	// More subtasks mean more context switching; modest, capped increase.
	focus += math.Min(float64(input.SubTaskCount)*5, 25)

	switch input.EnergyLevel {
	case domain.EnergyHighOctane:
		focus *= 1.15
	case domain.EnergyRecovery:
		focus *= 0.75
	}

	// Fatigue: time already scheduled today shortens what remains.
	load := math.Min(math.Max(float64(input.SameDayLoadMin), 0), maxDailyLoadMin)
	focus *= 1 - 0.4*load/maxDailyLoadMin

	if input.CadencePerWeek != nil {
		switch {
		case *input.CadencePerWeek >= 5:
			focus *= 0.9
		case *input.CadencePerWeek > 0 && *input.CadencePerWeek <= 2:
			focus *= 1.1
		}
	}

	if adjust, ok := archetypeAdjusters[input.Archetype]; ok {
		focus = adjust(focus)
	}

	// Bounds are multiples of 5, so rounding after clamping cannot escape.
	focusMin := roundTo5(clampInt(int(math.Round(focus)), MinFocusMin, MaxFocusMin))

	buffer := float64(focusMin)*0.15 + float64(input.SubTaskCount)*2
	bufferMin := roundTo5(clampInt(int(math.Round(buffer)), MinBufferMin, MaxBufferMin))

	return DurationResult{
		FocusMin:       focusMin,
		BufferMin:      bufferMin,
		RecommendedMin: clampInt(focusMin+bufferMin, MinRecommendedMin, MaxRecommendedMin),
	}
}

func clampInt(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// roundTo5 rounds to the nearest multiple of 5, halves up.
func roundTo5(min int) int {
	return int(math.Round(float64(min)/5)) * 5
}
