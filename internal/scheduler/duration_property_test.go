package scheduler

import (
	"math/rand"
	"testing"

	"github.com/GeekPO11/dlulu/internal/domain"
	"github.com/stretchr/testify/assert"
)

var (
	allCognitive = []domain.CognitiveType{
		"", domain.CognitiveDeepWork, domain.CognitiveShallowWork,
		domain.CognitiveLearning, domain.CognitiveCreative, domain.CognitiveAdmin,
	}
	allEnergy = []domain.EnergyLevel{
		"", domain.EnergyHighOctane, domain.EnergyBalanced, domain.EnergyRecovery,
	}
	allArchetypes = []domain.Archetype{
		"", domain.ArchetypeHabitBuilding, domain.ArchetypeDeepWorkProject,
		domain.ArchetypeSkillAcquisition, domain.ArchetypeMaintenance,
	}
)

func randomDurationInput(rng *rand.Rand) DurationInput {
	input := DurationInput{
		CognitiveType:  allCognitive[rng.Intn(len(allCognitive))],
		EnergyLevel:    allEnergy[rng.Intn(len(allEnergy))],
		Archetype:      allArchetypes[rng.Intn(len(allArchetypes))],
		SubTaskCount:   rng.Intn(12),
		SameDayLoadMin: rng.Intn(600),
	}
	if rng.Intn(2) == 0 {
		est := rng.Intn(300) + 1
		input.EstimatedMin = &est
	}
	if rng.Intn(2) == 0 {
		diff := rng.Intn(5) + 1
		input.Difficulty = &diff
	}
	if rng.Intn(2) == 0 {
		cad := rng.Intn(7) + 1
		input.CadencePerWeek = &cad
	}
	if rng.Intn(2) == 0 {
		dur := rng.Intn(180) + 15
		input.GoalSessionMin = &dur
	}
	return input
}

// TestComputeDuration_Invariants_BoundsAndGranularity property-tests the
// published bounds: focus in [15,180], buffer in [5,45], recommendation
// in [20,210], everything a multiple of 5.
func TestComputeDuration_Invariants_BoundsAndGranularity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 500; trial++ {
		input := randomDurationInput(rng)
		res := ComputeDuration(input)

		assert.GreaterOrEqual(t, res.FocusMin, MinFocusMin, "trial %d: %+v", trial, input)
		assert.LessOrEqual(t, res.FocusMin, MaxFocusMin, "trial %d", trial)
		assert.GreaterOrEqual(t, res.BufferMin, MinBufferMin, "trial %d", trial)
		assert.LessOrEqual(t, res.BufferMin, MaxBufferMin, "trial %d", trial)
		assert.GreaterOrEqual(t, res.RecommendedMin, MinRecommendedMin, "trial %d", trial)
		assert.LessOrEqual(t, res.RecommendedMin, MaxRecommendedMin, "trial %d", trial)

		assert.Zero(t, res.FocusMin%5, "trial %d: focus %d not a multiple of 5", trial, res.FocusMin)
		assert.Zero(t, res.BufferMin%5, "trial %d: buffer %d not a multiple of 5", trial, res.BufferMin)
		assert.Zero(t, res.RecommendedMin%5, "trial %d: recommendation %d not a multiple of 5", trial, res.RecommendedMin)
	}
}

// TestComputeDuration_Invariant_LoadNeverLengthens verifies that adding
// same-day load, all else fixed, never increases the focus duration.
func TestComputeDuration_Invariant_LoadNeverLengthens(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 300; trial++ {
		input := randomDurationInput(rng)
		input.SameDayLoadMin = rng.Intn(300)
		rested := ComputeDuration(input)

		loaded := input
		loaded.SameDayLoadMin = input.SameDayLoadMin + rng.Intn(300) + 1
		after := ComputeDuration(loaded)

		assert.LessOrEqual(t, after.FocusMin, rested.FocusMin,
			"trial %d: load %d->%d grew focus %d->%d", trial,
			input.SameDayLoadMin, loaded.SameDayLoadMin, rested.FocusMin, after.FocusMin)
	}
}

// TestComputeDuration_Invariant_EnergyOrdering verifies high_octane
// recommends at least as much time as recovery for identical inputs.
func TestComputeDuration_Invariant_EnergyOrdering(t *testing.T) {
	rng := rand.New(rand.NewSource(13))

	for trial := 0; trial < 300; trial++ {
		input := randomDurationInput(rng)

		input.EnergyLevel = domain.EnergyHighOctane
		high := ComputeDuration(input)
		input.EnergyLevel = domain.EnergyRecovery
		low := ComputeDuration(input)

		assert.GreaterOrEqual(t, high.RecommendedMin, low.RecommendedMin, "trial %d", trial)
	}
}

func TestComputeDuration_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for trial := 0; trial < 50; trial++ {
		input := randomDurationInput(rng)
		assert.Equal(t, ComputeDuration(input), ComputeDuration(input))
	}
}
