package scheduler

import (
	"testing"

	"github.com/GeekPO11/dlulu/internal/domain"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestComputeDuration_DefaultsWhenEmpty(t *testing.T) {
	res := ComputeDuration(DurationInput{})

	assert.Equal(t, 45, res.FocusMin)
	assert.GreaterOrEqual(t, res.BufferMin, MinBufferMin)
	assert.Equal(t, res.FocusMin+res.BufferMin, res.RecommendedMin)
}

func TestComputeDuration_EstimateDrivesBase(t *testing.T) {
	small := ComputeDuration(DurationInput{EstimatedMin: intPtr(20)})
	large := ComputeDuration(DurationInput{EstimatedMin: intPtr(120)})

	assert.Less(t, small.FocusMin, large.FocusMin)
}

func TestComputeDuration_GoalSessionFallback(t *testing.T) {
	res := ComputeDuration(DurationInput{GoalSessionMin: intPtr(90)})
	assert.Equal(t, 90, res.FocusMin)
}

func TestComputeDuration_DifficultyDiminishesPastFour(t *testing.T) {
	base := DurationInput{EstimatedMin: intPtr(60)}

	d3 := base
	d3.Difficulty = intPtr(3)
	d4 := base
	d4.Difficulty = intPtr(4)
	d5 := base
	d5.Difficulty = intPtr(5)

	r3 := ComputeDuration(d3).FocusMin
	r4 := ComputeDuration(d4).FocusMin
	r5 := ComputeDuration(d5).FocusMin

	assert.Less(t, r3, r4)
	assert.LessOrEqual(t, r4, r5)
	// The step from 4 to 5 is smaller than from 3 to 4.
	assert.Less(t, r5-r4, r4-r3)
}

func TestComputeDuration_DeepWorkMinimum(t *testing.T) {
	res := ComputeDuration(DurationInput{
		EstimatedMin:  intPtr(15),
		CognitiveType: domain.CognitiveDeepWork,
	})
	assert.GreaterOrEqual(t, res.FocusMin, 45)

	admin := ComputeDuration(DurationInput{
		EstimatedMin:  intPtr(15),
		CognitiveType: domain.CognitiveAdmin,
	})
	assert.Less(t, admin.FocusMin, res.FocusMin)
}

func TestComputeDuration_SubTasksCapped(t *testing.T) {
	none := ComputeDuration(DurationInput{EstimatedMin: intPtr(60)})
	five := ComputeDuration(DurationInput{EstimatedMin: intPtr(60), SubTaskCount: 5})
	twenty := ComputeDuration(DurationInput{EstimatedMin: intPtr(60), SubTaskCount: 20})

	assert.Greater(t, five.FocusMin, none.FocusMin)
	assert.Equal(t, twenty.FocusMin, ComputeDuration(DurationInput{EstimatedMin: intPtr(60), SubTaskCount: 6}).FocusMin)
}

func TestComputeDuration_MaintenanceShort(t *testing.T) {
	res := ComputeDuration(DurationInput{
		EstimatedMin: intPtr(120),
		Archetype:    domain.ArchetypeMaintenance,
	})
	assert.LessOrEqual(t, res.FocusMin, 45)
}

func TestComputeDuration_DeepWorkProjectLengthens(t *testing.T) {
	plain := ComputeDuration(DurationInput{EstimatedMin: intPtr(60)})
	project := ComputeDuration(DurationInput{
		EstimatedMin: intPtr(60),
		Archetype:    domain.ArchetypeDeepWorkProject,
	})
	assert.GreaterOrEqual(t, project.FocusMin, plain.FocusMin)
}

func TestComputeDuration_FatigueShortens(t *testing.T) {
	fresh := ComputeDuration(DurationInput{EstimatedMin: intPtr(90)})
	tired := ComputeDuration(DurationInput{EstimatedMin: intPtr(90), SameDayLoadMin: 300})

	assert.Less(t, tired.FocusMin, fresh.FocusMin)
}
