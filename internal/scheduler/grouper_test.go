package scheduler

import (
	"testing"

	"github.com/GeekPO11/dlulu/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unit(id string, estimatedMin *int) domain.ExecutionUnit {
	return domain.ExecutionUnit{ID: id, Title: id, EstimatedMin: estimatedMin}
}

func TestGroupSessions_PacksInInputOrder(t *testing.T) {
	units := []domain.ExecutionUnit{
		unit("a", intPtr(40)),
		unit("b", intPtr(40)),
		unit("c", intPtr(40)),
	}

	sessions := GroupSessions(units, 90)

	require.Len(t, sessions, 2)
	assert.Len(t, sessions[0].Units, 2)
	assert.Equal(t, 80, sessions[0].TotalMin)
	assert.Len(t, sessions[1].Units, 1)
	assert.Equal(t, 40, sessions[1].TotalMin)
}

func TestGroupSessions_DefaultsMissingEstimateTo30(t *testing.T) {
	sessions := GroupSessions([]domain.ExecutionUnit{unit("a", nil), unit("b", nil)}, 60)

	require.Len(t, sessions, 1)
	assert.Equal(t, 60, sessions[0].TotalMin)
}

func TestGroupSessions_OversizedUnitGetsOwnSession(t *testing.T) {
	units := []domain.ExecutionUnit{
		unit("small", intPtr(20)),
		unit("huge", intPtr(200)),
		unit("tail", intPtr(20)),
	}

	sessions := GroupSessions(units, 60)

	require.Len(t, sessions, 3)
	assert.Equal(t, "small", sessions[0].Units[0].ID)
	assert.Equal(t, "huge", sessions[1].Units[0].ID)
	assert.Equal(t, 200, sessions[1].TotalMin)
	assert.Equal(t, "tail", sessions[2].Units[0].ID)
}

func TestGroupSessions_FlushesTrailingSession(t *testing.T) {
	sessions := GroupSessions([]domain.ExecutionUnit{unit("only", intPtr(10))}, 120)

	require.Len(t, sessions, 1)
	assert.Equal(t, 10, sessions[0].TotalMin)
}

func TestGroupSessions_EmptyInput(t *testing.T) {
	assert.Empty(t, GroupSessions(nil, 60))
}
