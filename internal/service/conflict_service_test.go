package service

import (
	"context"
	"testing"
	"time"

	"github.com/GeekPO11/dlulu/internal/app"
	"github.com/GeekPO11/dlulu/internal/repository"
	"github.com/GeekPO11/dlulu/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConflictFixture(t *testing.T) (app.ConflictUseCase, repository.EventRepo) {
	t.Helper()
	db := testutil.NewTestDB(t)
	events := repository.NewSQLiteEventRepo(db)
	profiles := repository.NewSQLiteUserProfileRepo(db)
	return NewConflictService(events, profiles), events
}

func TestConflictService_EventNotFound(t *testing.T) {
	svc, _ := newConflictFixture(t)

	_, err := svc.Propose(context.Background(), app.ConflictRequest{EventID: "missing"})
	var appErr *app.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, app.ErrEventNotFound, appErr.Code)
}

func TestConflictService_ProposalsAvoidTheClash(t *testing.T) {
	svc, events := newConflictFixture(t)
	ctx := context.Background()

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	conflicted := testutil.NewTestEvent("Double booked", start, 60)
	blocker := testutil.NewTestEvent("Meeting", start, 60)
	require.NoError(t, events.Create(ctx, conflicted))
	require.NoError(t, events.Create(ctx, blocker))

	resp, err := svc.Propose(ctx, app.ConflictRequest{EventID: conflicted.ID, Reason: "double booking"})
	require.NoError(t, err)

	assert.Equal(t, "double booking", resp.Reason)
	require.NotEmpty(t, resp.Proposals)
	assert.LessOrEqual(t, len(resp.Proposals), 3)

	for _, p := range resp.Proposals {
		assert.Equal(t, 60*time.Minute, p.EndAt.Sub(p.StartAt), "duration preserved")
		overlapsBlocker := p.StartAt.Before(blocker.EndAt) && blocker.StartAt.Before(p.EndAt)
		assert.False(t, overlapsBlocker, "proposal %v still clashes", p.StartAt)
	}
}
