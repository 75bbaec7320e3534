package repository

import (
	"context"
	"time"

	"github.com/GeekPO11/dlulu/internal/domain"
)

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Goal, error)
	Update(ctx context.Context, g *domain.Goal) error
	Archive(ctx context.Context, id string) error
	SetMilestoneCompleted(ctx context.Context, milestoneID string, completed bool) error
	SetTaskCompleted(ctx context.Context, taskID string, completed bool) error
}

type EventRepo interface {
	Create(ctx context.Context, e *domain.CalendarEvent) error
	CreateBatch(ctx context.Context, events []domain.CalendarEvent) error
	GetByID(ctx context.Context, id string) (*domain.CalendarEvent, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.CalendarEvent, error)
	ListByGoal(ctx context.Context, goalID string) ([]*domain.CalendarEvent, error)
	Reschedule(ctx context.Context, id string, startAt, endAt time.Time) error
	MarkStatus(ctx context.Context, id string, status domain.EventStatus) error
}

type UserProfileRepo interface {
	// Get returns the stored profile with its time constraints loaded,
	// inserting the default profile on first use.
	Get(ctx context.Context) (*domain.UserProfile, error)
	Save(ctx context.Context, p *domain.UserProfile) error
	AddTimeBlock(ctx context.Context, b *domain.TimeBlock) error
	AddTimeException(ctx context.Context, ex *domain.TimeException) error
}
