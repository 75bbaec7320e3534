package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/GeekPO11/dlulu/internal/domain"
)

// SQLiteEventRepo implements EventRepo over a SQLite database.
type SQLiteEventRepo struct {
	db *sql.DB
}

func NewSQLiteEventRepo(db *sql.DB) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: db}
}

const eventColumns = `id, title, description, start_at, end_at, timezone,
	goal_id, phase_id, milestone_id, event_type, energy_cost, status,
	reschedule_count, all_day, created_at, updated_at`

func (r *SQLiteEventRepo) Create(ctx context.Context, e *domain.CalendarEvent) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO calendar_events (`+eventColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.Description,
		utcString(e.StartAt), utcString(e.EndAt), e.Timezone,
		e.GoalID, e.PhaseID, e.MilestoneID,
		string(e.Type), e.EnergyCost, string(e.Status),
		e.RescheduleCount, boolToInt(e.AllDay),
		utcString(e.CreatedAt), utcString(e.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) CreateBatch(ctx context.Context, events []domain.CalendarEvent) error {
	if len(events) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	for i := range events {
		e := &events[i]
		_, err = tx.ExecContext(ctx, `INSERT INTO calendar_events (`+eventColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Title, e.Description,
			utcString(e.StartAt), utcString(e.EndAt), e.Timezone,
			e.GoalID, e.PhaseID, e.MilestoneID,
			string(e.Type), e.EnergyCost, string(e.Status),
			e.RescheduleCount, boolToInt(e.AllDay),
			utcString(e.CreatedAt), utcString(e.UpdatedAt),
		)
		if err != nil {
			return fmt.Errorf("inserting event %q: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing events: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLiteEventRepo) GetByID(ctx context.Context, id string) (*domain.CalendarEvent, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+eventColumns+` FROM calendar_events WHERE id = ?`, id)
	return scanEvent(row)
}

func (r *SQLiteEventRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.CalendarEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM calendar_events
		 WHERE start_at < ? AND end_at > ? ORDER BY start_at`,
		utcString(to), utcString(from))
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *SQLiteEventRepo) ListByGoal(ctx context.Context, goalID string) ([]*domain.CalendarEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM calendar_events WHERE goal_id = ? ORDER BY start_at`, goalID)
	if err != nil {
		return nil, fmt.Errorf("listing goal events: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *SQLiteEventRepo) Reschedule(ctx context.Context, id string, startAt, endAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE calendar_events
		SET start_at = ?, end_at = ?, status = 'rescheduled',
		    reschedule_count = reschedule_count + 1, updated_at = ?
		WHERE id = ?`,
		utcString(startAt), utcString(endAt), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("rescheduling event: %w", err)
	}
	return requireRow(res, "event")
}

func (r *SQLiteEventRepo) MarkStatus(ctx context.Context, id string, status domain.EventStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE calendar_events SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating event status: %w", err)
	}
	return requireRow(res, "event")
}

func requireRow(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s not found", what)
	}
	return nil
}

func collectEvents(rows *sql.Rows) ([]*domain.CalendarEvent, error) {
	var events []*domain.CalendarEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}

func scanEvent(row rowScanner) (*domain.CalendarEvent, error) {
	var e domain.CalendarEvent
	var startAt, endAt, eventType, status, createdAt, updatedAt string
	var allDay int

	err := row.Scan(&e.ID, &e.Title, &e.Description, &startAt, &endAt, &e.Timezone,
		&e.GoalID, &e.PhaseID, &e.MilestoneID, &eventType, &e.EnergyCost, &status,
		&e.RescheduleCount, &allDay, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("event not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning event: %w", err)
	}

	e.Type = domain.EventType(eventType)
	e.Status = domain.EventStatus(status)
	e.AllDay = intToBool(allDay)
	if t, err := time.Parse(time.RFC3339, startAt); err == nil {
		e.StartAt = t
	}
	if t, err := time.Parse(time.RFC3339, endAt); err == nil {
		e.EndAt = t
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		e.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		e.UpdatedAt = t
	}
	return &e, nil
}
