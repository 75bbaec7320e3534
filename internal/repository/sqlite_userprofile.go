package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/GeekPO11/dlulu/internal/domain"
)

// SQLiteUserProfileRepo stores the single user profile row plus the
// recurring time blocks and dated exceptions that make up its
// availability constraints.
type SQLiteUserProfileRepo struct {
	db *sql.DB
}

func NewSQLiteUserProfileRepo(db *sql.DB) *SQLiteUserProfileRepo {
	return &SQLiteUserProfileRepo{db: db}
}

func (r *SQLiteUserProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	p, err := r.loadProfile(ctx)
	if err == sql.ErrNoRows {
		def := domain.DefaultUserProfile()
		if err := r.Save(ctx, &def); err != nil {
			return nil, err
		}
		p = &def
	} else if err != nil {
		return nil, err
	}

	blocks, err := r.loadBlocks(ctx)
	if err != nil {
		return nil, err
	}
	exceptions, err := r.loadExceptions(ctx)
	if err != nil {
		return nil, err
	}
	p.Constraints.Blocks = blocks
	p.Constraints.Exceptions = exceptions
	return p, nil
}

func (r *SQLiteUserProfileRepo) Save(ctx context.Context, p *domain.UserProfile) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO user_profile
		(id, preferred_focus, energy_level, daily_capacity_min,
		 sleep_start_hour, sleep_end_hour, peak_start_hour, peak_end_hour)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		 preferred_focus = excluded.preferred_focus,
		 energy_level = excluded.energy_level,
		 daily_capacity_min = excluded.daily_capacity_min,
		 sleep_start_hour = excluded.sleep_start_hour,
		 sleep_end_hour = excluded.sleep_end_hour,
		 peak_start_hour = excluded.peak_start_hour,
		 peak_end_hour = excluded.peak_end_hour`,
		p.ID, string(p.PreferredFocusTime), string(p.EnergyLevel), p.DailyCapacityMin,
		p.Constraints.SleepStartHour, p.Constraints.SleepEndHour,
		p.Constraints.PeakStartHour, p.Constraints.PeakEndHour,
	)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

func (r *SQLiteUserProfileRepo) AddTimeBlock(ctx context.Context, b *domain.TimeBlock) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO time_blocks
		(id, label, days, start_time, end_time, flexible)
		VALUES (?, ?, ?, ?, ?, ?)`,
		b.ID, b.Label, weekdaysToCSV(b.Days), b.StartTime, b.EndTime, boolToInt(b.Flexible))
	if err != nil {
		return fmt.Errorf("inserting time block: %w", err)
	}
	return nil
}

func (r *SQLiteUserProfileRepo) AddTimeException(ctx context.Context, ex *domain.TimeException) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO time_exceptions
		(id, date, available, start_time, end_time, reason)
		VALUES (?, ?, ?, ?, ?, ?)`,
		ex.ID, ex.Date, boolToInt(ex.Available), ex.StartTime, ex.EndTime, ex.Reason)
	if err != nil {
		return fmt.Errorf("inserting time exception: %w", err)
	}
	return nil
}

func (r *SQLiteUserProfileRepo) loadProfile(ctx context.Context) (*domain.UserProfile, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, preferred_focus, energy_level,
		daily_capacity_min, sleep_start_hour, sleep_end_hour, peak_start_hour, peak_end_hour
		FROM user_profile LIMIT 1`)

	var p domain.UserProfile
	var focus, energy string
	err := row.Scan(&p.ID, &focus, &energy, &p.DailyCapacityMin,
		&p.Constraints.SleepStartHour, &p.Constraints.SleepEndHour,
		&p.Constraints.PeakStartHour, &p.Constraints.PeakEndHour)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning profile: %w", err)
	}
	p.PreferredFocusTime = domain.TimeOfDay(focus)
	p.EnergyLevel = domain.EnergyLevel(energy)
	return &p, nil
}

func (r *SQLiteUserProfileRepo) loadBlocks(ctx context.Context) ([]domain.TimeBlock, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, label, days, start_time, end_time, flexible FROM time_blocks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("loading time blocks: %w", err)
	}
	defer rows.Close()

	var blocks []domain.TimeBlock
	for rows.Next() {
		var b domain.TimeBlock
		var days string
		var flexible int
		if err := rows.Scan(&b.ID, &b.Label, &days, &b.StartTime, &b.EndTime, &flexible); err != nil {
			return nil, fmt.Errorf("scanning time block: %w", err)
		}
		b.Days = weekdaysFromCSV(days)
		b.Flexible = intToBool(flexible)
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

func (r *SQLiteUserProfileRepo) loadExceptions(ctx context.Context) ([]domain.TimeException, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, available, start_time, end_time, reason FROM time_exceptions ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("loading time exceptions: %w", err)
	}
	defer rows.Close()

	var exceptions []domain.TimeException
	for rows.Next() {
		var ex domain.TimeException
		var available int
		if err := rows.Scan(&ex.ID, &ex.Date, &available, &ex.StartTime, &ex.EndTime, &ex.Reason); err != nil {
			return nil, fmt.Errorf("scanning time exception: %w", err)
		}
		ex.Available = intToBool(available)
		exceptions = append(exceptions, ex)
	}
	return exceptions, rows.Err()
}
