package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// full set re-runs safely on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS goals (
		id                   TEXT PRIMARY KEY,
		title                TEXT NOT NULL,
		status               TEXT NOT NULL DEFAULT 'active'
		                     CHECK(status IN ('active','paused','done','archived')),
		current_phase_index  INTEGER NOT NULL DEFAULT 0,
		cadence_per_week     INTEGER NOT NULL DEFAULT 3,
		session_duration_min INTEGER NOT NULL DEFAULT 60,
		preferred_time       TEXT NOT NULL DEFAULT 'morning',
		energy_cost          INTEGER NOT NULL DEFAULT 3,
		archetype            TEXT NOT NULL DEFAULT 'DEEP_WORK_PROJECT'
		                     CHECK(archetype IN ('HABIT_BUILDING','DEEP_WORK_PROJECT','SKILL_ACQUISITION','MAINTENANCE')),
		progress_pct         REAL NOT NULL DEFAULT 0,
		archived_at          TEXT,
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS phases (
		id          TEXT PRIMARY KEY,
		goal_id     TEXT NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'pending'
		            CHECK(status IN ('pending','active','completed','abandoned')),
		start_week  INTEGER NOT NULL DEFAULT 1,
		end_week    INTEGER NOT NULL DEFAULT 1,
		order_index INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_phases_goal ON phases(goal_id)`,

	`CREATE TABLE IF NOT EXISTS milestones (
		id           TEXT PRIMARY KEY,
		phase_id     TEXT NOT NULL REFERENCES phases(id) ON DELETE CASCADE,
		title        TEXT NOT NULL,
		is_completed INTEGER NOT NULL DEFAULT 0,
		order_index  INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_milestones_phase ON milestones(phase_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id             TEXT PRIMARY KEY,
		milestone_id   TEXT NOT NULL REFERENCES milestones(id) ON DELETE CASCADE,
		title          TEXT NOT NULL,
		is_completed   INTEGER NOT NULL DEFAULT 0,
		strikethrough  INTEGER NOT NULL DEFAULT 0,
		estimated_min  INTEGER,
		difficulty     INTEGER CHECK(difficulty BETWEEN 1 AND 5),
		cognitive_type TEXT NOT NULL DEFAULT '',
		order_index    INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_milestone ON tasks(milestone_id)`,

	`CREATE TABLE IF NOT EXISTS subtasks (
		id            TEXT PRIMARY KEY,
		task_id       TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		title         TEXT NOT NULL,
		is_completed  INTEGER NOT NULL DEFAULT 0,
		strikethrough INTEGER NOT NULL DEFAULT 0,
		order_index   INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_subtasks_task ON subtasks(task_id)`,

	`CREATE TABLE IF NOT EXISTS calendar_events (
		id               TEXT PRIMARY KEY,
		title            TEXT NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		start_at         TEXT NOT NULL,
		end_at           TEXT NOT NULL,
		timezone         TEXT NOT NULL DEFAULT 'UTC',
		goal_id          TEXT NOT NULL DEFAULT '',
		phase_id         TEXT NOT NULL DEFAULT '',
		milestone_id     TEXT NOT NULL DEFAULT '',
		event_type       TEXT NOT NULL DEFAULT 'goal_session'
		                 CHECK(event_type IN ('goal_session','milestone_deadline')),
		energy_cost      INTEGER NOT NULL DEFAULT 0,
		status           TEXT NOT NULL DEFAULT 'scheduled'
		                 CHECK(status IN ('scheduled','rescheduled','skipped','completed')),
		reschedule_count INTEGER NOT NULL DEFAULT 0,
		all_day          INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_events_start ON calendar_events(start_at)`,
	`CREATE INDEX IF NOT EXISTS idx_events_goal ON calendar_events(goal_id)`,

	`CREATE TABLE IF NOT EXISTS time_blocks (
		id         TEXT PRIMARY KEY,
		label      TEXT NOT NULL,
		days       TEXT NOT NULL DEFAULT '',
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL,
		flexible   INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS time_exceptions (
		id         TEXT PRIMARY KEY,
		date       TEXT NOT NULL,
		available  INTEGER NOT NULL DEFAULT 0,
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL,
		reason     TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_time_exceptions_date ON time_exceptions(date)`,

	`CREATE TABLE IF NOT EXISTS user_profile (
		id                 TEXT PRIMARY KEY,
		preferred_focus    TEXT NOT NULL DEFAULT 'morning',
		energy_level       TEXT NOT NULL DEFAULT 'balanced'
		                   CHECK(energy_level IN ('high_octane','balanced','recovery')),
		daily_capacity_min INTEGER NOT NULL DEFAULT 180,
		sleep_start_hour   INTEGER NOT NULL DEFAULT 23,
		sleep_end_hour     INTEGER NOT NULL DEFAULT 7,
		peak_start_hour    INTEGER NOT NULL DEFAULT 9,
		peak_end_hour      INTEGER NOT NULL DEFAULT 12
	)`,
}
