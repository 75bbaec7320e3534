package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/GeekPO11/dlulu/internal/domain"
)

// SQLiteGoalRepo implements GoalRepo over a SQLite database. Goals are
// stored normalized across goals/phases/milestones/tasks/subtasks and
// loaded back as one nested snapshot.
type SQLiteGoalRepo struct {
	db *sql.DB
}

func NewSQLiteGoalRepo(db *sql.DB) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: db}
}

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
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

	_, err = tx.ExecContext(ctx, `INSERT INTO goals
		(id, title, status, current_phase_index, cadence_per_week, session_duration_min,
		 preferred_time, energy_cost, archetype, progress_pct, archived_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.Title, string(g.Status), g.CurrentPhaseIndex, g.CadencePerWeek, g.SessionDurationMin,
		string(g.PreferredTimeOfDay), g.EnergyCost, string(g.Archetype), g.ProgressPct,
		nullableTimeToString(g.ArchivedAt, time.RFC3339),
		utcString(g.CreatedAt), utcString(g.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}

	for pi := range g.Phases {
		phase := &g.Phases[pi]
		phase.GoalID = g.ID
		if phase.OrderIndex == 0 {
			phase.OrderIndex = pi
		}
		_, err = tx.ExecContext(ctx, `INSERT INTO phases
			(id, goal_id, title, status, start_week, end_week, order_index)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			phase.ID, g.ID, phase.Title, string(phase.Status), phase.StartWeek, phase.EndWeek, phase.OrderIndex,
		)
		if err != nil {
			return fmt.Errorf("inserting phase: %w", err)
		}
		for mi := range phase.Milestones {
			ms := &phase.Milestones[mi]
			ms.PhaseID = phase.ID
			_, err = tx.ExecContext(ctx, `INSERT INTO milestones
				(id, phase_id, title, is_completed, order_index)
				VALUES (?, ?, ?, ?, ?)`,
				ms.ID, phase.ID, ms.Title, boolToInt(ms.IsCompleted), ms.Order,
			)
			if err != nil {
				return fmt.Errorf("inserting milestone: %w", err)
			}
			for ti := range ms.Tasks {
				task := &ms.Tasks[ti]
				task.MilestoneID = ms.ID
				_, err = tx.ExecContext(ctx, `INSERT INTO tasks
					(id, milestone_id, title, is_completed, strikethrough, estimated_min, difficulty, cognitive_type, order_index)
					VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
					task.ID, ms.ID, task.Title, boolToInt(task.IsCompleted), boolToInt(task.Strikethrough),
					nullableIntToValue(task.EstimatedMin), nullableIntToValue(task.Difficulty),
					string(task.CognitiveType), task.Order,
				)
				if err != nil {
					return fmt.Errorf("inserting task: %w", err)
				}
				for si := range task.SubTasks {
					st := &task.SubTasks[si]
					st.TaskID = task.ID
					_, err = tx.ExecContext(ctx, `INSERT INTO subtasks
						(id, task_id, title, is_completed, strikethrough, order_index)
						VALUES (?, ?, ?, ?, ?, ?)`,
						st.ID, task.ID, st.Title, boolToInt(st.IsCompleted), boolToInt(st.Strikethrough), st.Order,
					)
					if err != nil {
						return fmt.Errorf("inserting subtask: %w", err)
					}
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing goal: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLiteGoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, title, status, current_phase_index,
		cadence_per_week, session_duration_min, preferred_time, energy_cost, archetype,
		progress_pct, archived_at, created_at, updated_at
		FROM goals WHERE id = ?`, id)
	g, err := scanGoal(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadHierarchy(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (r *SQLiteGoalRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Goal, error) {
	query := `SELECT id, title, status, current_phase_index, cadence_per_week,
		session_duration_min, preferred_time, energy_cost, archetype, progress_pct,
		archived_at, created_at, updated_at FROM goals`
	if !includeArchived {
		query += ` WHERE archived_at IS NULL`
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	for _, g := range goals {
		if err := r.loadHierarchy(ctx, g); err != nil {
			return nil, err
		}
	}
	return goals, nil
}

// Update persists the goal row and each phase's status. Milestone and
// task completion change through their dedicated setters.
func (r *SQLiteGoalRepo) Update(ctx context.Context, g *domain.Goal) error {
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

	_, err = tx.ExecContext(ctx, `UPDATE goals SET title = ?, status = ?,
		current_phase_index = ?, cadence_per_week = ?, session_duration_min = ?,
		preferred_time = ?, energy_cost = ?, archetype = ?, progress_pct = ?, updated_at = ?
		WHERE id = ?`,
		g.Title, string(g.Status), g.CurrentPhaseIndex, g.CadencePerWeek, g.SessionDurationMin,
		string(g.PreferredTimeOfDay), g.EnergyCost, string(g.Archetype), g.ProgressPct,
		nowUTC(), g.ID,
	)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}

	for i := range g.Phases {
		p := &g.Phases[i]
		_, err = tx.ExecContext(ctx,
			`UPDATE phases SET status = ?, start_week = ?, end_week = ? WHERE id = ?`,
			string(p.Status), p.StartWeek, p.EndWeek, p.ID)
		if err != nil {
			return fmt.Errorf("updating phase: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing goal update: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLiteGoalRepo) Archive(ctx context.Context, id string) error {
	now := nowUTC()
	_, err := r.db.ExecContext(ctx,
		`UPDATE goals SET status = 'archived', archived_at = ?, updated_at = ? WHERE id = ?`,
		now, now, id)
	if err != nil {
		return fmt.Errorf("archiving goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) SetMilestoneCompleted(ctx context.Context, milestoneID string, completed bool) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE milestones SET is_completed = ? WHERE id = ?`, boolToInt(completed), milestoneID)
	if err != nil {
		return fmt.Errorf("updating milestone: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) SetTaskCompleted(ctx context.Context, taskID string, completed bool) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET is_completed = ? WHERE id = ?`, boolToInt(completed), taskID)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

// loadHierarchy fills a goal's phases, milestones, tasks, and subtasks.
func (r *SQLiteGoalRepo) loadHierarchy(ctx context.Context, g *domain.Goal) error {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, status, start_week, end_week, order_index
		FROM phases WHERE goal_id = ? ORDER BY order_index`, g.ID)
	if err != nil {
		return fmt.Errorf("loading phases: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Phase
		var status string
		if err := rows.Scan(&p.ID, &p.Title, &status, &p.StartWeek, &p.EndWeek, &p.OrderIndex); err != nil {
			return fmt.Errorf("scanning phase: %w", err)
		}
		p.GoalID = g.ID
		p.Status = domain.PhaseStatus(status)
		g.Phases = append(g.Phases, p)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating phases: %w", err)
	}

	for pi := range g.Phases {
		if err := r.loadMilestones(ctx, &g.Phases[pi]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteGoalRepo) loadMilestones(ctx context.Context, p *domain.Phase) error {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, is_completed, order_index
		FROM milestones WHERE phase_id = ? ORDER BY order_index`, p.ID)
	if err != nil {
		return fmt.Errorf("loading milestones: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m domain.Milestone
		var completed int
		if err := rows.Scan(&m.ID, &m.Title, &completed, &m.Order); err != nil {
			return fmt.Errorf("scanning milestone: %w", err)
		}
		m.PhaseID = p.ID
		m.IsCompleted = intToBool(completed)
		p.Milestones = append(p.Milestones, m)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating milestones: %w", err)
	}

	for mi := range p.Milestones {
		if err := r.loadTasks(ctx, &p.Milestones[mi]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteGoalRepo) loadTasks(ctx context.Context, m *domain.Milestone) error {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, is_completed, strikethrough,
		estimated_min, difficulty, cognitive_type, order_index
		FROM tasks WHERE milestone_id = ? ORDER BY order_index`, m.ID)
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t domain.Task
		var completed, struck int
		var estimated, difficulty sql.NullInt64
		var cognitive string
		if err := rows.Scan(&t.ID, &t.Title, &completed, &struck, &estimated, &difficulty, &cognitive, &t.Order); err != nil {
			return fmt.Errorf("scanning task: %w", err)
		}
		t.MilestoneID = m.ID
		t.IsCompleted = intToBool(completed)
		t.Strikethrough = intToBool(struck)
		t.CognitiveType = domain.CognitiveType(cognitive)
		if estimated.Valid {
			v := int(estimated.Int64)
			t.EstimatedMin = &v
		}
		if difficulty.Valid {
			v := int(difficulty.Int64)
			t.Difficulty = &v
		}
		m.Tasks = append(m.Tasks, t)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating tasks: %w", err)
	}

	for ti := range m.Tasks {
		if err := r.loadSubTasks(ctx, &m.Tasks[ti]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteGoalRepo) loadSubTasks(ctx context.Context, t *domain.Task) error {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, is_completed, strikethrough, order_index
		FROM subtasks WHERE task_id = ? ORDER BY order_index`, t.ID)
	if err != nil {
		return fmt.Errorf("loading subtasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.SubTask
		var completed, struck int
		if err := rows.Scan(&s.ID, &s.Title, &completed, &struck, &s.Order); err != nil {
			return fmt.Errorf("scanning subtask: %w", err)
		}
		s.TaskID = t.ID
		s.IsCompleted = intToBool(completed)
		s.Strikethrough = intToBool(struck)
		t.SubTasks = append(t.SubTasks, s)
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGoal(row rowScanner) (*domain.Goal, error) {
	var g domain.Goal
	var status, preferred, archetype, createdAt, updatedAt string
	var archivedAt sql.NullString

	err := row.Scan(&g.ID, &g.Title, &status, &g.CurrentPhaseIndex, &g.CadencePerWeek,
		&g.SessionDurationMin, &preferred, &g.EnergyCost, &archetype, &g.ProgressPct,
		&archivedAt, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("goal not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning goal: %w", err)
	}

	g.Status = domain.GoalStatus(status)
	g.PreferredTimeOfDay = domain.TimeOfDay(preferred)
	g.Archetype = domain.Archetype(archetype)
	g.ArchivedAt = parseNullableTime(archivedAt, time.RFC3339)
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		g.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		g.UpdatedAt = t
	}
	return &g, nil
}
