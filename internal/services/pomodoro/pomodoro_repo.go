package pomodoro

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrSessionNotFound = errors.New("pomodoro session not found")

const sessionColumns = `id, member_id, start_time, end_time, duration, break_duration, cycles, notes, created_at, updated_at`

// PomodoroRepo handles database operations for pomodoro sessions
type PomodoroRepo struct {
	db *sqlx.DB
}

// NewPomodoroRepo creates a new pomodoro repository
func NewPomodoroRepo(db *sqlx.DB) *PomodoroRepo {
	return &PomodoroRepo{db: db}
}

// Create records a session for a member
func (r *PomodoroRepo) Create(ctx context.Context, memberID uuid.UUID, req *CreatePomodoroRequest) (*PomodoroSession, error) {
	cycles := req.Cycles
	if cycles == 0 {
		cycles = 1
	}

	query := fmt.Sprintf(`
        INSERT INTO pomodoro_sessions (member_id, start_time, end_time, duration, break_duration, cycles, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING %s
    `, sessionColumns)

	var s PomodoroSession
	err := r.db.GetContext(ctx, &s, query,
		memberID, req.StartTime, req.EndTime, req.Duration, req.BreakDuration, cycles, req.Notes)
	if err != nil {
		return nil, fmt.Errorf("failed to create pomodoro session: %w", err)
	}

	return &s, nil
}

// GetByID retrieves a session owned by the member
func (r *PomodoroRepo) GetByID(ctx context.Context, memberID, id uuid.UUID) (*PomodoroSession, error) {
	query := fmt.Sprintf(`SELECT %s FROM pomodoro_sessions WHERE id = $1 AND member_id = $2`, sessionColumns)

	var s PomodoroSession
	err := r.db.GetContext(ctx, &s, query, id, memberID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get pomodoro session: %w", err)
	}

	return &s, nil
}

// List retrieves all sessions for a member, newest first
func (r *PomodoroRepo) List(ctx context.Context, memberID uuid.UUID) ([]*PomodoroSession, error) {
	query := fmt.Sprintf(`
        SELECT %s FROM pomodoro_sessions
        WHERE member_id = $1
        ORDER BY start_time DESC
    `, sessionColumns)

	var sessions []*PomodoroSession
	err := r.db.SelectContext(ctx, &sessions, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pomodoro sessions: %w", err)
	}

	return sessions, nil
}

// Update updates session fields, scoped to the owning member
func (r *PomodoroRepo) Update(ctx context.Context, memberID, id uuid.UUID, req *UpdatePomodoroRequest) (*PomodoroSession, error) {
	setParts := []string{}
	args := []interface{}{}

	if req.StartTime != nil {
		setParts = append(setParts, fmt.Sprintf("start_time = $%d", len(args)+1))
		args = append(args, *req.StartTime)
	}

	if req.EndTime != nil {
		setParts = append(setParts, fmt.Sprintf("end_time = $%d", len(args)+1))
		args = append(args, *req.EndTime)
	}

	if req.Duration != nil {
		setParts = append(setParts, fmt.Sprintf("duration = $%d", len(args)+1))
		args = append(args, *req.Duration)
	}

	if req.BreakDuration != nil {
		setParts = append(setParts, fmt.Sprintf("break_duration = $%d", len(args)+1))
		args = append(args, *req.BreakDuration)
	}

	if req.Cycles != nil {
		setParts = append(setParts, fmt.Sprintf("cycles = $%d", len(args)+1))
		args = append(args, *req.Cycles)
	}

	if req.Notes != nil {
		setParts = append(setParts, fmt.Sprintf("notes = $%d", len(args)+1))
		args = append(args, *req.Notes)
	}

	if len(setParts) == 0 {
		return r.GetByID(ctx, memberID, id)
	}

	setParts = append(setParts, "updated_at = NOW()")
	args = append(args, id, memberID)

	query := fmt.Sprintf(`
        UPDATE pomodoro_sessions
        SET %s
        WHERE id = $%d AND member_id = $%d
        RETURNING %s
    `, strings.Join(setParts, ", "), len(args)-1, len(args), sessionColumns)

	var s PomodoroSession
	err := r.db.GetContext(ctx, &s, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to update pomodoro session: %w", err)
	}

	return &s, nil
}

// Delete removes a session owned by the member
func (r *PomodoroRepo) Delete(ctx context.Context, memberID, id uuid.UUID) error {
	query := `DELETE FROM pomodoro_sessions WHERE id = $1 AND member_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, memberID)
	if err != nil {
		return fmt.Errorf("failed to delete pomodoro session: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}
