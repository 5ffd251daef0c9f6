package timeentry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrTimeEntryNotFound = errors.New("time entry not found")

const timeEntryColumns = `id, project_id, description, start_time, end_time, duration, date, billable, type, created_at, updated_at`

// TimeEntryRepo handles database operations for time entries
type TimeEntryRepo struct {
	db *sqlx.DB
}

// NewTimeEntryRepo creates a new time entry repository
func NewTimeEntryRepo(db *sqlx.DB) *TimeEntryRepo {
	return &TimeEntryRepo{db: db}
}

// Create creates a new time entry
func (r *TimeEntryRepo) Create(ctx context.Context, req *CreateTimeEntryRequest) (*TimeEntry, error) {
	entryType := req.Type
	if entryType == "" {
		entryType = TypeRegular
	}

	query := fmt.Sprintf(`
        INSERT INTO time_entries (project_id, description, start_time, end_time, duration, date, billable, type)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING %s
    `, timeEntryColumns)

	var e TimeEntry
	err := r.db.GetContext(ctx, &e, query,
		req.ProjectID, req.Description, req.StartTime, req.EndTime,
		req.Duration, req.Date, req.Billable, entryType)
	if err != nil {
		return nil, fmt.Errorf("failed to create time entry: %w", err)
	}

	return &e, nil
}

// GetByID retrieves a time entry by ID
func (r *TimeEntryRepo) GetByID(ctx context.Context, id uuid.UUID) (*TimeEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM time_entries WHERE id = $1`, timeEntryColumns)

	var e TimeEntry
	err := r.db.GetContext(ctx, &e, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTimeEntryNotFound
		}
		return nil, fmt.Errorf("failed to get time entry: %w", err)
	}

	return &e, nil
}

// buildListQuery assembles the filtered list statement. Filters are ANDed;
// a nil filter field is skipped.
func buildListQuery(filter *ListTimeEntriesFilter) (string, []interface{}) {
	query := fmt.Sprintf(`SELECT %s FROM time_entries`, timeEntryColumns)
	whereParts := []string{}
	args := []interface{}{}

	if filter != nil {
		if filter.Type != nil {
			whereParts = append(whereParts, fmt.Sprintf("type = $%d", len(args)+1))
			args = append(args, *filter.Type)
		}

		if filter.ProjectID != nil {
			whereParts = append(whereParts, fmt.Sprintf("project_id = $%d", len(args)+1))
			args = append(args, *filter.ProjectID)
		}

		if filter.Date != nil {
			whereParts = append(whereParts, fmt.Sprintf("date = $%d", len(args)+1))
			args = append(args, *filter.Date)
		}
	}

	if len(whereParts) > 0 {
		query += " WHERE " + strings.Join(whereParts, " AND ")
	}

	query += " ORDER BY date DESC, start_time DESC"

	return query, args
}

// List retrieves time entries matching the filter
func (r *TimeEntryRepo) List(ctx context.Context, filter *ListTimeEntriesFilter) ([]*TimeEntry, error) {
	query, args := buildListQuery(filter)

	var entries []*TimeEntry
	err := r.db.SelectContext(ctx, &entries, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}

	return entries, nil
}

// Update updates time entry fields
func (r *TimeEntryRepo) Update(ctx context.Context, id uuid.UUID, req *UpdateTimeEntryRequest) (*TimeEntry, error) {
	setParts := []string{}
	args := []interface{}{}

	if req.ProjectID != nil {
		setParts = append(setParts, fmt.Sprintf("project_id = $%d", len(args)+1))
		args = append(args, *req.ProjectID)
	}

	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", len(args)+1))
		args = append(args, *req.Description)
	}

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

	if req.Date != nil {
		setParts = append(setParts, fmt.Sprintf("date = $%d", len(args)+1))
		args = append(args, *req.Date)
	}

	if req.Billable != nil {
		setParts = append(setParts, fmt.Sprintf("billable = $%d", len(args)+1))
		args = append(args, *req.Billable)
	}

	if req.Type != nil {
		setParts = append(setParts, fmt.Sprintf("type = $%d", len(args)+1))
		args = append(args, *req.Type)
	}

	if len(setParts) == 0 {
		return r.GetByID(ctx, id)
	}

	setParts = append(setParts, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
        UPDATE time_entries
        SET %s
        WHERE id = $%d
        RETURNING %s
    `, strings.Join(setParts, ", "), len(args), timeEntryColumns)

	var e TimeEntry
	err := r.db.GetContext(ctx, &e, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTimeEntryNotFound
		}
		return nil, fmt.Errorf("failed to update time entry: %w", err)
	}

	return &e, nil
}

// Delete removes a time entry by ID
func (r *TimeEntryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM time_entries WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrTimeEntryNotFound
	}

	return nil
}
