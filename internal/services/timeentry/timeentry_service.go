package timeentry

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrInvalidType = errors.New("invalid entry type")

// TimeEntryService contains business logic for time entries
type TimeEntryService struct {
	repo *TimeEntryRepo
}

// NewTimeEntryService constructs a new TimeEntryService
func NewTimeEntryService(repo *TimeEntryRepo) *TimeEntryService {
	return &TimeEntryService{repo: repo}
}

// Create records a new time entry
func (s *TimeEntryService) Create(ctx context.Context, req *CreateTimeEntryRequest) (*TimeEntry, error) {
	if req.ProjectID == uuid.Nil {
		return nil, fmt.Errorf("time entry project_id is required")
	}

	if req.StartTime == "" || req.EndTime == "" || req.Date == "" {
		return nil, fmt.Errorf("time entry start_time, end_time and date are required")
	}

	if req.Duration < 0 {
		return nil, fmt.Errorf("time entry duration cannot be negative")
	}

	if req.Type != "" && !ValidType(req.Type) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidType, req.Type)
	}

	e, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create time entry: %w", err)
	}

	return e, nil
}

// GetByID fetches a time entry by its identifier
func (s *TimeEntryService) GetByID(ctx context.Context, id uuid.UUID) (*TimeEntry, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTimeEntryNotFound) {
			return nil, ErrTimeEntryNotFound
		}
		return nil, fmt.Errorf("failed to get time entry: %w", err)
	}

	return e, nil
}

// List returns time entries matching the filter
func (s *TimeEntryService) List(ctx context.Context, filter *ListTimeEntriesFilter) ([]*TimeEntry, error) {
	if filter != nil && filter.Type != nil && !ValidType(*filter.Type) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidType, *filter.Type)
	}

	entries, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}

	return entries, nil
}

// Update modifies mutable time entry fields
func (s *TimeEntryService) Update(ctx context.Context, id uuid.UUID, req *UpdateTimeEntryRequest) (*TimeEntry, error) {
	if req.Type != nil && !ValidType(*req.Type) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidType, *req.Type)
	}

	if req.Duration != nil && *req.Duration < 0 {
		return nil, fmt.Errorf("time entry duration cannot be negative")
	}

	e, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrTimeEntryNotFound) {
			return nil, ErrTimeEntryNotFound
		}
		return nil, fmt.Errorf("failed to update time entry: %w", err)
	}

	return e, nil
}

// Delete removes a time entry by ID
func (s *TimeEntryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrTimeEntryNotFound) {
			return ErrTimeEntryNotFound
		}
		return fmt.Errorf("failed to delete time entry: %w", err)
	}

	return nil
}
