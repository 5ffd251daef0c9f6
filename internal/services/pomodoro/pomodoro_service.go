package pomodoro

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// PomodoroService contains business logic for pomodoro sessions
type PomodoroService struct {
	repo *PomodoroRepo
}

// NewPomodoroService constructs a new PomodoroService
func NewPomodoroService(repo *PomodoroRepo) *PomodoroService {
	return &PomodoroService{repo: repo}
}

// Create records a finished session for the member
func (s *PomodoroService) Create(ctx context.Context, memberID uuid.UUID, req *CreatePomodoroRequest) (*PomodoroSession, error) {
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return nil, fmt.Errorf("pomodoro start_time and end_time are required")
	}

	if req.EndTime.Before(req.StartTime) {
		return nil, fmt.Errorf("pomodoro end_time cannot precede start_time")
	}

	if req.Duration < 0 || req.BreakDuration < 0 || req.Cycles < 0 {
		return nil, fmt.Errorf("pomodoro durations and cycles cannot be negative")
	}

	session, err := s.repo.Create(ctx, memberID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create pomodoro session: %w", err)
	}

	return session, nil
}

// GetByID fetches one of the member's sessions
func (s *PomodoroService) GetByID(ctx context.Context, memberID, id uuid.UUID) (*PomodoroSession, error) {
	session, err := s.repo.GetByID(ctx, memberID, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get pomodoro session: %w", err)
	}

	return session, nil
}

// List returns the member's sessions, newest first
func (s *PomodoroService) List(ctx context.Context, memberID uuid.UUID) ([]*PomodoroSession, error) {
	sessions, err := s.repo.List(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pomodoro sessions: %w", err)
	}

	return sessions, nil
}

// Update modifies one of the member's sessions
func (s *PomodoroService) Update(ctx context.Context, memberID, id uuid.UUID, req *UpdatePomodoroRequest) (*PomodoroSession, error) {
	session, err := s.repo.Update(ctx, memberID, id, req)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to update pomodoro session: %w", err)
	}

	return session, nil
}

// Delete removes one of the member's sessions
func (s *PomodoroService) Delete(ctx context.Context, memberID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, memberID, id); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("failed to delete pomodoro session: %w", err)
	}

	return nil
}
