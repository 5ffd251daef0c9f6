package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrInvalidStatus = errors.New("invalid task status")

// TaskService contains business logic for tasks
type TaskService struct {
	repo *TaskRepo
}

// NewTaskService constructs a new TaskService
func NewTaskService(repo *TaskRepo) *TaskService {
	return &TaskService{repo: repo}
}

// Create adds a task under a project
func (s *TaskService) Create(ctx context.Context, req *CreateTaskRequest) (*Task, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("task title is required")
	}

	if req.ProjectID == uuid.Nil {
		return nil, fmt.Errorf("task project_id is required")
	}

	if req.Status != "" && !ValidStatus(req.Status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	t, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return t, nil
}

// GetByID fetches a task by its identifier
func (s *TaskService) GetByID(ctx context.Context, id uuid.UUID) (*Task, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return t, nil
}

// List returns tasks, optionally filtered by project
func (s *TaskService) List(ctx context.Context, projectID *uuid.UUID) ([]*Task, error) {
	tasks, err := s.repo.List(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// Update modifies mutable task fields
func (s *TaskService) Update(ctx context.Context, id uuid.UUID, req *UpdateTaskRequest) (*Task, error) {
	if req.Status != nil && !ValidStatus(*req.Status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *req.Status)
	}

	t, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return t, nil
}

// Delete removes a task by ID
func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}
