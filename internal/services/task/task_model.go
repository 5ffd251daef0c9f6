package task

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "Pending"
	StatusInProgress TaskStatus = "In Progress"
	StatusCompleted  TaskStatus = "Completed"
	StatusOnHold     TaskStatus = "On Hold"
)

// ValidStatus reports whether the value is one of the known task states
func ValidStatus(s TaskStatus) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

// Task is a unit of work under a project
type Task struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	Title      string     `json:"title" db:"title"`
	ProjectID  uuid.UUID  `json:"project_id" db:"project_id"`
	Status     TaskStatus `json:"status" db:"status"`
	AssignedTo *string    `json:"assigned_to,omitempty" db:"assigned_to"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

// CreateTaskRequest captures payload for creating a task
type CreateTaskRequest struct {
	Title      string     `json:"title"`
	ProjectID  uuid.UUID  `json:"project_id"`
	Status     TaskStatus `json:"status,omitempty"`
	AssignedTo *string    `json:"assigned_to,omitempty"`
}

// UpdateTaskRequest captures payload for updating a task
type UpdateTaskRequest struct {
	Title      *string     `json:"title,omitempty"`
	Status     *TaskStatus `json:"status,omitempty"`
	AssignedTo *string     `json:"assigned_to,omitempty"`
}
