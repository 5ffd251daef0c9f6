package project

import (
	"time"

	"github.com/google/uuid"
)

// Project groups tasks and time entries, optionally under a client
type Project struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	ClientID  *uuid.UUID `json:"client_id,omitempty" db:"client_id"`
	Status    string     `json:"status" db:"status"`
	Progress  int        `json:"progress" db:"progress"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// CreateProjectRequest captures payload for creating a project
type CreateProjectRequest struct {
	Name     string     `json:"name"`
	ClientID *uuid.UUID `json:"client_id,omitempty"`
	Status   string     `json:"status,omitempty"`
	Progress int        `json:"progress,omitempty"`
}

// UpdateProjectRequest captures payload for updating a project
type UpdateProjectRequest struct {
	Name     *string    `json:"name,omitempty"`
	ClientID *uuid.UUID `json:"client_id,omitempty"`
	Status   *string    `json:"status,omitempty"`
	Progress *int       `json:"progress,omitempty"`
}
