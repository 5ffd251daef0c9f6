package pomodoro

import (
	"time"

	"github.com/google/uuid"
)

// PomodoroSession records a completed focus session for a member
type PomodoroSession struct {
	ID            uuid.UUID `json:"id" db:"id"`
	MemberID      uuid.UUID `json:"member_id" db:"member_id"`
	StartTime     time.Time `json:"start_time" db:"start_time"`
	EndTime       time.Time `json:"end_time" db:"end_time"`
	Duration      int       `json:"duration" db:"duration"`
	BreakDuration int       `json:"break_duration" db:"break_duration"`
	Cycles        int       `json:"cycles" db:"cycles"`
	Notes         *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// CreatePomodoroRequest captures payload for recording a session
type CreatePomodoroRequest struct {
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Duration      int       `json:"duration"`
	BreakDuration int       `json:"break_duration,omitempty"`
	Cycles        int       `json:"cycles,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
}

// UpdatePomodoroRequest captures payload for updating a session
type UpdatePomodoroRequest struct {
	StartTime     *time.Time `json:"start_time,omitempty"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	Duration      *int       `json:"duration,omitempty"`
	BreakDuration *int       `json:"break_duration,omitempty"`
	Cycles        *int       `json:"cycles,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
}
