package timeentry

import (
	"time"

	"github.com/google/uuid"
)

type EntryType string

const (
	TypeRegular  EntryType = "regular"
	TypePomodoro EntryType = "pomodoro"
)

// ValidType reports whether the value is a known entry type
func ValidType(t EntryType) bool {
	return t == TypeRegular || t == TypePomodoro
}

// TimeEntry records a tracked slice of work on a project. Start and end are
// clock times within the entry's date; duration is minutes.
type TimeEntry struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ProjectID   uuid.UUID `json:"project_id" db:"project_id"`
	Description string    `json:"description" db:"description"`
	StartTime   string    `json:"start_time" db:"start_time"`
	EndTime     string    `json:"end_time" db:"end_time"`
	Duration    int       `json:"duration" db:"duration"`
	Date        time.Time `json:"date" db:"date"`
	Billable    bool      `json:"billable" db:"billable"`
	Type        EntryType `json:"type" db:"type"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// CreateTimeEntryRequest captures payload for creating a time entry
type CreateTimeEntryRequest struct {
	ProjectID   uuid.UUID `json:"project_id"`
	Description string    `json:"description"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Duration    int       `json:"duration"`
	Date        string    `json:"date"`
	Billable    bool      `json:"billable"`
	Type        EntryType `json:"type,omitempty"`
}

// UpdateTimeEntryRequest captures payload for updating a time entry
type UpdateTimeEntryRequest struct {
	ProjectID   *uuid.UUID `json:"project_id,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartTime   *string    `json:"start_time,omitempty"`
	EndTime     *string    `json:"end_time,omitempty"`
	Duration    *int       `json:"duration,omitempty"`
	Date        *string    `json:"date,omitempty"`
	Billable    *bool      `json:"billable,omitempty"`
	Type        *EntryType `json:"type,omitempty"`
}

// ListTimeEntriesFilter narrows the list endpoint by query parameters
type ListTimeEntriesFilter struct {
	Type      *EntryType
	ProjectID *uuid.UUID
	Date      *string
}
