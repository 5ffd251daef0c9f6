package profile

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile holds the free-form contact/bio fields for a member, one row
// per member, created lazily on first access.
type UserProfile struct {
	ID        uuid.UUID `json:"id" db:"id"`
	MemberID  uuid.UUID `json:"member_id" db:"member_id"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Phone     string    `json:"phone" db:"phone"`
	JobTitle  string    `json:"job_title" db:"job_title"`
	Company   string    `json:"company" db:"company"`
	Bio       string    `json:"bio" db:"bio"`
	Location  string    `json:"location" db:"location"`
	Website   string    `json:"website" db:"website"`
	Timezone  string    `json:"timezone" db:"timezone"`
	Avatar    string    `json:"avatar" db:"avatar"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// UpdateProfileRequest captures payload for a partial profile update
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	JobTitle  *string `json:"job_title,omitempty"`
	Company   *string `json:"company,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	Location  *string `json:"location,omitempty"`
	Website   *string `json:"website,omitempty"`
	Timezone  *string `json:"timezone,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
}
