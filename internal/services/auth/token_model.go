package auth

import (
	"time"

	"github.com/google/uuid"
)

// AuthToken is the opaque bearer credential for a member. A member holds at
// most one row; re-login rotates token/expires_at in place and logout flips
// is_active off without deleting the row.
type AuthToken struct {
	ID        uuid.UUID `json:"id" db:"id"`
	MemberID  uuid.UUID `json:"member_id" db:"member_id"`
	Token     string    `json:"token" db:"token"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	IsActive  bool      `json:"is_active" db:"is_active"`
}
