package member

import (
	"time"

	"github.com/google/uuid"
)

type Provider string

const (
	ProviderEmail  Provider = "email"
	ProviderGoogle Provider = "google"
)

// Member is the account entity. password_hash is set for email-provider
// accounts, firebase_uid for Google-provider ones; a linked account has both.
type Member struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Email         string    `json:"email" db:"email"`
	PasswordHash  *string   `json:"-" db:"password_hash"`
	FirebaseUID   *string   `json:"firebase_uid,omitempty" db:"firebase_uid"`
	Picture       *string   `json:"picture,omitempty" db:"picture"`
	Provider      Provider  `json:"provider" db:"provider"`
	EmailVerified bool      `json:"email_verified" db:"email_verified"`
	Rate          *float64  `json:"rate,omitempty" db:"rate"`
	Cost          *float64  `json:"cost,omitempty" db:"cost"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// CreateMemberRequest captures payload for creating a member
type CreateMemberRequest struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	PasswordHash  *string  `json:"-"`
	FirebaseUID   *string  `json:"firebase_uid,omitempty"`
	Picture       *string  `json:"picture,omitempty"`
	Provider      Provider `json:"provider"`
	EmailVerified bool     `json:"email_verified"`
	Rate          *float64 `json:"rate,omitempty"`
	Cost          *float64 `json:"cost,omitempty"`
}

// UpdateMemberRequest captures payload for updating a member
type UpdateMemberRequest struct {
	Name          *string   `json:"name,omitempty"`
	FirebaseUID   *string   `json:"firebase_uid,omitempty"`
	Picture       *string   `json:"picture,omitempty"`
	Provider      *Provider `json:"provider,omitempty"`
	EmailVerified *bool     `json:"email_verified,omitempty"`
	Rate          *float64  `json:"rate,omitempty"`
	Cost          *float64  `json:"cost,omitempty"`
}
