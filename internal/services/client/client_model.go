package client

import (
	"time"

	"github.com/google/uuid"
)

// Client is a billing counterpart projects can be grouped under
type Client struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateClientRequest captures payload for creating a client
type CreateClientRequest struct {
	Name string `json:"name"`
}

// UpdateClientRequest captures payload for updating a client
type UpdateClientRequest struct {
	Name *string `json:"name,omitempty"`
}
