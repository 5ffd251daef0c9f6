package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrClientNotFound = errors.New("client not found")

// ClientRepo handles database operations for clients
type ClientRepo struct {
	db *sqlx.DB
}

// NewClientRepo creates a new client repository
func NewClientRepo(db *sqlx.DB) *ClientRepo {
	return &ClientRepo{db: db}
}

// Create creates a new client
func (r *ClientRepo) Create(ctx context.Context, req *CreateClientRequest) (*Client, error) {
	query := `
        INSERT INTO clients (name)
        VALUES ($1)
        RETURNING id, name, created_at, updated_at
    `

	var c Client
	err := r.db.GetContext(ctx, &c, query, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &c, nil
}

// GetByID retrieves a client by ID
func (r *ClientRepo) GetByID(ctx context.Context, id uuid.UUID) (*Client, error) {
	query := `
        SELECT id, name, created_at, updated_at
        FROM clients
        WHERE id = $1
    `

	var c Client
	err := r.db.GetContext(ctx, &c, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return &c, nil
}

// GetByName retrieves a client by name
func (r *ClientRepo) GetByName(ctx context.Context, name string) (*Client, error) {
	query := `
        SELECT id, name, created_at, updated_at
        FROM clients
        WHERE name = $1
    `

	var c Client
	err := r.db.GetContext(ctx, &c, query, name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return &c, nil
}

// List retrieves all clients ordered by name
func (r *ClientRepo) List(ctx context.Context) ([]*Client, error) {
	query := `
        SELECT id, name, created_at, updated_at
        FROM clients
        ORDER BY name ASC
    `

	var clients []*Client
	err := r.db.SelectContext(ctx, &clients, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	return clients, nil
}

// Update updates client fields
func (r *ClientRepo) Update(ctx context.Context, id uuid.UUID, req *UpdateClientRequest) (*Client, error) {
	setParts := []string{}
	args := []interface{}{}

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", len(args)+1))
		args = append(args, *req.Name)
	}

	if len(setParts) == 0 {
		return r.GetByID(ctx, id)
	}

	setParts = append(setParts, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
        UPDATE clients
        SET %s
        WHERE id = $%d
        RETURNING id, name, created_at, updated_at
    `, strings.Join(setParts, ", "), len(args))

	var c Client
	err := r.db.GetContext(ctx, &c, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return &c, nil
}

// Delete removes a client by ID
func (r *ClientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM clients WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrClientNotFound
	}

	return nil
}
