package tag

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrTagNotFound = errors.New("tag not found")

// TagRepo handles database operations for tags
type TagRepo struct {
	db *sqlx.DB
}

// NewTagRepo creates a new tag repository
func NewTagRepo(db *sqlx.DB) *TagRepo {
	return &TagRepo{db: db}
}

// Create creates a new tag
func (r *TagRepo) Create(ctx context.Context, req *CreateTagRequest) (*Tag, error) {
	query := `
        INSERT INTO tags (name, color)
        VALUES ($1, $2)
        RETURNING id, name, color, created_at, updated_at
    `

	var t Tag
	err := r.db.GetContext(ctx, &t, query, req.Name, req.Color)
	if err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	return &t, nil
}

// GetByID retrieves a tag by ID
func (r *TagRepo) GetByID(ctx context.Context, id uuid.UUID) (*Tag, error) {
	query := `
        SELECT id, name, color, created_at, updated_at
        FROM tags
        WHERE id = $1
    `

	var t Tag
	err := r.db.GetContext(ctx, &t, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	return &t, nil
}

// GetByName retrieves a tag by name
func (r *TagRepo) GetByName(ctx context.Context, name string) (*Tag, error) {
	query := `
        SELECT id, name, color, created_at, updated_at
        FROM tags
        WHERE name = $1
    `

	var t Tag
	err := r.db.GetContext(ctx, &t, query, name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	return &t, nil
}

// List retrieves all tags ordered by name
func (r *TagRepo) List(ctx context.Context) ([]*Tag, error) {
	query := `
        SELECT id, name, color, created_at, updated_at
        FROM tags
        ORDER BY name ASC
    `

	var tags []*Tag
	err := r.db.SelectContext(ctx, &tags, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	return tags, nil
}

// Update updates tag fields
func (r *TagRepo) Update(ctx context.Context, id uuid.UUID, req *UpdateTagRequest) (*Tag, error) {
	setParts := []string{}
	args := []interface{}{}

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", len(args)+1))
		args = append(args, *req.Name)
	}

	if req.Color != nil {
		setParts = append(setParts, fmt.Sprintf("color = $%d", len(args)+1))
		args = append(args, *req.Color)
	}

	if len(setParts) == 0 {
		return r.GetByID(ctx, id)
	}

	setParts = append(setParts, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
        UPDATE tags
        SET %s
        WHERE id = $%d
        RETURNING id, name, color, created_at, updated_at
    `, strings.Join(setParts, ", "), len(args))

	var t Tag
	err := r.db.GetContext(ctx, &t, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}

	return &t, nil
}

// Delete removes a tag by ID
func (r *TagRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM tags WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrTagNotFound
	}

	return nil
}
