package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrTokenNotFound = errors.New("token not found")

// TokenRepo handles database operations for auth tokens
type TokenRepo struct {
	db *sqlx.DB
}

// NewTokenRepo creates a new token repository
func NewTokenRepo(db *sqlx.DB) *TokenRepo {
	return &TokenRepo{db: db}
}

// Upsert writes the member's single token row, rotating the string, expiry
// and active flag if a row already exists. Concurrent logins race here and
// the last writer wins.
func (r *TokenRepo) Upsert(ctx context.Context, memberID uuid.UUID, token string, expiresAt time.Time) (*AuthToken, error) {
	query := `
        INSERT INTO auth_tokens (member_id, token, expires_at, is_active)
        VALUES ($1, $2, $3, TRUE)
        ON CONFLICT (member_id)
        DO UPDATE SET token = EXCLUDED.token, expires_at = EXCLUDED.expires_at, is_active = TRUE
        RETURNING id, member_id, token, created_at, expires_at, is_active
    `

	var t AuthToken
	err := r.db.GetContext(ctx, &t, query, memberID, token, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert token: %w", err)
	}

	return &t, nil
}

// GetValid retrieves a token that is active and unexpired as of now.
// Missing, revoked and expired all come back as ErrTokenNotFound.
func (r *TokenRepo) GetValid(ctx context.Context, token string, now time.Time) (*AuthToken, error) {
	query := `
        SELECT id, member_id, token, created_at, expires_at, is_active
        FROM auth_tokens
        WHERE token = $1 AND is_active = TRUE AND expires_at > $2
    `

	var t AuthToken
	err := r.db.GetContext(ctx, &t, query, token, now)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	return &t, nil
}

// Deactivate flips is_active off for the matching token regardless of expiry.
// The row stays behind as revocation history.
func (r *TokenRepo) Deactivate(ctx context.Context, token string) error {
	query := `UPDATE auth_tokens SET is_active = FALSE WHERE token = $1`

	result, err := r.db.ExecContext(ctx, query, token)
	if err != nil {
		return fmt.Errorf("failed to deactivate token: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrTokenNotFound
	}

	return nil
}
