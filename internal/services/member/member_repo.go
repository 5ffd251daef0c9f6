package member

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrMemberNotFound = errors.New("member not found")

const memberColumns = `id, name, email, password_hash, firebase_uid, picture, provider, email_verified, rate, cost, created_at, updated_at`

// MemberRepo handles database operations for members
type MemberRepo struct {
	db *sqlx.DB
}

// NewMemberRepo creates a new member repository
func NewMemberRepo(db *sqlx.DB) *MemberRepo {
	return &MemberRepo{db: db}
}

// Create creates a new member
func (r *MemberRepo) Create(ctx context.Context, req *CreateMemberRequest) (*Member, error) {
	query := fmt.Sprintf(`
        INSERT INTO members (name, email, password_hash, firebase_uid, picture, provider, email_verified, rate, cost)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING %s
    `, memberColumns)

	var m Member
	err := r.db.GetContext(ctx, &m, query,
		req.Name, req.Email, req.PasswordHash, req.FirebaseUID, req.Picture,
		req.Provider, req.EmailVerified, req.Rate, req.Cost)
	if err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return &m, nil
}

// GetByID retrieves a member by ID
func (r *MemberRepo) GetByID(ctx context.Context, id uuid.UUID) (*Member, error) {
	query := fmt.Sprintf(`SELECT %s FROM members WHERE id = $1`, memberColumns)

	var m Member
	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return &m, nil
}

// GetByEmail retrieves a member by email address
func (r *MemberRepo) GetByEmail(ctx context.Context, email string) (*Member, error) {
	query := fmt.Sprintf(`SELECT %s FROM members WHERE email = $1`, memberColumns)

	var m Member
	err := r.db.GetContext(ctx, &m, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return &m, nil
}

// GetByEmailAndProvider retrieves a member by email restricted to one provider
func (r *MemberRepo) GetByEmailAndProvider(ctx context.Context, email string, provider Provider) (*Member, error) {
	query := fmt.Sprintf(`SELECT %s FROM members WHERE email = $1 AND provider = $2`, memberColumns)

	var m Member
	err := r.db.GetContext(ctx, &m, query, email, provider)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return &m, nil
}

// GetByFirebaseUID retrieves a member by its third-party identity id
func (r *MemberRepo) GetByFirebaseUID(ctx context.Context, firebaseUID string) (*Member, error) {
	query := fmt.Sprintf(`SELECT %s FROM members WHERE firebase_uid = $1`, memberColumns)

	var m Member
	err := r.db.GetContext(ctx, &m, query, firebaseUID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return &m, nil
}

// List retrieves all members ordered by creation date
func (r *MemberRepo) List(ctx context.Context) ([]*Member, error) {
	query := fmt.Sprintf(`SELECT %s FROM members ORDER BY created_at DESC`, memberColumns)

	var members []*Member
	err := r.db.SelectContext(ctx, &members, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return members, nil
}

// Update updates member fields
func (r *MemberRepo) Update(ctx context.Context, id uuid.UUID, req *UpdateMemberRequest) (*Member, error) {
	setParts := []string{}
	args := []interface{}{}

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", len(args)+1))
		args = append(args, *req.Name)
	}

	if req.FirebaseUID != nil {
		setParts = append(setParts, fmt.Sprintf("firebase_uid = $%d", len(args)+1))
		args = append(args, *req.FirebaseUID)
	}

	if req.Picture != nil {
		setParts = append(setParts, fmt.Sprintf("picture = $%d", len(args)+1))
		args = append(args, *req.Picture)
	}

	if req.Provider != nil {
		setParts = append(setParts, fmt.Sprintf("provider = $%d", len(args)+1))
		args = append(args, *req.Provider)
	}

	if req.EmailVerified != nil {
		setParts = append(setParts, fmt.Sprintf("email_verified = $%d", len(args)+1))
		args = append(args, *req.EmailVerified)
	}

	if req.Rate != nil {
		setParts = append(setParts, fmt.Sprintf("rate = $%d", len(args)+1))
		args = append(args, *req.Rate)
	}

	if req.Cost != nil {
		setParts = append(setParts, fmt.Sprintf("cost = $%d", len(args)+1))
		args = append(args, *req.Cost)
	}

	if len(setParts) == 0 {
		return r.GetByID(ctx, id)
	}

	setParts = append(setParts, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
        UPDATE members
        SET %s
        WHERE id = $%d
        RETURNING %s
    `, strings.Join(setParts, ", "), len(args), memberColumns)

	var m Member
	err := r.db.GetContext(ctx, &m, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	return &m, nil
}

// Delete removes a member by ID. Tokens and profile rows go with it via
// FK cascade.
func (r *MemberRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM members WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}
