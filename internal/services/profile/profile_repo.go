package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrProfileNotFound = errors.New("profile not found")

const profileColumns = `id, member_id, first_name, last_name, phone, job_title, company, bio, location, website, timezone, avatar, created_at, updated_at`

// ProfileRepo handles database operations for user profiles
type ProfileRepo struct {
	db *sqlx.DB
}

// NewProfileRepo creates a new profile repository
func NewProfileRepo(db *sqlx.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// GetByMemberID retrieves the profile belonging to a member
func (r *ProfileRepo) GetByMemberID(ctx context.Context, memberID uuid.UUID) (*UserProfile, error) {
	query := fmt.Sprintf(`SELECT %s FROM user_profiles WHERE member_id = $1`, profileColumns)

	var p UserProfile
	err := r.db.GetContext(ctx, &p, query, memberID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &p, nil
}

// Create inserts an empty profile row for a member
func (r *ProfileRepo) Create(ctx context.Context, memberID uuid.UUID, firstName, lastName string) (*UserProfile, error) {
	query := fmt.Sprintf(`
        INSERT INTO user_profiles (member_id, first_name, last_name)
        VALUES ($1, $2, $3)
        RETURNING %s
    `, profileColumns)

	var p UserProfile
	err := r.db.GetContext(ctx, &p, query, memberID, firstName, lastName)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return &p, nil
}

// Update updates profile fields for a member
func (r *ProfileRepo) Update(ctx context.Context, memberID uuid.UUID, req *UpdateProfileRequest) (*UserProfile, error) {
	setParts := []string{}
	args := []interface{}{}

	fields := []struct {
		column string
		value  *string
	}{
		{"first_name", req.FirstName},
		{"last_name", req.LastName},
		{"phone", req.Phone},
		{"job_title", req.JobTitle},
		{"company", req.Company},
		{"bio", req.Bio},
		{"location", req.Location},
		{"website", req.Website},
		{"timezone", req.Timezone},
		{"avatar", req.Avatar},
	}

	for _, f := range fields {
		if f.value != nil {
			setParts = append(setParts, fmt.Sprintf("%s = $%d", f.column, len(args)+1))
			args = append(args, *f.value)
		}
	}

	if len(setParts) == 0 {
		return r.GetByMemberID(ctx, memberID)
	}

	setParts = append(setParts, "updated_at = NOW()")
	args = append(args, memberID)

	query := fmt.Sprintf(`
        UPDATE user_profiles
        SET %s
        WHERE member_id = $%d
        RETURNING %s
    `, strings.Join(setParts, ", "), len(args), profileColumns)

	var p UserProfile
	err := r.db.GetContext(ctx, &p, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return &p, nil
}
