package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrEmailTaken = errors.New("email already registered")

// MemberService contains business logic for the members CRUD surface
type MemberService struct {
	repo *MemberRepo
}

// NewMemberService constructs a new MemberService
func NewMemberService(repo *MemberRepo) *MemberService {
	return &MemberService{repo: repo}
}

// Create adds a new member ensuring email uniqueness
func (s *MemberService) Create(ctx context.Context, req *CreateMemberRequest) (*Member, error) {
	if req.Name == "" || req.Email == "" {
		return nil, fmt.Errorf("member name and email are required")
	}

	if req.Provider == "" {
		req.Provider = ProviderEmail
	}

	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrEmailTaken, req.Email)
	} else if !errors.Is(err, ErrMemberNotFound) {
		return nil, fmt.Errorf("failed to validate member email: %w", err)
	}

	m, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return m, nil
}

// GetByID fetches a member by its identifier
func (s *MemberService) GetByID(ctx context.Context, id uuid.UUID) (*Member, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return m, nil
}

// List returns all members ordered by creation time
func (s *MemberService) List(ctx context.Context) ([]*Member, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return members, nil
}

// Update modifies mutable member fields
func (s *MemberService) Update(ctx context.Context, id uuid.UUID, req *UpdateMemberRequest) (*Member, error) {
	m, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	return m, nil
}

// Delete removes a member by ID
func (s *MemberService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to delete member: %w", err)
	}

	return nil
}
