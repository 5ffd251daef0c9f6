package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ProfileService contains business logic for user profiles
type ProfileService struct {
	repo *ProfileRepo
}

// NewProfileService constructs a new ProfileService
func NewProfileService(repo *ProfileRepo) *ProfileService {
	return &ProfileService{repo: repo}
}

// GetOrCreate returns the member's profile, creating an empty one seeded from
// the member's display name on first access.
func (s *ProfileService) GetOrCreate(ctx context.Context, memberID uuid.UUID, memberName string) (*UserProfile, error) {
	p, err := s.repo.GetByMemberID(ctx, memberID)
	if err == nil {
		return p, nil
	}

	if !errors.Is(err, ErrProfileNotFound) {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	first, last := splitName(memberName)
	p, err = s.repo.Create(ctx, memberID, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return p, nil
}

// Update applies a partial update to the member's profile, creating the row
// first if the member never accessed it.
func (s *ProfileService) Update(ctx context.Context, memberID uuid.UUID, memberName string, req *UpdateProfileRequest) (*UserProfile, error) {
	if _, err := s.GetOrCreate(ctx, memberID, memberName); err != nil {
		return nil, err
	}

	p, err := s.repo.Update(ctx, memberID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return p, nil
}

func splitName(name string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(name), " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
