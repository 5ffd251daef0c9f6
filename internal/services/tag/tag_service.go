package tag

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrTagAlreadyExists = errors.New("tag with this name already exists")

// TagService provides tag business logic
type TagService struct {
	repo *TagRepo
}

// NewTagService creates a new tag service
func NewTagService(repo *TagRepo) *TagService {
	return &TagService{repo: repo}
}

// Create creates a new tag, enforcing name uniqueness
func (s *TagService) Create(ctx context.Context, req *CreateTagRequest) (*Tag, error) {
	existing, err := s.repo.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, ErrTagNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrTagAlreadyExists
	}

	return s.repo.Create(ctx, req)
}

// GetByID retrieves a tag by ID
func (s *TagService) GetByID(ctx context.Context, id uuid.UUID) (*Tag, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves all tags
func (s *TagService) List(ctx context.Context) ([]*Tag, error) {
	return s.repo.List(ctx)
}

// Update updates a tag, enforcing name uniqueness when renaming
func (s *TagService) Update(ctx context.Context, id uuid.UUID, req *UpdateTagRequest) (*Tag, error) {
	if req.Name != nil {
		existing, err := s.repo.GetByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, ErrTagNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrTagAlreadyExists
		}
	}

	return s.repo.Update(ctx, id, req)
}

// Delete removes a tag
func (s *TagService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
