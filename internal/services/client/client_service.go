package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrClientAlreadyExists = errors.New("client already exists")

// ClientService contains business logic for clients
type ClientService struct {
	repo *ClientRepo
}

// NewClientService constructs a new ClientService
func NewClientService(repo *ClientRepo) *ClientService {
	return &ClientService{repo: repo}
}

// Create registers a new client ensuring name uniqueness
func (s *ClientService) Create(ctx context.Context, req *CreateClientRequest) (*Client, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("client name is required")
	}

	if _, err := s.repo.GetByName(ctx, req.Name); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrClientAlreadyExists, req.Name)
	} else if !errors.Is(err, ErrClientNotFound) {
		return nil, fmt.Errorf("failed to validate client name: %w", err)
	}

	c, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return c, nil
}

// GetByID fetches a client by its identifier
func (s *ClientService) GetByID(ctx context.Context, id uuid.UUID) (*Client, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return c, nil
}

// List returns all clients
func (s *ClientService) List(ctx context.Context) ([]*Client, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	return clients, nil
}

// Update modifies mutable client fields
func (s *ClientService) Update(ctx context.Context, id uuid.UUID, req *UpdateClientRequest) (*Client, error) {
	if req.Name != nil {
		if existing, err := s.repo.GetByName(ctx, *req.Name); err == nil && existing.ID != id {
			return nil, fmt.Errorf("%w: %s", ErrClientAlreadyExists, *req.Name)
		} else if err != nil && !errors.Is(err, ErrClientNotFound) {
			return nil, fmt.Errorf("failed to validate client name: %w", err)
		}
	}

	c, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return c, nil
}

// Delete removes a client by ID
func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrClientNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("failed to delete client: %w", err)
	}

	return nil
}
