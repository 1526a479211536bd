package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rferraz/clientdesk/internal/domain"
	"github.com/rferraz/clientdesk/internal/repository"
)

type clientService struct {
	clients repository.ClientRepo
}

func NewClientService(clients repository.ClientRepo) ClientService {
	return &clientService{clients: clients}
}

func (s *clientService) Create(ctx context.Context, c *domain.Client) error {
	if strings.TrimSpace(c.Name) == "" {
		return domain.NewValidationError("name", "client name is required")
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Priority == "" {
		c.Priority = domain.PriorityMedium
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.clients.Create(ctx, c)
}

func (s *clientService) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	return s.clients.GetByID(ctx, id)
}

func (s *clientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.clients.List(ctx)
}

func (s *clientService) ListByUrgency(ctx context.Context, today time.Time) ([]*domain.Client, error) {
	list, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	clients := make([]domain.Client, len(list))
	for i, c := range list {
		clients[i] = *c
	}
	ordered := domain.PartitionClientsByUrgency(clients, today)
	out := make([]*domain.Client, len(ordered))
	for i := range ordered {
		out[i] = &ordered[i]
	}
	return out, nil
}

func (s *clientService) Update(ctx context.Context, c *domain.Client) error {
	if strings.TrimSpace(c.Name) == "" {
		return domain.NewValidationError("name", "client name is required")
	}
	c.UpdatedAt = time.Now().UTC()
	return s.clients.Update(ctx, c)
}

func (s *clientService) Delete(ctx context.Context, id string) error {
	return s.clients.Delete(ctx, id)
}
