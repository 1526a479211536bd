package repository

import (
	"context"

	"github.com/rferraz/clientdesk/internal/domain"
)

type ClientRepo interface {
	Create(ctx context.Context, c *domain.Client) error
	// GetByID loads the client with its projects and their checklists.
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	// List loads all clients with projects and checklists attached.
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	// Delete cascades to the client's projects and checklist items.
	Delete(ctx context.Context, id string) error
}

type ProjectRepo interface {
	// Create inserts the project together with its checklist items.
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Project, error)
	ListAll(ctx context.Context) ([]*domain.Project, error)
	// Update persists project fields; the checklist is managed through
	// the item-level methods below.
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error

	AddChecklistItem(ctx context.Context, projectID string, item domain.ChecklistItem) error
	SetChecklistItemDone(ctx context.Context, projectID, itemID string, done bool) error
	RemoveChecklistItem(ctx context.Context, projectID, itemID string) error
	// ReplaceChecklist rewrites the full checklist in the given order.
	ReplaceChecklist(ctx context.Context, projectID string, items []domain.ChecklistItem) error
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
}
