package service

import (
	"context"
	"time"

	"github.com/rferraz/clientdesk/internal/domain"
)

type ClientService interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	// ListByUrgency returns clients partitioned into the stable urgency
	// groups used by the client list view.
	ListByUrgency(ctx context.Context, today time.Time) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id string) error
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	// ListByClient returns the client's projects in display order
	// (priority, then deadline urgency).
	ListByClient(ctx context.Context, clientID string, today time.Time) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error

	AddChecklistItem(ctx context.Context, projectID, text string) (*domain.ChecklistItem, error)
	ToggleChecklistItem(ctx context.Context, projectID, itemID string) (bool, error)
	RemoveChecklistItem(ctx context.Context, projectID, itemID string) error
	ReorderChecklist(ctx context.Context, projectID string, itemIDs []string) error
}

type UserService interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Update changes email and role. Usernames are immutable here; see Rename.
	Update(ctx context.Context, u *domain.User) error
	// Rename changes a username. Only an admin session may do this.
	Rename(ctx context.Context, session domain.Session, userID, newUsername string) error
	Delete(ctx context.Context, id string) error
}

// DelegationRequest names the inputs of a delegation: which client, which
// of its projects, to whom, and under what display name (empty defaults
// to the source client's name).
type DelegationRequest struct {
	SourceClientID string
	ProjectIDs     []string
	TargetUserID   string
	NewName        string
}

// DelegationResult reports what was persisted. Warning is set for the
// valid-but-unusual zero-project delegation.
type DelegationResult struct {
	Client   *domain.Client
	Projects []domain.Project
	Warning  string
}

type DelegationService interface {
	Delegate(ctx context.Context, session domain.Session, req DelegationRequest) (*DelegationResult, error)
}

// ClientValue is a client's summed project value, used by the top-clients
// dashboard list.
type ClientValue struct {
	ClientID   string
	ClientName string
	Total      float64
}

// MonthValue is the summed value of projects completed in one month.
type MonthValue struct {
	Year  int
	Month time.Month
	Total float64
}

// DashboardSummary holds the derived aggregates for the metrics view.
type DashboardSummary struct {
	ClientCount        int
	ProjectCount       int
	OpenProjectCount   int
	CompletedThisMonth int
	Buckets            map[domain.UrgencyBucket]int
	TopClients         []ClientValue
	MonthlyValues      []MonthValue
}

type DashboardService interface {
	Summary(ctx context.Context, today time.Time) (*DashboardSummary, error)
}

// CalendarEntry is one project occurrence on a calendar day.
type CalendarEntry struct {
	Project    domain.Project
	ClientName string
	Badge      domain.DeadlineBadge
}

// CalendarMonth maps day-of-month to the deadlines (and completions)
// falling on it.
type CalendarMonth struct {
	Year  int
	Month time.Month
	Days  map[int][]CalendarEntry
}

type CalendarService interface {
	Month(ctx context.Context, year int, month time.Month, today time.Time) (*CalendarMonth, error)
}
