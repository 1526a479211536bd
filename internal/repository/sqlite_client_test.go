package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rferraz/clientdesk/internal/db"
	"github.com/rferraz/clientdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *SQLiteClientRepo {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewSQLiteClientRepo(database)
}

func seedClient(t *testing.T, repo *SQLiteClientRepo, name string) *domain.Client {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Second)
	c := &domain.Client{
		ID:        uuid.New().String(),
		Name:      name,
		Priority:  domain.PriorityMedium,
		OwnerID:   "owner-1",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func TestClientRepo_CreateAndGet(t *testing.T) {
	repo := openTestDB(t)
	created := seedClient(t, repo, "Acme Corp")

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", got.Name)
	assert.Equal(t, domain.PriorityMedium, got.Priority)
	assert.Equal(t, "owner-1", got.OwnerID)
	assert.Empty(t, got.Projects)
}

func TestClientRepo_GetLoadsProjectsWithChecklists(t *testing.T) {
	clients := openTestDB(t)
	projects := NewSQLiteProjectRepo(clients.conn)
	c := seedClient(t, clients, "Acme Corp")

	now := time.Now().UTC()
	p := &domain.Project{
		ID:       uuid.New().String(),
		ClientID: c.ID,
		Name:     "Website",
		Type:     "development",
		Status:   "in-progress",
		OwnerID:  "owner-1",
		Checklist: []domain.ChecklistItem{
			{ID: uuid.New().String(), Text: "Wireframes", Done: true},
			{ID: uuid.New().String(), Text: "Launch"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, projects.Create(context.Background(), p))

	got, err := clients.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	require.Len(t, got.Projects, 1)
	require.Len(t, got.Projects[0].Checklist, 2)
	assert.Equal(t, "Wireframes", got.Projects[0].Checklist[0].Text)
	assert.True(t, got.Projects[0].Checklist[0].Done)
	assert.False(t, got.Projects[0].Checklist[1].Done)
}

func TestClientRepo_GetByID_NotFound(t *testing.T) {
	repo := openTestDB(t)

	_, err := repo.GetByID(context.Background(), "missing")
	var nerr *domain.NotFoundError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "client", nerr.Kind)
}

func TestClientRepo_ListAttachesProjects(t *testing.T) {
	clients := openTestDB(t)
	projects := NewSQLiteProjectRepo(clients.conn)

	seedClient(t, clients, "Alpha")
	b := seedClient(t, clients, "Beta")

	now := time.Now().UTC()
	require.NoError(t, projects.Create(context.Background(), &domain.Project{
		ID: uuid.New().String(), ClientID: b.ID, Name: "Rebrand", Type: "design",
		Status: "drafting", OwnerID: "owner-1", CreatedAt: now, UpdatedAt: now,
	}))

	list, err := clients.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	byName := map[string]*domain.Client{list[0].Name: list[0], list[1].Name: list[1]}
	assert.Empty(t, byName["Alpha"].Projects)
	require.Len(t, byName["Beta"].Projects, 1)
	assert.Equal(t, "Rebrand", byName["Beta"].Projects[0].Name)
}

func TestClientRepo_DeleteCascades(t *testing.T) {
	clients := openTestDB(t)
	projects := NewSQLiteProjectRepo(clients.conn)
	c := seedClient(t, clients, "Acme Corp")

	now := time.Now().UTC()
	p := &domain.Project{
		ID: uuid.New().String(), ClientID: c.ID, Name: "Website", Type: "development",
		Status: "in-progress", OwnerID: "owner-1",
		Checklist: []domain.ChecklistItem{{ID: uuid.New().String(), Text: "Launch"}},
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, projects.Create(context.Background(), p))

	require.NoError(t, clients.Delete(context.Background(), c.ID))

	_, err := projects.GetByID(context.Background(), p.ID)
	var nerr *domain.NotFoundError
	assert.ErrorAs(t, err, &nerr, "projects must cascade with their client")
}

func TestClientRepo_Update(t *testing.T) {
	repo := openTestDB(t)
	c := seedClient(t, repo, "Acme Corp")

	c.Name = "Acme Holdings"
	c.Priority = domain.PriorityHigh
	c.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(context.Background(), c))

	got, err := repo.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Holdings", got.Name)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
}

func TestClientRepo_UpdateMissing(t *testing.T) {
	repo := openTestDB(t)
	err := repo.Update(context.Background(), &domain.Client{ID: "ghost", Priority: domain.PriorityLow})
	var nerr *domain.NotFoundError
	assert.ErrorAs(t, err, &nerr)
}
