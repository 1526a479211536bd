package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rferraz/clientdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProject(t *testing.T, clients *SQLiteClientRepo, mutate func(*domain.Project)) (*SQLiteProjectRepo, *domain.Project) {
	t.Helper()
	c := seedClient(t, clients, "Acme Corp")
	projects := NewSQLiteProjectRepo(clients.conn)

	now := time.Now().UTC().Truncate(time.Second)
	p := &domain.Project{
		ID:        uuid.New().String(),
		ClientID:  c.ID,
		Name:      "Website",
		Type:      "development",
		Status:    "in-progress",
		OwnerID:   "owner-1",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if mutate != nil {
		mutate(p)
	}
	require.NoError(t, projects.Create(context.Background(), p))
	return projects, p
}

func TestProjectRepo_RoundTripOptionalFields(t *testing.T) {
	value := 2500.0
	deadline := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)
	projects, p := seedProject(t, openTestDB(t), func(p *domain.Project) {
		p.Priority = domain.PriorityHigh
		p.Deadline = &deadline
		p.Description = "Full site rebuild"
		p.Value = &value
		p.Notes = "hourly billing"
		p.AssigneeID = "user-2"
		p.Tags = []string{"retainer", "web"}
	})

	got, err := projects.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	require.NotNil(t, got.Deadline)
	assert.True(t, deadline.Equal(*got.Deadline), "deadline must survive as the same local calendar day")
	assert.Nil(t, got.CompletedOn)
	assert.Equal(t, "Full site rebuild", got.Description)
	require.NotNil(t, got.Value)
	assert.Equal(t, 2500.0, *got.Value)
	assert.Equal(t, "user-2", got.AssigneeID)
	assert.Equal(t, []string{"retainer", "web"}, got.Tags)
}

func TestProjectRepo_EmptyOptionalFieldsStayAbsent(t *testing.T) {
	projects, p := seedProject(t, openTestDB(t), nil)

	got, err := projects.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Priority)
	assert.Nil(t, got.Deadline)
	assert.Nil(t, got.Value)
	assert.Empty(t, got.AssigneeID)
	assert.Nil(t, got.Tags)
}

func TestProjectRepo_Update(t *testing.T) {
	projects, p := seedProject(t, openTestDB(t), nil)

	completed := time.Date(2025, 1, 31, 0, 0, 0, 0, time.Local)
	p.Status = "completed"
	p.CompletedOn = &completed
	p.UpdatedAt = time.Now().UTC()
	require.NoError(t, projects.Update(context.Background(), p))

	got, err := projects.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)
	require.NotNil(t, got.CompletedOn)
	assert.True(t, completed.Equal(*got.CompletedOn))
}

func TestProjectRepo_ChecklistLifecycle(t *testing.T) {
	projects, p := seedProject(t, openTestDB(t), nil)
	ctx := context.Background()

	first := domain.ChecklistItem{ID: uuid.New().String(), Text: "Kickoff"}
	second := domain.ChecklistItem{ID: uuid.New().String(), Text: "Launch"}
	require.NoError(t, projects.AddChecklistItem(ctx, p.ID, first))
	require.NoError(t, projects.AddChecklistItem(ctx, p.ID, second))

	require.NoError(t, projects.SetChecklistItemDone(ctx, p.ID, first.ID, true))

	got, err := projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Checklist, 2)
	assert.Equal(t, "Kickoff", got.Checklist[0].Text)
	assert.True(t, got.Checklist[0].Done)
	assert.False(t, got.Checklist[1].Done)

	require.NoError(t, projects.RemoveChecklistItem(ctx, p.ID, first.ID))
	got, err = projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Checklist, 1)
	assert.Equal(t, "Launch", got.Checklist[0].Text)
}

func TestProjectRepo_ReplaceChecklistKeepsOrder(t *testing.T) {
	projects, p := seedProject(t, openTestDB(t), func(p *domain.Project) {
		p.Checklist = []domain.ChecklistItem{
			{ID: uuid.New().String(), Text: "a"},
			{ID: uuid.New().String(), Text: "b"},
		}
	})
	ctx := context.Background()

	replacement := []domain.ChecklistItem{
		{ID: uuid.New().String(), Text: "third"},
		{ID: uuid.New().String(), Text: "first"},
		{ID: uuid.New().String(), Text: "second"},
	}
	require.NoError(t, projects.ReplaceChecklist(ctx, p.ID, replacement))

	got, err := projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Checklist, 3)
	assert.Equal(t, "third", got.Checklist[0].Text)
	assert.Equal(t, "first", got.Checklist[1].Text)
	assert.Equal(t, "second", got.Checklist[2].Text)
}

func TestProjectRepo_ChecklistItemNotFound(t *testing.T) {
	projects, p := seedProject(t, openTestDB(t), nil)

	err := projects.SetChecklistItemDone(context.Background(), p.ID, "ghost", true)
	var nerr *domain.NotFoundError
	assert.ErrorAs(t, err, &nerr)
}
