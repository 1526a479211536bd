package service

import (
	"context"
	"testing"

	"github.com/rferraz/clientdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelegate_CopiesClientAndSelectedProjects(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	source := env.addClient(t, "Acme Corp", domain.PriorityHigh)
	target := env.addUser(t, "jordan", domain.RoleUser)

	kept := env.addProject(t, source.ID, func(p *domain.Project) {
		p.Name = "Website"
		p.Status = "review"
		p.Checklist = []domain.ChecklistItem{
			{Text: "Wireframes", Done: true},
			{Text: "Launch"},
		}
	})
	env.addProject(t, source.ID, func(p *domain.Project) { p.Name = "Rebrand"; p.Type = "design" })

	result, err := env.delegation.Delegate(ctx, adminSession(), DelegationRequest{
		SourceClientID: source.ID,
		ProjectIDs:     []string{kept.ID},
		TargetUserID:   target.ID,
		NewName:        "Acme (jordan)",
	})
	require.NoError(t, err)
	assert.Empty(t, result.Warning)

	// The copy is persisted and fully owned by the target.
	got, err := env.clients.GetByID(ctx, result.Client.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme (jordan)", got.Name)
	assert.Equal(t, target.ID, got.OwnerID)
	require.Len(t, got.Projects, 1)

	p := got.Projects[0]
	assert.Equal(t, "Website", p.Name)
	assert.Equal(t, target.ID, p.OwnerID)
	assert.Equal(t, env.vocab.InitialStatus("development"), p.Status)
	require.Len(t, p.Checklist, 2)
	for _, item := range p.Checklist {
		assert.False(t, item.Done)
	}

	// The source is untouched.
	src, err := env.clients.GetByID(ctx, source.ID)
	require.NoError(t, err)
	require.Len(t, src.Projects, 2)
}

func TestDelegate_DefaultsNameToSource(t *testing.T) {
	env := newTestEnv(t)
	source := env.addClient(t, "Acme Corp", domain.PriorityMedium)
	target := env.addUser(t, "jordan", domain.RoleUser)

	result, err := env.delegation.Delegate(context.Background(), adminSession(), DelegationRequest{
		SourceClientID: source.ID,
		TargetUserID:   target.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", result.Client.Name)
}

func TestDelegate_ZeroProjectsWarnsButSucceeds(t *testing.T) {
	env := newTestEnv(t)
	source := env.addClient(t, "Acme Corp", domain.PriorityMedium)
	env.addProject(t, source.ID, nil)
	target := env.addUser(t, "jordan", domain.RoleUser)

	result, err := env.delegation.Delegate(context.Background(), adminSession(), DelegationRequest{
		SourceClientID: source.ID,
		TargetUserID:   target.ID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Warning)
	assert.Empty(t, result.Projects)
}

func TestDelegate_NonAdminRejected(t *testing.T) {
	env := newTestEnv(t)
	source := env.addClient(t, "Acme Corp", domain.PriorityMedium)
	target := env.addUser(t, "jordan", domain.RoleUser)

	session := domain.Session{UserID: target.ID, Username: "jordan", Role: domain.RoleUser}
	_, err := env.delegation.Delegate(context.Background(), session, DelegationRequest{
		SourceClientID: source.ID,
		TargetUserID:   target.ID,
	})
	var aerr *domain.AuthorizationError
	require.ErrorAs(t, err, &aerr)

	// Nothing was written.
	clients, listErr := env.clients.List(context.Background())
	require.NoError(t, listErr)
	assert.Len(t, clients, 1)
}

func TestDelegate_MissingTargetUser(t *testing.T) {
	env := newTestEnv(t)
	source := env.addClient(t, "Acme Corp", domain.PriorityMedium)

	_, err := env.delegation.Delegate(context.Background(), adminSession(), DelegationRequest{
		SourceClientID: source.ID,
		TargetUserID:   "ghost",
	})
	var nerr *domain.NotFoundError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "user", nerr.Kind)
}

func TestDelegate_UnknownProjectLeavesNoPartialWrite(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	source := env.addClient(t, "Acme Corp", domain.PriorityMedium)
	env.addProject(t, source.ID, nil)
	target := env.addUser(t, "jordan", domain.RoleUser)

	_, err := env.delegation.Delegate(ctx, adminSession(), DelegationRequest{
		SourceClientID: source.ID,
		ProjectIDs:     []string{"ghost"},
		TargetUserID:   target.ID,
	})
	var nerr *domain.NotFoundError
	require.ErrorAs(t, err, &nerr)

	clients, listErr := env.clients.List(ctx)
	require.NoError(t, listErr)
	assert.Len(t, clients, 1, "failed delegation must not create a client")
}
