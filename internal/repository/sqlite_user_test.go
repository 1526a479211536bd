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

func seedUser(t *testing.T, repo *SQLiteUserRepo, username string, role domain.Role) *domain.User {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Second)
	u := &domain.User{
		ID:        uuid.New().String(),
		Username:  username,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestUserRepo_CreateAndGet(t *testing.T) {
	clients := openTestDB(t)
	repo := NewSQLiteUserRepo(clients.conn)
	u := seedUser(t, repo, "morgan", domain.RoleAdmin)

	got, err := repo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "morgan", got.Username)
	assert.Equal(t, domain.RoleAdmin, got.Role)
	assert.Empty(t, got.Email)

	got, err = repo.GetByUsername(context.Background(), "morgan")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestUserRepo_UsernameUnique(t *testing.T) {
	clients := openTestDB(t)
	repo := NewSQLiteUserRepo(clients.conn)
	seedUser(t, repo, "morgan", domain.RoleUser)

	now := time.Now().UTC()
	err := repo.Create(context.Background(), &domain.User{
		ID: uuid.New().String(), Username: "morgan", Role: domain.RoleUser,
		CreatedAt: now, UpdatedAt: now,
	})
	assert.Error(t, err, "duplicate usernames must be rejected by the schema")
}

func TestUserRepo_NotFound(t *testing.T) {
	clients := openTestDB(t)
	repo := NewSQLiteUserRepo(clients.conn)

	_, err := repo.GetByID(context.Background(), "ghost")
	var nerr *domain.NotFoundError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "user", nerr.Kind)
}

func TestUserRepo_ListOrderedByUsername(t *testing.T) {
	clients := openTestDB(t)
	repo := NewSQLiteUserRepo(clients.conn)
	seedUser(t, repo, "zoe", domain.RoleUser)
	seedUser(t, repo, "alex", domain.RoleUser)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alex", users[0].Username)
	assert.Equal(t, "zoe", users[1].Username)
}

func TestUserRepo_UpdateAndDelete(t *testing.T) {
	clients := openTestDB(t)
	repo := NewSQLiteUserRepo(clients.conn)
	u := seedUser(t, repo, "morgan", domain.RoleUser)

	u.Email = "morgan@example.com"
	u.Role = domain.RoleAdmin
	u.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(context.Background(), u))

	got, err := repo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "morgan@example.com", got.Email)
	assert.Equal(t, domain.RoleAdmin, got.Role)

	require.NoError(t, repo.Delete(context.Background(), u.ID))
	_, err = repo.GetByID(context.Background(), u.ID)
	assert.Error(t, err)
}
