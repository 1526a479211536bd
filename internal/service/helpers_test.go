package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/rferraz/clientdesk/internal/config"
	"github.com/rferraz/clientdesk/internal/db"
	"github.com/rferraz/clientdesk/internal/domain"
	"github.com/rferraz/clientdesk/internal/repository"
	"github.com/stretchr/testify/require"
)

// testEnv wires real repositories over an in-memory database, mirroring
// the production wiring in cmd/clientdesk.
type testEnv struct {
	db         *sql.DB
	vocab      *domain.Vocabulary
	clients    ClientService
	projects   ProjectService
	users      UserService
	delegation DelegationService
	dashboard  DashboardService
	calendar   CalendarService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	cfg := config.Default()
	vocab := cfg.ToVocabulary()

	clientRepo := repository.NewSQLiteClientRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	return &testEnv{
		db:         database,
		vocab:      vocab,
		clients:    NewClientService(clientRepo),
		projects:   NewProjectService(projectRepo, clientRepo, vocab),
		users:      NewUserService(userRepo),
		delegation: NewDelegationService(clientRepo, userRepo, uow, vocab),
		dashboard:  NewDashboardService(clientRepo, vocab, cfg.Dashboard),
		calendar:   NewCalendarService(clientRepo, vocab),
	}
}

func (e *testEnv) addClient(t *testing.T, name string, priority domain.Priority) *domain.Client {
	t.Helper()
	c := &domain.Client{Name: name, Priority: priority, OwnerID: "owner-1"}
	require.NoError(t, e.clients.Create(context.Background(), c))
	return c
}

func (e *testEnv) addUser(t *testing.T, username string, role domain.Role) *domain.User {
	t.Helper()
	u := &domain.User{Username: username, Role: role}
	require.NoError(t, e.users.Create(context.Background(), u))
	return u
}

func (e *testEnv) addProject(t *testing.T, clientID string, mutate func(*domain.Project)) *domain.Project {
	t.Helper()
	p := &domain.Project{
		ClientID: clientID,
		Name:     "Website",
		Type:     "development",
		OwnerID:  "owner-1",
	}
	if mutate != nil {
		mutate(p)
	}
	require.NoError(t, e.projects.Create(context.Background(), p))
	return p
}

func adminSession() domain.Session {
	return domain.Session{UserID: "admin-1", Username: "admin", Role: domain.RoleAdmin}
}

func localToday() time.Time {
	return domain.Midnight(time.Now().In(time.Local))
}

func localDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}
