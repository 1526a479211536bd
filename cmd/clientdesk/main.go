package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rferraz/clientdesk/internal/cli"
	"github.com/rferraz/clientdesk/internal/config"
	"github.com/rferraz/clientdesk/internal/db"
	"github.com/rferraz/clientdesk/internal/domain"
	"github.com/rferraz/clientdesk/internal/repository"
	"github.com/rferraz/clientdesk/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.clientdesk/clientdesk.db
	dbPath := os.Getenv("CLIENTDESK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".clientdesk", "clientdesk.db")
	}

	// Determine config path: env var or default ~/.clientdesk/config.yaml.
	// A missing file falls back to the built-in vocabulary.
	cfgPath := os.Getenv("CLIENTDESK_CONFIG")
	if cfgPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		cfgPath = filepath.Join(home, ".clientdesk", "config.yaml")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	vocab := cfg.ToVocabulary()

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	clientRepo := repository.NewSQLiteClientRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	session, err := resolveSession(userRepo)
	if err != nil {
		return err
	}

	app := &cli.App{
		Clients:    service.NewClientService(clientRepo),
		Projects:   service.NewProjectService(projectRepo, clientRepo, vocab),
		Users:      service.NewUserService(userRepo),
		Delegation: service.NewDelegationService(clientRepo, userRepo, uow, vocab),
		Dashboard:  service.NewDashboardService(clientRepo, vocab, cfg.Dashboard),
		Calendar:   service.NewCalendarService(clientRepo, vocab),

		Session: session,
		Vocab:   vocab,
		DBPath:  dbPath,

		Interactive: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}
	app.ResolveSession = func(username string) (domain.Session, error) {
		return sessionFor(userRepo, username)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// resolveSession builds the acting session from CLIENTDESK_USER; the
// --as-user flag overrides it later via App.ResolveSession.
func resolveSession(users repository.UserRepo) (domain.Session, error) {
	username := strings.TrimSpace(os.Getenv("CLIENTDESK_USER"))
	if username == "" {
		username = "admin"
	}
	return sessionFor(users, username)
}

// sessionFor maps a username to a session. A name that matches a stored
// user carries that user's id and role. When the user table is still
// empty the session is a bootstrap admin so the first users can be
// created; an unknown name on a populated table gets a plain user
// session.
func sessionFor(users repository.UserRepo, username string) (domain.Session, error) {
	existing, err := users.List(context.Background())
	if err != nil {
		return domain.Session{}, fmt.Errorf("loading users: %w", err)
	}

	for _, u := range existing {
		if strings.EqualFold(u.Username, username) {
			return domain.Session{UserID: u.ID, Username: u.Username, Role: u.Role}, nil
		}
	}

	role := domain.RoleUser
	if len(existing) == 0 {
		role = domain.RoleAdmin
	}
	return domain.Session{Username: username, Role: role}, nil
}
