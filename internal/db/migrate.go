package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent
// (CREATE ... IF NOT EXISTS) so the full list re-runs on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		username   TEXT NOT NULL UNIQUE,
		email      TEXT,
		role       TEXT NOT NULL DEFAULT 'user'
		           CHECK(role IN ('admin','user')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS clients (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		priority   TEXT NOT NULL DEFAULT 'medium'
		           CHECK(priority IN ('high','medium','low')),
		owner_id   TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_clients_owner ON clients(owner_id)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id           TEXT PRIMARY KEY,
		client_id    TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		name         TEXT NOT NULL,
		type         TEXT NOT NULL,
		status       TEXT NOT NULL,
		priority     TEXT,
		deadline     TEXT,
		completed_on TEXT,
		description  TEXT NOT NULL DEFAULT '',
		value        REAL,
		notes        TEXT NOT NULL DEFAULT '',
		owner_id     TEXT NOT NULL,
		assignee_id  TEXT,
		tags         TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_client ON projects(client_id)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_owner ON projects(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_deadline ON projects(deadline)`,

	`CREATE TABLE IF NOT EXISTS checklist_items (
		id         TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		text       TEXT NOT NULL,
		done       INTEGER NOT NULL DEFAULT 0,
		position   INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_checklist_items_project ON checklist_items(project_id)`,
}
