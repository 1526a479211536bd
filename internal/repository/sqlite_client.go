package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rferraz/clientdesk/internal/db"
	"github.com/rferraz/clientdesk/internal/domain"
)

// SQLiteClientRepo implements ClientRepo over a db.DBTX, so the same
// implementation serves both plain reads and transactional writes.
type SQLiteClientRepo struct {
	conn db.DBTX
}

func NewSQLiteClientRepo(conn db.DBTX) *SQLiteClientRepo {
	return &SQLiteClientRepo{conn: conn}
}

func (r *SQLiteClientRepo) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (id, name, priority, owner_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		c.ID,
		c.Name,
		string(c.Priority),
		c.OwnerID,
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting client: %w", err)
	}
	return nil
}

func (r *SQLiteClientRepo) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	query := `SELECT id, name, priority, owner_id, created_at, updated_at
		FROM clients WHERE id = ?`
	row := r.conn.QueryRowContext(ctx, query, id)

	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Kind: "client", ID: id}
		}
		return nil, err
	}

	projects := NewSQLiteProjectRepo(r.conn)
	list, err := projects.ListByClient(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("loading client projects: %w", err)
	}
	c.Projects = make([]domain.Project, len(list))
	for i, p := range list {
		c.Projects[i] = *p
	}
	return c, nil
}

func (r *SQLiteClientRepo) List(ctx context.Context) ([]*domain.Client, error) {
	query := `SELECT id, name, priority, owner_id, created_at, updated_at
		FROM clients ORDER BY created_at`
	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var clients []*domain.Client
	byID := make(map[string]*domain.Client)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
		byID[c.ID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating clients: %w", err)
	}

	// Attach projects in one pass instead of a query per client.
	projects, err := NewSQLiteProjectRepo(r.conn).ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	for _, p := range projects {
		if c, ok := byID[p.ClientID]; ok {
			c.Projects = append(c.Projects, *p)
		}
	}
	return clients, nil
}

func (r *SQLiteClientRepo) Update(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients SET name = ?, priority = ?, owner_id = ?, updated_at = ? WHERE id = ?`
	res, err := r.conn.ExecContext(ctx, query,
		c.Name,
		string(c.Priority),
		c.OwnerID,
		c.UpdatedAt.Format(time.RFC3339),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating client: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &domain.NotFoundError{Kind: "client", ID: c.ID}
	}
	return nil
}

func (r *SQLiteClientRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.conn.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var c domain.Client
	var priorityStr, createdAtStr, updatedAtStr string
	if err := row.Scan(&c.ID, &c.Name, &priorityStr, &c.OwnerID, &createdAtStr, &updatedAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning client: %w", err)
	}
	c.Priority = domain.Priority(priorityStr)
	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	c.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAtStr)
	return &c, nil
}
