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

const projectColumns = `id, client_id, name, type, status, priority, deadline, completed_on,
	description, value, notes, owner_id, assignee_id, tags, created_at, updated_at`

// SQLiteProjectRepo implements ProjectRepo over a db.DBTX.
type SQLiteProjectRepo struct {
	conn db.DBTX
}

func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{conn: conn}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		p.ID,
		p.ClientID,
		p.Name,
		p.Type,
		p.Status,
		nullableStr(string(p.Priority)),
		nullableTimeToString(p.Deadline, dateLayout),
		nullableTimeToString(p.CompletedOn, dateLayout),
		p.Description,
		nullableFloatToValue(p.Value),
		p.Notes,
		p.OwnerID,
		nullableStr(p.AssigneeID),
		joinTags(p.Tags),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}

	for pos, item := range p.Checklist {
		if err := r.insertChecklistItem(ctx, p.ID, item, pos); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	row := r.conn.QueryRowContext(ctx, query, id)

	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Kind: "project", ID: id}
		}
		return nil, err
	}
	if err := r.loadChecklists(ctx, map[string]*domain.Project{p.ID: p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLiteProjectRepo) ListByClient(ctx context.Context, clientID string) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE client_id = ? ORDER BY created_at`
	return r.queryProjects(ctx, query, clientID)
}

func (r *SQLiteProjectRepo) ListAll(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at`
	return r.queryProjects(ctx, query)
}

func (r *SQLiteProjectRepo) queryProjects(ctx context.Context, query string, args ...any) ([]*domain.Project, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	byID := make(map[string]*domain.Project)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
		byID[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	if err := r.loadChecklists(ctx, byID); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) loadChecklists(ctx context.Context, projects map[string]*domain.Project) error {
	if len(projects) == 0 {
		return nil
	}
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, project_id, text, done FROM checklist_items ORDER BY project_id, position`)
	if err != nil {
		return fmt.Errorf("listing checklist items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.ChecklistItem
		var projectID string
		var done int
		if err := rows.Scan(&item.ID, &projectID, &item.Text, &done); err != nil {
			return fmt.Errorf("scanning checklist item: %w", err)
		}
		item.Done = intToBool(done)
		if p, ok := projects[projectID]; ok {
			p.Checklist = append(p.Checklist, item)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating checklist items: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET name = ?, type = ?, status = ?, priority = ?, deadline = ?,
		completed_on = ?, description = ?, value = ?, notes = ?, owner_id = ?, assignee_id = ?,
		tags = ?, updated_at = ? WHERE id = ?`
	res, err := r.conn.ExecContext(ctx, query,
		p.Name,
		p.Type,
		p.Status,
		nullableStr(string(p.Priority)),
		nullableTimeToString(p.Deadline, dateLayout),
		nullableTimeToString(p.CompletedOn, dateLayout),
		p.Description,
		nullableFloatToValue(p.Value),
		p.Notes,
		p.OwnerID,
		nullableStr(p.AssigneeID),
		joinTags(p.Tags),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &domain.NotFoundError{Kind: "project", ID: p.ID}
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.conn.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) AddChecklistItem(ctx context.Context, projectID string, item domain.ChecklistItem) error {
	var next int
	row := r.conn.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position) + 1, 0) FROM checklist_items WHERE project_id = ?`, projectID)
	if err := row.Scan(&next); err != nil {
		return fmt.Errorf("finding checklist position: %w", err)
	}
	return r.insertChecklistItem(ctx, projectID, item, next)
}

func (r *SQLiteProjectRepo) insertChecklistItem(ctx context.Context, projectID string, item domain.ChecklistItem, pos int) error {
	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO checklist_items (id, project_id, text, done, position) VALUES (?, ?, ?, ?, ?)`,
		item.ID, projectID, item.Text, boolToInt(item.Done), pos)
	if err != nil {
		return fmt.Errorf("inserting checklist item: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) SetChecklistItemDone(ctx context.Context, projectID, itemID string, done bool) error {
	res, err := r.conn.ExecContext(ctx,
		`UPDATE checklist_items SET done = ? WHERE id = ? AND project_id = ?`,
		boolToInt(done), itemID, projectID)
	if err != nil {
		return fmt.Errorf("updating checklist item: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &domain.NotFoundError{Kind: "checklist item", ID: itemID}
	}
	return nil
}

func (r *SQLiteProjectRepo) RemoveChecklistItem(ctx context.Context, projectID, itemID string) error {
	res, err := r.conn.ExecContext(ctx,
		`DELETE FROM checklist_items WHERE id = ? AND project_id = ?`, itemID, projectID)
	if err != nil {
		return fmt.Errorf("deleting checklist item: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &domain.NotFoundError{Kind: "checklist item", ID: itemID}
	}
	return nil
}

func (r *SQLiteProjectRepo) ReplaceChecklist(ctx context.Context, projectID string, items []domain.ChecklistItem) error {
	if _, err := r.conn.ExecContext(ctx,
		`DELETE FROM checklist_items WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("clearing checklist: %w", err)
	}
	for pos, item := range items {
		if err := r.insertChecklistItem(ctx, projectID, item, pos); err != nil {
			return err
		}
	}
	return nil
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var createdAtStr, updatedAtStr string
	var priorityStr, deadlineStr, completedStr, assigneeStr sql.NullString
	var value sql.NullFloat64
	var tagsStr string

	err := row.Scan(
		&p.ID, &p.ClientID, &p.Name, &p.Type, &p.Status,
		&priorityStr, &deadlineStr, &completedStr,
		&p.Description, &value, &p.Notes,
		&p.OwnerID, &assigneeStr, &tagsStr,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	if priorityStr.Valid {
		p.Priority = domain.Priority(priorityStr.String)
	}
	p.Deadline = parseNullableDate(deadlineStr)
	p.CompletedOn = parseNullableDate(completedStr)
	if value.Valid {
		p.Value = &value.Float64
	}
	if assigneeStr.Valid {
		p.AssigneeID = assigneeStr.String
	}
	p.Tags = splitTags(tagsStr)
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAtStr)
	return &p, nil
}

// nullableStr converts an empty string to SQL NULL.
func nullableStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
