package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rferraz/clientdesk/internal/domain"
	"github.com/rferraz/clientdesk/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
	clients  repository.ClientRepo
	vocab    *domain.Vocabulary
}

func NewProjectService(projects repository.ProjectRepo, clients repository.ClientRepo, vocab *domain.Vocabulary) ProjectService {
	return &projectService{projects: projects, clients: clients, vocab: vocab}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if strings.TrimSpace(p.Name) == "" {
		return domain.NewValidationError("name", "project name is required")
	}
	if s.vocab.TypeByName(p.Type) == nil {
		return domain.NewValidationError("type", fmt.Sprintf("unknown project type %q", p.Type))
	}
	if p.Status == "" {
		p.Status = s.vocab.InitialStatus(p.Type)
	}
	if err := s.validateStatus(p); err != nil {
		return err
	}
	if err := validatePriority(p.Priority); err != nil {
		return err
	}
	// The client must exist; a NotFoundError here beats a bare FK failure.
	if _, err := s.clients.GetByID(ctx, p.ClientID); err != nil {
		return err
	}

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	for i := range p.Checklist {
		if p.Checklist[i].ID == "" {
			p.Checklist[i].ID = uuid.New().String()
		}
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) ListByClient(ctx context.Context, clientID string, today time.Time) ([]*domain.Project, error) {
	list, err := s.projects.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	projects := make([]domain.Project, len(list))
	for i, p := range list {
		projects[i] = *p
	}
	sorted := domain.SortProjects(projects, today)
	out := make([]*domain.Project, len(sorted))
	for i := range sorted {
		out[i] = &sorted[i]
	}
	return out, nil
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	if err := s.validateStatus(p); err != nil {
		return err
	}
	if err := validatePriority(p.Priority); err != nil {
		return err
	}
	// Reaching the completed status stamps the completion date once;
	// an explicit CompletedOn from the caller wins.
	if s.vocab.IsCompleted(p.Status) && p.CompletedOn == nil {
		today := domain.Midnight(time.Now().In(time.Local))
		p.CompletedOn = &today
	}
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}

func (s *projectService) AddChecklistItem(ctx context.Context, projectID, text string) (*domain.ChecklistItem, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError("text", "checklist item text is required")
	}
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	item := domain.ChecklistItem{ID: uuid.New().String(), Text: text}
	if err := s.projects.AddChecklistItem(ctx, projectID, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *projectService) ToggleChecklistItem(ctx context.Context, projectID, itemID string) (bool, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return false, err
	}
	for _, item := range p.Checklist {
		if item.ID == itemID {
			done := !item.Done
			if err := s.projects.SetChecklistItemDone(ctx, projectID, itemID, done); err != nil {
				return false, err
			}
			return done, nil
		}
	}
	return false, &domain.NotFoundError{Kind: "checklist item", ID: itemID}
}

func (s *projectService) RemoveChecklistItem(ctx context.Context, projectID, itemID string) error {
	return s.projects.RemoveChecklistItem(ctx, projectID, itemID)
}

func (s *projectService) ReorderChecklist(ctx context.Context, projectID string, itemIDs []string) error {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if len(itemIDs) != len(p.Checklist) {
		return domain.NewValidationError("items", "reorder must name every checklist item exactly once")
	}
	byID := make(map[string]domain.ChecklistItem, len(p.Checklist))
	for _, item := range p.Checklist {
		byID[item.ID] = item
	}
	ordered := make([]domain.ChecklistItem, 0, len(itemIDs))
	for _, id := range itemIDs {
		item, ok := byID[id]
		if !ok {
			return &domain.NotFoundError{Kind: "checklist item", ID: id}
		}
		ordered = append(ordered, item)
		delete(byID, id)
	}
	return s.projects.ReplaceChecklist(ctx, projectID, ordered)
}

func (s *projectService) validateStatus(p *domain.Project) error {
	if !s.vocab.ValidStatus(p.Type, p.Status) {
		return domain.NewValidationError("status",
			fmt.Sprintf("status %q is not valid for project type %q", p.Status, p.Type))
	}
	return nil
}

func validatePriority(p domain.Priority) error {
	switch p {
	case "", domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow:
		return nil
	default:
		return domain.NewValidationError("priority", fmt.Sprintf("unknown priority %q", p))
	}
}
