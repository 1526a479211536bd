package domain

import (
	"strings"

	"github.com/google/uuid"
)

// DelegatedCopy is the record set produced by BuildDelegatedCopy, ready
// to be persisted as one atomic unit.
type DelegatedCopy struct {
	Client   Client
	Projects []Project
}

// BuildDelegatedCopy constructs a brand-new client owned by targetUserID
// together with copies of the selected source projects. Only an admin
// session may delegate.
//
// Each copied project carries name and type only. Status is reset to the
// type's initial vocabulary entry and checklist items are copied by text
// with fresh identifiers and done cleared. Deadline, completion date,
// description, monetary value, notes, assignee and tags are deliberately
// dropped: they are considered source-owner-private. (Whether that drop
// is data-hiding or accident in the product is an open question; the
// behavior is preserved here.)
//
// Selecting zero projects is valid and copies the client alone; callers
// may warn but must not fail. Inputs are never mutated, and timestamps
// are left zero for the persistence layer to assign.
func BuildDelegatedCopy(session Session, source *Client, selectedProjectIDs []string, targetUserID, newClientName string, vocab *Vocabulary) (*DelegatedCopy, error) {
	if !session.IsAdmin() {
		return nil, &AuthorizationError{Actor: session.Username, Required: RoleAdmin}
	}
	if strings.TrimSpace(targetUserID) == "" {
		return nil, NewValidationError("target_user", "a target user is required")
	}
	name := strings.TrimSpace(newClientName)
	if name == "" {
		return nil, NewValidationError("name", "the delegated client name must not be empty")
	}

	selected := make(map[string]bool, len(selectedProjectIDs))
	for _, id := range selectedProjectIDs {
		if source.ProjectByID(id) == nil {
			return nil, &NotFoundError{Kind: "project", ID: id}
		}
		selected[id] = true
	}

	copyClient := Client{
		ID:       uuid.New().String(),
		Name:     name,
		Priority: PriorityMedium,
		OwnerID:  targetUserID,
	}

	// Walk source order so the result is independent of selection order.
	var projects []Project
	for i := range source.Projects {
		src := &source.Projects[i]
		if !selected[src.ID] {
			continue
		}
		projects = append(projects, Project{
			ID:        uuid.New().String(),
			ClientID:  copyClient.ID,
			Name:      src.Name,
			Type:      src.Type,
			Status:    vocab.InitialStatus(src.Type),
			OwnerID:   targetUserID,
			Checklist: resetChecklist(src.Checklist),
		})
	}

	return &DelegatedCopy{Client: copyClient, Projects: projects}, nil
}

func resetChecklist(items []ChecklistItem) []ChecklistItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]ChecklistItem, len(items))
	for i, item := range items {
		out[i] = ChecklistItem{
			ID:   uuid.New().String(),
			Text: item.Text,
			Done: false,
		}
	}
	return out
}
