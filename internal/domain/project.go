package domain

import "time"

type Project struct {
	ID          string
	ClientID    string
	Name        string
	Type        string
	Status      string
	Priority    Priority // empty means unset, ranks with low
	Deadline    *time.Time
	CompletedOn *time.Time
	Description string
	Value       *float64
	Notes       string
	OwnerID     string
	AssigneeID  string
	Tags        []string
	Checklist   []ChecklistItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ChecklistItem struct {
	ID   string
	Text string
	Done bool
}

// DoneCount returns the number of completed checklist items.
func (p *Project) DoneCount() int {
	n := 0
	for _, item := range p.Checklist {
		if item.Done {
			n++
		}
	}
	return n
}

// DisplayID returns a short identifier for display, truncating the
// UUID to 8 characters.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
