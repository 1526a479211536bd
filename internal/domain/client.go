package domain

import "time"

type Client struct {
	ID        string
	Name      string
	Priority  Priority
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Projects is populated by repository loads that join projects in;
	// list queries may leave it nil.
	Projects []Project
}

// HasProjects reports whether the client owns at least one project.
func (c *Client) HasProjects() bool {
	return len(c.Projects) > 0
}

// ProjectByID returns the client's project with the given id, or nil.
func (c *Client) ProjectByID(id string) *Project {
	for i := range c.Projects {
		if c.Projects[i].ID == id {
			return &c.Projects[i]
		}
	}
	return nil
}
