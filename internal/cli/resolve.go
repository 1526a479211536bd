package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rferraz/clientdesk/internal/domain"
)

func resolveClientID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("client ID is required")
	}

	clients, err := app.Clients.List(ctx)
	if err != nil {
		return "", err
	}

	// 1. Exact name match (case-insensitive)
	for _, c := range clients {
		if strings.EqualFold(c.Name, input) {
			return c.ID, nil
		}
	}

	// 2. Exact UUID match
	for _, c := range clients {
		if c.ID == input {
			return c.ID, nil
		}
	}

	// 3. UUID prefix match
	var matches []string
	for _, c := range clients {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("client not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("client ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveProjectID resolves a project reference across all clients by
// exact UUID or UUID prefix, returning the project's id along with the
// owning client's id.
func resolveProjectID(ctx context.Context, app *App, input string) (clientID, projectID string, err error) {
	if input == "" {
		return "", "", fmt.Errorf("project ID is required")
	}

	clients, err := app.Clients.List(ctx)
	if err != nil {
		return "", "", err
	}

	for _, c := range clients {
		if p := c.ProjectByID(input); p != nil {
			return c.ID, p.ID, nil
		}
	}

	type match struct{ clientID, projectID string }
	var matches []match
	for _, c := range clients {
		for i := range c.Projects {
			if strings.HasPrefix(c.Projects[i].ID, input) {
				matches = append(matches, match{c.ID, c.Projects[i].ID})
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0].clientID, matches[0].projectID, nil
	default:
		return "", "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func resolveUserID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("user is required")
	}

	users, err := app.Users.List(ctx)
	if err != nil {
		return "", err
	}

	// 1. Exact username match (case-insensitive)
	for _, u := range users {
		if strings.EqualFold(u.Username, input) {
			return u.ID, nil
		}
	}

	// 2. Exact UUID match
	for _, u := range users {
		if u.ID == input {
			return u.ID, nil
		}
	}

	// 3. UUID prefix match
	var matches []string
	for _, u := range users {
		if strings.HasPrefix(u.ID, input) {
			matches = append(matches, u.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("user not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("user %q is ambiguous (%d matches)", input, len(matches))
	}
}

func parsePriority(s string) (domain.Priority, error) {
	switch s {
	case "", "high", "medium", "low":
		return domain.Priority(s), nil
	default:
		return "", fmt.Errorf("invalid priority %q (high|medium|low)", s)
	}
}
