package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rferraz/clientdesk/internal/cli/formatter"
)

// deskHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func deskHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardSelectClient creates a huh form to select a client from the list.
func wizardSelectClient(ctx context.Context, app *App, result *string) (*huh.Form, error) {
	clients, err := app.Clients.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return nil, nil
	}

	options := make([]huh.Option[string], 0, len(clients))
	for _, c := range clients {
		label := fmt.Sprintf("%s (%d projects)", c.Name, len(c.Projects))
		options = append(options, huh.NewOption(label, c.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which Client?").
				Options(options...).
				Value(result),
		),
	).WithTheme(deskHuhTheme()).WithShowHelp(false), nil
}

// wizardSelectProjects creates a huh multi-select over a client's projects.
// Returns nil when the client has no projects; delegating just the client
// record is allowed.
func wizardSelectProjects(ctx context.Context, app *App, clientID string, result *[]string) (*huh.Form, error) {
	c, err := app.Clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if len(c.Projects) == 0 {
		return nil, nil
	}

	options := make([]huh.Option[string], 0, len(c.Projects))
	for i := range c.Projects {
		p := &c.Projects[i]
		label := fmt.Sprintf("%s — %s", p.Name, p.Status)
		options = append(options, huh.NewOption(label, p.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Which Projects?").
				Description("Space to toggle, enter to confirm. None is allowed.").
				Options(options...).
				Value(result),
		),
	).WithTheme(deskHuhTheme()).WithShowHelp(false), nil
}

// wizardSelectUser creates a huh form to select the delegation target.
func wizardSelectUser(ctx context.Context, app *App, result *string) (*huh.Form, error) {
	users, err := app.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}

	options := make([]huh.Option[string], 0, len(users))
	for _, u := range users {
		label := u.Username
		if u.Email != "" {
			label = fmt.Sprintf("%s <%s>", u.Username, u.Email)
		}
		options = append(options, huh.NewOption(label, u.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Delegate To?").
				Options(options...).
				Value(result),
		),
	).WithTheme(deskHuhTheme()).WithShowHelp(false), nil
}

// wizardInputText creates a huh form for a single required text input.
func wizardInputText(title, placeholder string, result *string) *huh.Form {
	input := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(result).
		Validate(func(s string) error {
			if s == "" {
				return fmt.Errorf("%s is required", title)
			}
			return nil
		})

	return huh.NewForm(
		huh.NewGroup(input),
	).WithTheme(deskHuhTheme()).WithShowHelp(false)
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(deskHuhTheme()).WithShowHelp(false)
}
