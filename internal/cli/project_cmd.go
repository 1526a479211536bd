package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rferraz/clientdesk/internal/cli/formatter"
	"github.com/rferraz/clientdesk/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectUpdateCmd(app),
		newProjectRemoveCmd(app),
		newCheckCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var client, name, typ, status, priority, deadline, description, notes, assignee string
	var value float64
	var tags []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			clientID, err := resolveClientID(ctx, app, client)
			if err != nil {
				return err
			}
			prio, err := parsePriority(priority)
			if err != nil {
				return err
			}

			p := &domain.Project{
				ClientID:    clientID,
				Name:        name,
				Type:        typ,
				Status:      status,
				Priority:    prio,
				Description: description,
				Notes:       notes,
				OwnerID:     app.Session.UserID,
				Tags:        tags,
			}

			if deadline != "" {
				due, ok := domain.NormalizeDate(deadline)
				if !ok {
					return fmt.Errorf("invalid deadline %q, use YYYY-MM-DD", deadline)
				}
				p.Deadline = &due
			}
			if cmd.Flags().Changed("value") {
				p.Value = &value
			}
			if assignee != "" {
				assigneeID, err := resolveUserID(ctx, app, assignee)
				if err != nil {
					return err
				}
				p.AssigneeID = assigneeID
			}

			if err := app.Projects.Create(ctx, p); err != nil {
				return err
			}

			fmt.Printf("Created project %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&client, "client", "", "Client (name, ID, or ID prefix)")
	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&typ, "type", "", "Project type")
	cmd.Flags().StringVar(&status, "status", "", "Initial status (defaults per type)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (high|medium|low)")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&value, "value", 0, "Monetary value")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assignee (username, ID, or ID prefix)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tags (repeatable)")
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list CLIENT",
		Short: "List a client's projects in display order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			clientID, err := resolveClientID(ctx, app, args[0])
			if err != nil {
				return err
			}

			today := domain.Midnight(time.Now())
			projects, err := app.Projects.ListByClient(ctx, clientID, today)
			if err != nil {
				return err
			}

			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}

			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				rows = append(rows, []string{
					formatter.TruncID(p.ID),
					p.Name,
					formatter.TypeBadge(p.Type),
					formatter.PriorityPill(p.Priority),
					formatter.StatusPill(p.Status, app.Vocab.IsCompleted(p.Status)),
					formatter.DeadlineBadge(domain.ProjectBadge(p, app.Vocab, today)),
				})
			}

			fmt.Println(formatter.RenderTable(
				[]string{"ID", "NAME", "TYPE", "PRIORITY", "STATUS", "DEADLINE"},
				rows,
			))
			return nil
		},
	}
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			today := domain.Midnight(time.Now())

			var b strings.Builder
			b.WriteString(formatter.TypeBadge(p.Type) + "  ")
			b.WriteString(formatter.StatusPill(p.Status, app.Vocab.IsCompleted(p.Status)) + "  ")
			b.WriteString(formatter.PriorityPill(p.Priority) + "\n\n")

			b.WriteString(formatter.Dim("Deadline  ") + formatter.DeadlineBadge(domain.ProjectBadge(p, app.Vocab, today)) + "\n")
			b.WriteString(formatter.Dim("Value     ") + formatter.FormatValue(p.Value) + "\n")
			if pct, ok := domain.EstimateCompletion(p.Status, p.Checklist, app.Vocab); ok {
				b.WriteString(formatter.Dim("Progress  ") + formatter.RenderProgress(float64(pct)/100, 16) + "\n")
			}
			if len(p.Tags) > 0 {
				b.WriteString(formatter.Dim("Tags      ") + strings.Join(p.Tags, ", ") + "\n")
			}
			if p.Description != "" {
				b.WriteString("\n" + p.Description + "\n")
			}
			if p.Notes != "" {
				b.WriteString("\n" + formatter.Dim(p.Notes) + "\n")
			}

			if len(p.Checklist) > 0 {
				b.WriteString("\n" + formatter.StyleHeader.Render("CHECKLIST") + "\n")
				for _, item := range p.Checklist {
					mark := formatter.Dim("○")
					if item.Done {
						mark = formatter.StyleGreen.Render("✔")
					}
					b.WriteString(fmt.Sprintf("  %s %s %s\n", mark, item.Text, formatter.TruncID(item.ID)))
				}
			}

			fmt.Println(formatter.RenderBox(p.Name, strings.TrimRight(b.String(), "\n")))
			return nil
		},
	}
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var name, status, priority, deadline, completedOn, description, notes, assignee string
	var value float64
	var clearDeadline bool

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("status") {
				p.Status = status
			}
			if cmd.Flags().Changed("priority") {
				prio, err := parsePriority(priority)
				if err != nil {
					return err
				}
				p.Priority = prio
			}
			if clearDeadline {
				p.Deadline = nil
			} else if cmd.Flags().Changed("deadline") {
				due, ok := domain.NormalizeDate(deadline)
				if !ok {
					return fmt.Errorf("invalid deadline %q, use YYYY-MM-DD", deadline)
				}
				p.Deadline = &due
			}
			if cmd.Flags().Changed("completed-on") {
				done, ok := domain.NormalizeDate(completedOn)
				if !ok {
					return fmt.Errorf("invalid completion date %q, use YYYY-MM-DD", completedOn)
				}
				p.CompletedOn = &done
			}
			if cmd.Flags().Changed("value") {
				p.Value = &value
			}
			if cmd.Flags().Changed("description") {
				p.Description = description
			}
			if cmd.Flags().Changed("notes") {
				p.Notes = notes
			}
			if cmd.Flags().Changed("assignee") {
				assigneeID, err := resolveUserID(ctx, app, assignee)
				if err != nil {
					return err
				}
				p.AssigneeID = assigneeID
			}

			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}

			fmt.Printf("Updated project %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&status, "status", "", "Status")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (high|medium|low)")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&clearDeadline, "clear-deadline", false, "Remove the deadline")
	cmd.Flags().StringVar(&completedOn, "completed-on", "", "Completion date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&value, "value", 0, "Monetary value")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assignee (username, ID, or ID prefix)")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, projectID); err != nil {
				return err
			}
			fmt.Printf("Removed project %s\n", projectID)
			return nil
		},
	}
}

func newCheckCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Manage a project's checklist",
	}

	cmd.AddCommand(
		newCheckAddCmd(app),
		newCheckToggleCmd(app),
		newCheckRemoveCmd(app),
		newCheckMoveCmd(app),
	)

	return cmd
}

func newCheckAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add PROJECT TEXT",
		Short: "Add a checklist item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			item, err := app.Projects.AddChecklistItem(ctx, projectID, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Added checklist item %s [%s]\n", item.Text, item.ID[:8])
			return nil
		},
	}
}

func newCheckToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle PROJECT ITEM",
		Short: "Toggle a checklist item done/undone",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			itemID, err := resolveChecklistItemID(ctx, app, projectID, args[1])
			if err != nil {
				return err
			}
			done, err := app.Projects.ToggleChecklistItem(ctx, projectID, itemID)
			if err != nil {
				return err
			}
			if done {
				fmt.Println("Item marked done.")
			} else {
				fmt.Println("Item marked not done.")
			}
			return nil
		},
	}
}

func newCheckRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PROJECT ITEM",
		Short: "Remove a checklist item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			itemID, err := resolveChecklistItemID(ctx, app, projectID, args[1])
			if err != nil {
				return err
			}
			if err := app.Projects.RemoveChecklistItem(ctx, projectID, itemID); err != nil {
				return err
			}
			fmt.Println("Removed checklist item.")
			return nil
		},
	}
}

func newCheckMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move PROJECT ITEM...",
		Short: "Reorder the checklist (name every item in new order)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			itemIDs := make([]string, 0, len(args)-1)
			for _, ref := range args[1:] {
				itemID, err := resolveChecklistItemID(ctx, app, projectID, ref)
				if err != nil {
					return err
				}
				itemIDs = append(itemIDs, itemID)
			}
			if err := app.Projects.ReorderChecklist(ctx, projectID, itemIDs); err != nil {
				return err
			}
			fmt.Println("Checklist reordered.")
			return nil
		},
	}
}

// resolveChecklistItemID resolves an item reference within one project by
// exact ID or ID prefix.
func resolveChecklistItemID(ctx context.Context, app *App, projectID, input string) (string, error) {
	p, err := app.Projects.GetByID(ctx, projectID)
	if err != nil {
		return "", err
	}

	for _, item := range p.Checklist {
		if item.ID == input {
			return item.ID, nil
		}
	}

	var matches []string
	for _, item := range p.Checklist {
		if strings.HasPrefix(item.ID, input) {
			matches = append(matches, item.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("checklist item not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("checklist item prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
