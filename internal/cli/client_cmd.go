package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rferraz/clientdesk/internal/cli/formatter"
	"github.com/rferraz/clientdesk/internal/domain"
	"github.com/spf13/cobra"
)

func newClientCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage clients",
	}

	cmd.AddCommand(
		newClientAddCmd(app),
		newClientListCmd(app),
		newClientInspectCmd(app),
		newClientUpdateCmd(app),
		newClientRemoveCmd(app),
	)

	return cmd
}

func newClientAddCmd(app *App) *cobra.Command {
	var name, priority string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new client",
		RunE: func(cmd *cobra.Command, args []string) error {
			prio, err := parsePriority(priority)
			if err != nil {
				return err
			}

			c := &domain.Client{
				Name:     name,
				Priority: prio,
				OwnerID:  app.Session.UserID,
			}
			if err := app.Clients.Create(context.Background(), c); err != nil {
				return err
			}

			fmt.Printf("Created client %s [%s]\n", c.Name, c.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Client name")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (high|medium|low)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newClientListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List clients by urgency",
		RunE: func(cmd *cobra.Command, args []string) error {
			today := domain.Midnight(time.Now())
			clients, err := app.Clients.ListByUrgency(context.Background(), today)
			if err != nil {
				return err
			}

			if len(clients) == 0 {
				fmt.Println("No clients found.")
				return nil
			}

			rows := make([][]string, 0, len(clients))
			for _, c := range clients {
				rows = append(rows, []string{
					formatter.TruncID(c.ID),
					c.Name,
					formatter.PriorityPill(c.Priority),
					fmt.Sprintf("%d", len(c.Projects)),
					clientBadge(c, app.Vocab, today),
				})
			}

			fmt.Println(formatter.RenderTable(
				[]string{"ID", "NAME", "PRIORITY", "PROJECTS", "NEXT DEADLINE"},
				rows,
			))
			return nil
		},
	}
}

// bucketRank orders urgency buckets most-urgent first for badge selection.
var bucketRank = map[domain.UrgencyBucket]int{
	domain.BucketOverdue:    0,
	domain.BucketDueToday:   1,
	domain.BucketDueSoon:    2,
	domain.BucketUpcoming:   3,
	domain.BucketLater:      4,
	domain.BucketNoDeadline: 5,
}

// clientBadge renders the badge of the client's most urgent open project,
// or a dimmed dash when the client has no open projects.
func clientBadge(c *domain.Client, vocab *domain.Vocabulary, today time.Time) string {
	best := -1
	var bestBadge domain.DeadlineBadge
	for i := range c.Projects {
		p := &c.Projects[i]
		if vocab.IsCompleted(p.Status) {
			continue
		}
		badge := domain.ProjectBadge(p, vocab, today)
		rank, ok := bucketRank[badge.Bucket]
		if !ok {
			continue
		}
		if best == -1 || rank < best {
			best = rank
			bestBadge = badge
		}
	}
	if best == -1 {
		return formatter.Dim("--")
	}
	return formatter.DeadlineBadge(bestBadge)
}

func newClientInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show client details and projects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			clientID, err := resolveClientID(ctx, app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Clients.GetByID(ctx, clientID)
			if err != nil {
				return err
			}

			today := domain.Midnight(time.Now())
			projects, err := app.Projects.ListByClient(ctx, clientID, today)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header(c.Name))
			fmt.Printf("%s  %s\n\n", formatter.PriorityPill(c.Priority), formatter.Dim(c.ID))

			if len(projects) == 0 {
				fmt.Println(formatter.Dim("No projects."))
				return nil
			}

			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				progress := formatter.Dim("--")
				if pct, ok := domain.EstimateCompletion(p.Status, p.Checklist, app.Vocab); ok {
					progress = formatter.RenderProgress(float64(pct)/100, 8)
				}
				rows = append(rows, []string{
					formatter.TruncID(p.ID),
					p.Name,
					formatter.TypeBadge(p.Type),
					formatter.StatusPill(p.Status, app.Vocab.IsCompleted(p.Status)),
					formatter.DeadlineBadge(domain.ProjectBadge(p, app.Vocab, today)),
					progress,
				})
			}

			fmt.Println(formatter.RenderTable(
				[]string{"ID", "NAME", "TYPE", "STATUS", "DEADLINE", "PROGRESS"},
				rows,
			))
			return nil
		},
	}
}

func newClientUpdateCmd(app *App) *cobra.Command {
	var name, priority string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			clientID, err := resolveClientID(ctx, app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Clients.GetByID(ctx, clientID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				c.Name = name
			}
			if cmd.Flags().Changed("priority") {
				prio, err := parsePriority(priority)
				if err != nil {
					return err
				}
				c.Priority = prio
			}

			if err := app.Clients.Update(ctx, c); err != nil {
				return err
			}

			fmt.Printf("Updated client %s\n", c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Client name")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (high|medium|low)")

	return cmd
}

func newClientRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a client and its projects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			clientID, err := resolveClientID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Clients.Delete(ctx, clientID); err != nil {
				return err
			}
			fmt.Printf("Removed client %s\n", clientID)
			return nil
		},
	}
}
