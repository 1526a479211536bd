package cli

import (
	"context"
	"fmt"

	"github.com/rferraz/clientdesk/internal/cli/formatter"
	"github.com/rferraz/clientdesk/internal/service"
	"github.com/spf13/cobra"
)

func newDelegateCmd(app *App) *cobra.Command {
	var client, to, name string
	var projects []string

	cmd := &cobra.Command{
		Use:   "delegate",
		Short: "Copy a client and selected projects to another user",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req := service.DelegationRequest{NewName: name}

			if client == "" && app.Interactive {
				var err error
				req, err = delegateWizard(ctx, app)
				if err != nil {
					return err
				}
				if req.SourceClientID == "" {
					fmt.Println("Delegation cancelled.")
					return nil
				}
			} else {
				clientID, err := resolveClientID(ctx, app, client)
				if err != nil {
					return err
				}
				req.SourceClientID = clientID

				targetID, err := resolveUserID(ctx, app, to)
				if err != nil {
					return err
				}
				req.TargetUserID = targetID

				for _, ref := range projects {
					_, projectID, err := resolveProjectID(ctx, app, ref)
					if err != nil {
						return err
					}
					req.ProjectIDs = append(req.ProjectIDs, projectID)
				}
			}

			result, err := app.Delegation.Delegate(ctx, app.Session, req)
			if err != nil {
				return err
			}

			fmt.Printf("Delegated client %s [%s] with %d project(s)\n",
				result.Client.Name, result.Client.ID[:8], len(result.Projects))
			if result.Warning != "" {
				fmt.Println(formatter.StyleYellow.Render("Warning: " + result.Warning))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&client, "client", "", "Source client (name, ID, or ID prefix)")
	cmd.Flags().StringVar(&to, "to", "", "Target user (username, ID, or ID prefix)")
	cmd.Flags().StringVar(&name, "name", "", "Name for the copied client (defaults to the source name)")
	cmd.Flags().StringArrayVar(&projects, "project", nil, "Project to copy (repeatable)")

	return cmd
}

// delegateWizard collects a delegation request interactively. A zero
// SourceClientID in the returned request means the user backed out.
func delegateWizard(ctx context.Context, app *App) (service.DelegationRequest, error) {
	var req service.DelegationRequest

	clientForm, err := wizardSelectClient(ctx, app, &req.SourceClientID)
	if err != nil {
		return req, err
	}
	if clientForm == nil {
		return req, fmt.Errorf("no clients to delegate")
	}
	if err := clientForm.Run(); err != nil {
		return req, err
	}

	projectForm, err := wizardSelectProjects(ctx, app, req.SourceClientID, &req.ProjectIDs)
	if err != nil {
		return req, err
	}
	if projectForm != nil {
		if err := projectForm.Run(); err != nil {
			return req, err
		}
	}

	userForm, err := wizardSelectUser(ctx, app, &req.TargetUserID)
	if err != nil {
		return req, err
	}
	if userForm == nil {
		return req, fmt.Errorf("no users to delegate to")
	}
	if err := userForm.Run(); err != nil {
		return req, err
	}

	source, err := app.Clients.GetByID(ctx, req.SourceClientID)
	if err != nil {
		return req, err
	}
	req.NewName = source.Name
	nameForm := wizardInputText("Name for the copy", source.Name, &req.NewName)
	if err := nameForm.Run(); err != nil {
		return req, err
	}

	confirmed := false
	confirm := wizardConfirm(
		fmt.Sprintf("Delegate %q with %d project(s)?", req.NewName, len(req.ProjectIDs)),
		&confirmed,
	)
	if err := confirm.Run(); err != nil {
		return req, err
	}
	if !confirmed {
		return service.DelegationRequest{}, nil
	}

	return req, nil
}
