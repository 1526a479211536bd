package cli

import (
	"context"
	"fmt"

	"github.com/rferraz/clientdesk/internal/cli/formatter"
	"github.com/rferraz/clientdesk/internal/domain"
	"github.com/spf13/cobra"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	cmd.AddCommand(
		newUserAddCmd(app),
		newUserListCmd(app),
		newUserUpdateCmd(app),
		newUserRenameCmd(app),
		newUserRemoveCmd(app),
	)

	return cmd
}

func newUserAddCmd(app *App) *cobra.Command {
	var username, email, role string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			u := &domain.User{
				Username: username,
				Email:    email,
				Role:     domain.Role(role),
			}
			if err := app.Users.Create(context.Background(), u); err != nil {
				return err
			}
			fmt.Printf("Created user %s [%s]\n", u.Username, u.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&role, "role", "", "Role (admin|user), defaults to user")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func newUserListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Users.List(context.Background())
			if err != nil {
				return err
			}

			if len(users) == 0 {
				fmt.Println("No users found.")
				return nil
			}

			rows := make([][]string, 0, len(users))
			for _, u := range users {
				role := string(u.Role)
				if u.Role == domain.RoleAdmin {
					role = formatter.StylePurple.Render(role)
				}
				rows = append(rows, []string{
					formatter.TruncID(u.ID),
					u.Username,
					u.Email,
					role,
				})
			}

			fmt.Println(formatter.RenderTable(
				[]string{"ID", "USERNAME", "EMAIL", "ROLE"},
				rows,
			))
			return nil
		},
	}
}

func newUserUpdateCmd(app *App) *cobra.Command {
	var email, role string

	cmd := &cobra.Command{
		Use:   "update USER",
		Short: "Update a user's email or role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			userID, err := resolveUserID(ctx, app, args[0])
			if err != nil {
				return err
			}
			u, err := app.Users.GetByID(ctx, userID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("email") {
				u.Email = email
			}
			if cmd.Flags().Changed("role") {
				u.Role = domain.Role(role)
			}

			if err := app.Users.Update(ctx, u); err != nil {
				return err
			}

			fmt.Printf("Updated user %s\n", u.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&role, "role", "", "Role (admin|user)")

	return cmd
}

func newUserRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename USER NEWNAME",
		Short: "Change a username (admin only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			userID, err := resolveUserID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Users.Rename(ctx, app.Session, userID, args[1]); err != nil {
				return err
			}
			fmt.Printf("Renamed user to %s\n", args[1])
			return nil
		},
	}
}

func newUserRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove USER",
		Short: "Remove a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			userID, err := resolveUserID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Users.Delete(ctx, userID); err != nil {
				return err
			}
			fmt.Printf("Removed user %s\n", userID)
			return nil
		},
	}
}
