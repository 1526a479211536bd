package cli

import (
	"github.com/rferraz/clientdesk/internal/domain"
	"github.com/rferraz/clientdesk/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands,
// plus the acting session and the loaded vocabulary.
type App struct {
	Clients    service.ClientService
	Projects   service.ProjectService
	Users      service.UserService
	Delegation service.DelegationService
	Dashboard  service.DashboardService
	Calendar   service.CalendarService

	Session domain.Session
	Vocab   *domain.Vocabulary

	// DBPath is the SQLite file backing the services. The TUI watches it
	// for external writes; empty disables the watcher.
	DBPath string

	// Interactive is true when stdout is a terminal; it gates the huh
	// wizards used by the delegate command.
	Interactive bool

	// ResolveSession maps a username to a session, for the --as-user
	// override. Set by main; nil leaves Session as constructed.
	ResolveSession func(username string) (domain.Session, error)
}

// NewRootCmd creates the top-level "clientdesk" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var asUser string

	root := &cobra.Command{
		Use:   "clientdesk",
		Short: "Client and project tracker",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if asUser == "" || app.ResolveSession == nil {
				return nil
			}
			session, err := app.ResolveSession(asUser)
			if err != nil {
				return err
			}
			app.Session = session
			return nil
		},
	}

	root.PersistentFlags().StringVar(&asUser, "as-user", "", "Act as the named user")

	root.AddCommand(
		newClientCmd(app),
		newProjectCmd(app),
		newUserCmd(app),
		newDelegateCmd(app),
		newDashboardCmd(app),
		newCalendarCmd(app),
	)

	return root
}
