package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rferraz/clientdesk/internal/cli/formatter"
	"github.com/rferraz/clientdesk/internal/domain"
	"github.com/rferraz/clientdesk/internal/service"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	var tui bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show aggregate metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if tui {
				return runDashboardTUI(app)
			}

			today := domain.Midnight(time.Now())
			summary, err := app.Dashboard.Summary(context.Background(), today)
			if err != nil {
				return err
			}

			fmt.Println(renderSummary(summary))
			return nil
		},
	}

	cmd.Flags().BoolVar(&tui, "tui", false, "Open the interactive dashboard")

	return cmd
}

func runDashboardTUI(app *App) error {
	model := newDashboardModel(app)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func renderSummary(s *service.DashboardSummary) string {
	var b strings.Builder

	b.WriteString(formatter.Header("Dashboard") + "\n\n")

	b.WriteString(fmt.Sprintf("%s %d clients   %d projects (%s open)   %s completed this month\n\n",
		formatter.Dim("Totals   "),
		s.ClientCount,
		s.ProjectCount,
		formatter.StyleGreen.Render(fmt.Sprintf("%d", s.OpenProjectCount)),
		formatter.Bold(fmt.Sprintf("%d", s.CompletedThisMonth)),
	))

	b.WriteString(formatter.Dim("Deadlines") + " ")
	b.WriteString(fmt.Sprintf("%s overdue   %s due today   %s due soon   %d upcoming\n\n",
		formatter.StyleRed.Render(fmt.Sprintf("%d", s.Buckets[domain.BucketOverdue])),
		formatter.StyleRed.Render(fmt.Sprintf("%d", s.Buckets[domain.BucketDueToday])),
		formatter.StyleYellow.Render(fmt.Sprintf("%d", s.Buckets[domain.BucketDueSoon])),
		s.Buckets[domain.BucketUpcoming],
	))

	if len(s.TopClients) > 0 {
		rows := make([][]string, 0, len(s.TopClients))
		for _, tc := range s.TopClients {
			rows = append(rows, []string{tc.ClientName, formatter.FormatAmount(tc.Total)})
		}
		b.WriteString(formatter.RenderTable([]string{"TOP CLIENTS", "VALUE"}, rows))
		b.WriteString("\n")
	}

	if len(s.MonthlyValues) > 0 {
		rows := make([][]string, 0, len(s.MonthlyValues))
		for _, mv := range s.MonthlyValues {
			label := fmt.Sprintf("%s %d", mv.Month.String()[:3], mv.Year)
			rows = append(rows, []string{label, formatter.FormatAmount(mv.Total)})
		}
		b.WriteString(formatter.RenderTable([]string{"MONTH", "COMPLETED VALUE"}, rows))
	}

	return b.String()
}
