package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rferraz/clientdesk/internal/cli/formatter"
	"github.com/rferraz/clientdesk/internal/domain"
	"github.com/rferraz/clientdesk/internal/service"
	"github.com/rferraz/clientdesk/internal/watch"
)

// ── data types ───────────────────────────────────────────────────────────────

// dashboardData holds the loaded data for the dashboard view.
type dashboardData struct {
	clients []*domain.Client
	summary *service.DashboardSummary
}

// ── messages ─────────────────────────────────────────────────────────────────

// dashboardLoadedMsg signals that dashboard data has been loaded.
type dashboardLoadedMsg struct {
	data dashboardData
	err  error
}

// dbChangedMsg signals an external write to the database file.
type dbChangedMsg struct{}

// ── model ────────────────────────────────────────────────────────────────────

// dashboardModel is the interactive dashboard: a split-pane layout with a
// selectable urgency-ordered client list on the left and the selected
// client's projects on the right. It refreshes automatically when another
// process writes the database.
type dashboardModel struct {
	app     *App
	spin    spinner.Model
	watcher *watch.Watcher
	data    *dashboardData
	loading bool
	err     error
	cursor  int
	width   int
}

func newDashboardModel(app *App) *dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(formatter.ColorHeader)

	m := &dashboardModel{
		app:     app,
		spin:    s,
		loading: true,
	}
	if app.DBPath != "" {
		if w, err := watch.New(app.DBPath, 250*time.Millisecond); err == nil {
			m.watcher = w
		}
	}
	return m
}

func (m *dashboardModel) keyBindings() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev")),
		key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (m *dashboardModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick, m.loadData()}
	if m.watcher != nil {
		cmds = append(cmds, m.waitForChange())
	}
	return tea.Batch(cmds...)
}

// ── data loading ─────────────────────────────────────────────────────────────

func (m *dashboardModel) loadData() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()
		today := domain.Midnight(time.Now())

		clients, err := app.Clients.ListByUrgency(ctx, today)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		summary, err := app.Dashboard.Summary(ctx, today)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		return dashboardLoadedMsg{
			data: dashboardData{
				clients: clients,
				summary: summary,
			},
		}
	}
}

// waitForChange blocks on the watcher's event channel and converts the
// next debounced change into a message.
func (m *dashboardModel) waitForChange() tea.Cmd {
	events := m.watcher.Events()
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		return dbChangedMsg{}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.data = &msg.data
		if m.cursor >= len(msg.data.clients) {
			m.cursor = max(0, len(msg.data.clients)-1)
		}
		return m, nil

	case dbChangedMsg:
		return m, tea.Batch(m.loadData(), m.waitForChange())

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.data != nil && m.cursor < len(m.data.clients)-1 {
				m.cursor++
			}
		case "r":
			m.loading = true
			return m, m.loadData()
		case "q", "ctrl+c":
			if m.watcher != nil {
				_ = m.watcher.Close()
			}
			return m, tea.Quit
		}
	}

	return m, nil
}

// ── view rendering ───────────────────────────────────────────────────────────

const dashLeftPaneWidth = 38

func (m *dashboardModel) View() string {
	if m.loading {
		return "\n  " + m.spin.View() + formatter.Dim(" Loading...")
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error())
	}
	if m.data == nil {
		return ""
	}

	var b strings.Builder

	if s := m.data.summary; s != nil {
		b.WriteString(fmt.Sprintf("\n  %d clients  %d projects  %s overdue  %s due soon\n\n",
			s.ClientCount,
			s.ProjectCount,
			formatter.StyleRed.Render(fmt.Sprintf("%d", s.Buckets[domain.BucketOverdue])),
			formatter.StyleYellow.Render(fmt.Sprintf("%d", s.Buckets[domain.BucketDueSoon])),
		))
	}

	if len(m.data.clients) == 0 {
		b.WriteString("  " + formatter.Dim("No clients yet."))
		b.WriteString("\n")
		return b.String()
	}

	leftPane := m.renderLeftPane()
	rightPane := m.renderRightPane()

	if m.width < 80 {
		b.WriteString(leftPane)
		b.WriteString("\n")
		b.WriteString(rightPane)
	} else {
		rightWidth := m.width - dashLeftPaneWidth - 3
		if rightWidth < 20 {
			rightWidth = 20
		}

		leftCol := lipgloss.NewStyle().Width(dashLeftPaneWidth).Render(leftPane)
		divider := lipgloss.NewStyle().Foreground(formatter.ColorDim).Render("│")
		rightCol := lipgloss.NewStyle().Width(rightWidth).Render(rightPane)

		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, leftCol, " "+divider+" ", rightCol))
	}

	b.WriteString("\n\n  ")
	var hints []string
	for _, kb := range m.keyBindings() {
		hints = append(hints, kb.Help().Key+" "+kb.Help().Desc)
	}
	b.WriteString(formatter.Dim(strings.Join(hints, "  ")))

	return b.String()
}

func (m *dashboardModel) renderLeftPane() string {
	today := domain.Midnight(time.Now())

	var b strings.Builder
	b.WriteString("  " + formatter.StyleHeader.Render("CLIENTS") + "\n\n")

	for i, c := range m.data.clients {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		name := c.Name
		if len(name) > 18 {
			name = name[:17] + "…"
		}

		b.WriteString(fmt.Sprintf("  %s%s %s\n",
			cursor,
			nameStyle.Render(padRight(name, 18)),
			clientBadge(c, m.app.Vocab, today),
		))
	}

	return b.String()
}

func (m *dashboardModel) renderRightPane() string {
	if m.cursor >= len(m.data.clients) {
		return formatter.Dim("Select a client to see details.")
	}
	c := m.data.clients[m.cursor]
	today := domain.Midnight(time.Now())

	var b strings.Builder
	b.WriteString(formatter.StyleBold.Render(c.Name) + "  " + formatter.PriorityPill(c.Priority) + "\n\n")

	if len(c.Projects) == 0 {
		b.WriteString(formatter.Dim("No projects."))
		return b.String()
	}

	sorted := domain.SortProjects(c.Projects, today)
	for i := range sorted {
		p := &sorted[i]
		progress := ""
		if pct, ok := domain.EstimateCompletion(p.Status, p.Checklist, m.app.Vocab); ok {
			progress = "  " + formatter.RenderProgress(float64(pct)/100, 6)
		}
		b.WriteString(fmt.Sprintf("%s %s%s\n  %s\n",
			formatter.StatusPill(p.Status, m.app.Vocab.IsCompleted(p.Status)),
			p.Name,
			progress,
			formatter.DeadlineBadge(domain.ProjectBadge(p, m.app.Vocab, today)),
		))
	}

	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
