package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rferraz/clientdesk/internal/cli/formatter"
	"github.com/rferraz/clientdesk/internal/domain"
	"github.com/rferraz/clientdesk/internal/service"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "calendar [YYYY-MM]",
		Short: "Show deadlines and completions for a month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			today := domain.Midnight(time.Now())

			year, month := today.Year(), today.Month()
			if len(args) == 1 {
				parsed, err := time.ParseInLocation("2006-01", args[0], time.Local)
				if err != nil {
					return fmt.Errorf("invalid month %q, use YYYY-MM", args[0])
				}
				year, month = parsed.Year(), parsed.Month()
			}

			cal, err := app.Calendar.Month(context.Background(), year, month, today)
			if err != nil {
				return err
			}

			fmt.Println(renderCalendar(cal, today))
			return nil
		},
	}
}

func renderCalendar(cal *service.CalendarMonth, today time.Time) string {
	var b strings.Builder

	title := fmt.Sprintf("%s %d", cal.Month, cal.Year)
	b.WriteString(formatter.Header(title) + "\n\n")

	b.WriteString(formatter.Dim("Mo Tu We Th Fr Sa Su") + "\n")

	first := time.Date(cal.Year, cal.Month, 1, 0, 0, 0, 0, time.Local)
	lastDay := first.AddDate(0, 1, -1).Day()

	// Monday-first column offset.
	offset := (int(first.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat("   ", offset))

	col := offset
	for day := 1; day <= lastDay; day++ {
		cell := fmt.Sprintf("%2d", day)
		switch {
		case sameDay(today, cal.Year, cal.Month, day):
			cell = formatter.StyleHeader.Render(cell)
		case len(cal.Days[day]) > 0:
			cell = formatter.StyleGreen.Render(cell)
		default:
			cell = formatter.Dim(cell)
		}
		b.WriteString(cell)

		col++
		if col%7 == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	if col%7 != 0 {
		b.WriteString("\n")
	}
	b.WriteString("\n")

	days := make([]int, 0, len(cal.Days))
	for day := range cal.Days {
		days = append(days, day)
	}
	sort.Ints(days)

	if len(days) == 0 {
		b.WriteString(formatter.Dim("Nothing scheduled this month."))
		return b.String()
	}

	for _, day := range days {
		b.WriteString(formatter.Bold(fmt.Sprintf("%s %d", cal.Month.String()[:3], day)) + "\n")
		for _, entry := range cal.Days[day] {
			b.WriteString(fmt.Sprintf("  %s  %s %s\n",
				formatter.DeadlineBadge(entry.Badge),
				entry.Project.Name,
				formatter.Dim("("+entry.ClientName+")"),
			))
		}
	}

	return b.String()
}

func sameDay(t time.Time, year int, month time.Month, day int) bool {
	return t.Year() == year && t.Month() == month && t.Day() == day
}
