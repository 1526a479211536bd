package service

import (
	"context"
	"testing"
	"time"

	"github.com/rferraz/clientdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarMonth_GroupsByDeadlineDay(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	today := domain.Midnight(time.Now().In(time.Local))

	c := env.addClient(t, "Acme Corp", domain.PriorityMedium)
	d5 := localDate(2025, time.June, 5)
	d20 := localDate(2025, time.June, 20)
	other := localDate(2025, time.July, 1)
	env.addProject(t, c.ID, func(p *domain.Project) { p.Name = "Five"; p.Deadline = &d5 })
	env.addProject(t, c.ID, func(p *domain.Project) { p.Name = "Twenty"; p.Deadline = &d20 })
	env.addProject(t, c.ID, func(p *domain.Project) { p.Name = "NextMonth"; p.Deadline = &other })
	env.addProject(t, c.ID, func(p *domain.Project) { p.Name = "Undated" })

	cal, err := env.calendar.Month(ctx, 2025, time.June, today)
	require.NoError(t, err)

	require.Len(t, cal.Days, 2)
	require.Len(t, cal.Days[5], 1)
	assert.Equal(t, "Five", cal.Days[5][0].Project.Name)
	assert.Equal(t, "Acme Corp", cal.Days[5][0].ClientName)
	require.Len(t, cal.Days[20], 1)
	assert.Equal(t, "Twenty", cal.Days[20][0].Project.Name)
}

func TestCalendarMonth_CompletedProjectsAppearOnCompletionDay(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	today := domain.Midnight(time.Now().In(time.Local))

	c := env.addClient(t, "Acme Corp", domain.PriorityMedium)
	deadline := localDate(2025, time.June, 5)
	done := localDate(2025, time.June, 12)
	p := env.addProject(t, c.ID, func(p *domain.Project) { p.Deadline = &deadline })

	p.Status = env.vocab.CompletedStatus
	p.CompletedOn = &done
	require.NoError(t, env.projects.Update(ctx, p))

	cal, err := env.calendar.Month(ctx, 2025, time.June, today)
	require.NoError(t, err)

	assert.Empty(t, cal.Days[5], "completed project must leave its deadline slot")
	require.Len(t, cal.Days[12], 1)
	assert.Equal(t, domain.BucketCompleted, cal.Days[12][0].Badge.Bucket)
	assert.Contains(t, cal.Days[12][0].Badge.Label, "Completed on")
}

func TestCalendarMonth_BadgesRelativeToToday(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	today := domain.Midnight(time.Now().In(time.Local))

	c := env.addClient(t, "Acme Corp", domain.PriorityMedium)
	tomorrow := today.AddDate(0, 0, 1)
	env.addProject(t, c.ID, func(p *domain.Project) { p.Deadline = &tomorrow })

	cal, err := env.calendar.Month(ctx, tomorrow.Year(), tomorrow.Month(), today)
	require.NoError(t, err)

	require.Len(t, cal.Days[tomorrow.Day()], 1)
	assert.Equal(t, domain.BucketDueSoon, cal.Days[tomorrow.Day()][0].Badge.Bucket)
}
