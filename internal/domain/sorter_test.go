package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeProject(name string, priority Priority, deadline *time.Time) Project {
	return Project{ID: name, Name: name, Priority: priority, Deadline: deadline}
}

func TestSortProjects_PriorityFirst(t *testing.T) {
	now := today()
	soon := now.AddDate(0, 0, 1)
	late := now.AddDate(0, 0, 30)

	projects := []Project{
		makeProject("low-soon", PriorityLow, &soon),
		makeProject("high-late", PriorityHigh, &late),
		makeProject("medium", PriorityMedium, nil),
	}

	sorted := SortProjects(projects, now)

	require.Len(t, sorted, 3)
	assert.Equal(t, "high-late", sorted[0].Name, "high priority beats an earlier deadline")
	assert.Equal(t, "medium", sorted[1].Name)
	assert.Equal(t, "low-soon", sorted[2].Name)
}

func TestSortProjects_DeadlineTiebreak(t *testing.T) {
	now := today()
	early := now.AddDate(0, 0, 2)
	late := now.AddDate(0, 0, 9)

	projects := []Project{
		makeProject("late", PriorityMedium, &late),
		makeProject("none", PriorityMedium, nil),
		makeProject("early", PriorityMedium, &early),
	}

	sorted := SortProjects(projects, now)

	assert.Equal(t, "early", sorted[0].Name)
	assert.Equal(t, "late", sorted[1].Name)
	assert.Equal(t, "none", sorted[2].Name, "no deadline sorts last within a priority")
}

func TestSortProjects_Stable(t *testing.T) {
	now := today()
	projects := []Project{
		makeProject("first", PriorityLow, nil),
		makeProject("second", PriorityLow, nil),
		makeProject("third", PriorityLow, nil),
	}

	sorted := SortProjects(projects, now)

	assert.Equal(t, "first", sorted[0].Name)
	assert.Equal(t, "second", sorted[1].Name)
	assert.Equal(t, "third", sorted[2].Name)
}

func TestSortProjects_MissingPriorityRanksLow(t *testing.T) {
	now := today()
	projects := []Project{
		makeProject("unset", "", nil),
		makeProject("low", PriorityLow, nil),
		makeProject("high", PriorityHigh, nil),
	}

	sorted := SortProjects(projects, now)

	assert.Equal(t, "high", sorted[0].Name)
	assert.Equal(t, "unset", sorted[1].Name, "missing priority ties with low, input order kept")
	assert.Equal(t, "low", sorted[2].Name)
}

func TestSortProjects_DoesNotMutateInput(t *testing.T) {
	now := today()
	projects := []Project{
		makeProject("b", PriorityLow, nil),
		makeProject("a", PriorityHigh, nil),
	}

	_ = SortProjects(projects, now)

	assert.Equal(t, "b", projects[0].Name)
}

func TestPartitionClientsByUrgency(t *testing.T) {
	now := today()
	soon := now.AddDate(0, 0, 2)
	far := now.AddDate(0, 0, 60)

	clients := []Client{
		{ID: "empty-1"},
		{ID: "calm", Projects: []Project{makeProject("p", PriorityMedium, &far)}},
		{ID: "urgent", Projects: []Project{makeProject("p", PriorityMedium, &soon)}},
		{ID: "empty-2"},
		{ID: "overdue", Projects: []Project{makeProject("p", PriorityMedium, datePtr(now.AddDate(0, 0, -4)))}},
	}

	got := PartitionClientsByUrgency(clients, now)

	ids := make([]string, len(got))
	for i, c := range got {
		ids[i] = c.ID
	}
	assert.Equal(t, []string{"urgent", "overdue", "calm", "empty-1", "empty-2"}, ids)
}
